//go:build !integration

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aerolens/flighteval/internal/model"
)

func TestFormatRunsList(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:        "abc12345-6789-0000-0000-000000000000",
			Dataset:   "groundtruth.yaml",
			Provider:  "anthropic",
			Status:    model.RunStatusComplete,
			Result:    &model.RunResult{Overall: 0.85},
			CreatedAt: now,
			UpdatedAt: now.Add(2 * time.Minute),
		},
		{
			ID:        "def12345-6789-0000-0000-000000000000",
			Dataset:   "smoke.yaml",
			Provider:  "static",
			Status:    model.RunStatusRunning,
			CreatedAt: now.Add(-1 * time.Hour),
			UpdatedAt: now.Add(-30 * time.Minute),
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "DATASET")
	assert.Contains(t, output, "OVERALL")
	assert.Contains(t, output, "groundtruth.yaml")
	assert.Contains(t, output, "0.8500")
	assert.Contains(t, output, "complete")
	assert.Contains(t, output, "smoke.yaml")
	assert.Contains(t, output, "running")
	assert.Contains(t, output, "2026-08-01 10:30")
	assert.Contains(t, output, "abc12345")
}

func TestFormatRunsList_NoResult(t *testing.T) {
	runs := []model.Run{
		{
			ID:        "abc12345-6789-0000-0000-000000000000",
			Dataset:   "ds.yaml",
			Provider:  "static",
			Status:    model.RunStatusFailed,
			CreatedAt: time.Now(),
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)

	assert.Contains(t, buf.String(), "-")
	assert.Contains(t, buf.String(), "failed")
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "abc12345", truncateID("abc12345-6789-0000-0000-000000000000"))
	assert.Equal(t, "short", truncateID("short"))
}
