//go:build !integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerolens/flighteval/internal/config"
)

func TestBuildProvider_Fixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fixtures:
  - query: q
    extracted:
      airlineCode: WN
`), 0o644))

	evalFixtures = path
	t.Cleanup(func() { evalFixtures = "" })

	prov, err := buildProvider()
	require.NoError(t, err)
	assert.Equal(t, "static", prov.Name())
}

func TestBuildProvider_MissingKey(t *testing.T) {
	cfg = &config.Config{}
	t.Cleanup(func() { cfg = nil })

	_, err := buildProvider()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic.key")
}

func TestBuildProvider_Anthropic(t *testing.T) {
	cfg = &config.Config{
		Anthropic: config.AnthropicConfig{Key: "test-key", Model: "m", MaxTokens: 64, RateRPS: 1},
	}
	t.Cleanup(func() { cfg = nil })

	prov, err := buildProvider()
	require.NoError(t, err)
	assert.Equal(t, "anthropic/m", prov.Name())
}
