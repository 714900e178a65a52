package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaude(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(Rates{
		Anthropic: map[string]ModelRate{
			"test-model": {Input: 3.00, Output: 15.00},
		},
	})

	// 1M input + 1M output at the configured rates.
	assert.InDelta(t, 18.00, calc.Claude("test-model", 1_000_000, 1_000_000), 1e-9)

	// 500 in, 200 out.
	assert.InDelta(t, 0.0045, calc.Claude("test-model", 500, 200), 1e-9)

	assert.Zero(t, calc.Claude("unknown-model", 1_000_000, 1_000_000))
	assert.Zero(t, calc.Claude("test-model", 0, 0))
}

func TestDefaultRates(t *testing.T) {
	t.Parallel()

	rates := DefaultRates()
	assert.NotEmpty(t, rates.Anthropic)
	for model, r := range rates.Anthropic {
		assert.Positive(t, r.Input, model)
		assert.Positive(t, r.Output, model)
	}
}
