package provider

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/aerolens/flighteval/internal/config"
	"github.com/aerolens/flighteval/internal/model"
	"github.com/aerolens/flighteval/internal/retry"
	"github.com/aerolens/flighteval/pkg/anthropic"
)

const extractionSystem = `You are a flight-information researcher. Given a query about a flight,
respond with a single JSON object and nothing else:
{"flightNumber": "<digits only, no carrier prefix>",
 "airlineCode": "<2-letter carrier code>",
 "departureAirportCode": "<3-letter code>",
 "arrivalAirportCode": "<3-letter code>",
 "flightDate": "<DD-MM-YYYY>",
 "flightTime": "<HH:MM flight duration>",
 "aircraftName": "<canonical aircraft family name, e.g. Boeing 737NG>"}
Omit any field you cannot determine. Never guess.`

// Anthropic extracts flight records by asking a Claude model for a
// JSON-shaped answer. Calls are rate limited client-side.
type Anthropic struct {
	client   anthropic.Client
	cfg      config.AnthropicConfig
	limiter  *rate.Limiter
	retryCfg retry.Config

	inputTokens  atomic.Int64
	outputTokens atomic.Int64
}

// NewAnthropic creates an Anthropic-backed extraction provider.
func NewAnthropic(client anthropic.Client, cfg config.AnthropicConfig) *Anthropic {
	rps := cfg.RateRPS
	if rps <= 0 {
		rps = 1
	}
	retryCfg := retry.Default()
	retryCfg.OnRetry = retry.Logger("anthropic", "create_message")
	return &Anthropic{
		client:   client,
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		retryCfg: retryCfg,
	}
}

func (a *Anthropic) Name() string { return "anthropic/" + a.cfg.Model }

// Extract asks the model for a flight record. A response that parses but
// lacks fields is returned as-is; the comparator treats absence as its own
// signal.
func (a *Anthropic) Extract(ctx context.Context, query string) (*model.FlightRecord, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "provider: rate limit wait")
	}

	resp, err := retry.DoVal(ctx, a.retryCfg, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return a.client.CreateMessage(ctx, anthropic.MessageRequest{
			Model:     a.cfg.Model,
			MaxTokens: a.cfg.MaxTokens,
			System:    extractionSystem,
			Messages:  []anthropic.Message{{Role: "user", Content: query}},
		})
	})
	if err != nil {
		return nil, eris.Wrap(err, "provider: create message")
	}
	a.inputTokens.Add(resp.Usage.InputTokens)
	a.outputTokens.Add(resp.Usage.OutputTokens)
	resp.Usage.Log(a.cfg.Model, "extract")

	rec, err := parseRecord(resp.Text)
	if err != nil {
		zap.L().Warn("provider: unparsable extraction response",
			zap.String("query", query),
			zap.Error(err),
		)
		// Garbled output scores as an empty extraction, not a run failure.
		return &model.FlightRecord{}, nil
	}
	return rec, nil
}

// Usage returns cumulative token consumption across all Extract calls.
func (a *Anthropic) Usage() anthropic.TokenUsage {
	return anthropic.TokenUsage{
		InputTokens:  a.inputTokens.Load(),
		OutputTokens: a.outputTokens.Load(),
	}
}

// parseRecord pulls the first JSON object out of a model response, tolerating
// surrounding prose and markdown fences.
func parseRecord(text string) (*model.FlightRecord, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, eris.New("provider: no JSON object in response")
	}

	var rec model.FlightRecord
	if err := json.Unmarshal([]byte(text[start:end+1]), &rec); err != nil {
		return nil, eris.Wrap(err, "provider: unmarshal record")
	}
	rec.Normalize()
	return &rec, nil
}
