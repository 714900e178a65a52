// Package provider defines the extraction-provider seam: the opaque system
// that turns a natural-language query into a candidate flight record. The
// evaluator treats any implementation as a black box.
package provider

import (
	"context"

	"github.com/aerolens/flighteval/internal/model"
)

// Provider produces a candidate flight record for a query. Any field of the
// returned record may be nil. Implementations must be safe for concurrent
// use: the runner fans out calls with a bounded worker pool.
type Provider interface {
	// Name identifies the provider in run metadata.
	Name() string
	Extract(ctx context.Context, query string) (*model.FlightRecord, error)
}

// Static is a fixture-backed provider for tests and offline scoring: it
// serves pre-recorded extraction results keyed by query.
type Static struct {
	records map[string]*model.FlightRecord
}

// NewStatic creates a Static provider over the given query-to-record map.
func NewStatic(records map[string]*model.FlightRecord) *Static {
	return &Static{records: records}
}

func (s *Static) Name() string { return "static" }

// Extract returns the pre-recorded record for the query, or an empty record
// when none exists (an extraction that found nothing, not an error).
func (s *Static) Extract(_ context.Context, query string) (*model.FlightRecord, error) {
	if rec, ok := s.records[query]; ok {
		cp := *rec
		cp.Normalize()
		return &cp, nil
	}
	return &model.FlightRecord{}, nil
}
