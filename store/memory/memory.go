// Package memory provides an in-memory pricing.Source for tests and dev runs.
package memory

import (
	"context"

	"github.com/partsight/pricing-reports/pricing"
)

// =============================================================================
// MEMORY SOURCE - In-memory implementation (for testing/dev)
// =============================================================================

type Source struct {
	PriceRows        []pricing.PriceRecord
	PartRows         []pricing.PartRecord
	AvailabilityRows []pricing.AvailabilityRecord

	// Missing simulates absent tables for validation tests.
	Missing []string

	closed bool
}

func New(prices []pricing.PriceRecord, parts []pricing.PartRecord, availability []pricing.AvailabilityRecord) *Source {
	return &Source{
		PriceRows:        prices,
		PartRows:         parts,
		AvailabilityRows: availability,
	}
}

func (s *Source) VerifyRelations(_ context.Context) error {
	absent := make(map[string]struct{}, len(s.Missing))
	for _, m := range s.Missing {
		absent[m] = struct{}{}
	}
	for _, rel := range pricing.RequiredRelations {
		if _, ok := absent[rel]; ok {
			return &pricing.MissingRelationError{Relation: rel}
		}
	}
	return nil
}

// Loaders hand out copies so callers can't reach back into the fixture.

func (s *Source) Prices(_ context.Context) ([]pricing.PriceRecord, error) {
	out := make([]pricing.PriceRecord, len(s.PriceRows))
	copy(out, s.PriceRows)
	return out, nil
}

func (s *Source) Parts(_ context.Context) ([]pricing.PartRecord, error) {
	out := make([]pricing.PartRecord, len(s.PartRows))
	copy(out, s.PartRows)
	return out, nil
}

func (s *Source) Availability(_ context.Context) ([]pricing.AvailabilityRecord, error) {
	out := make([]pricing.AvailabilityRecord, len(s.AvailabilityRows))
	copy(out, s.AvailabilityRows)
	return out, nil
}

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called; tests use it to assert the scoped
// connection lifecycle.
func (s *Source) Closed() bool { return s.closed }
