package pricing

import "context"

// =============================================================================
// SOURCE - Read-only data source interface
// =============================================================================

// Relation names as they appear in the database.
const (
	RelationPrices       = "prices"
	RelationParts        = "parts"
	RelationAvailability = "availability"
)

// RequiredRelations lists every table the run depends on. VerifyRelations
// checks all of them before the first data query.
var RequiredRelations = []string{RelationPrices, RelationParts, RelationAvailability}

// Source is the read-only query interface over the pricing database.
// The pipeline needs nothing else: no writes, no streaming, no pagination.
// Each loader materializes its whole relation in memory in a fixed load
// order (the pipeline re-sorts explicitly anyway, so the order is a
// convenience, not a contract).
//
// Implementations:
//   - store/sqlite: production SQLite file
//   - store/memory: in-memory fixtures for tests
type Source interface {
	// VerifyRelations returns a MissingRelationError for the first required
	// relation absent from the source.
	VerifyRelations(ctx context.Context) error

	Prices(ctx context.Context) ([]PriceRecord, error)
	Parts(ctx context.Context) ([]PartRecord, error)
	Availability(ctx context.Context) ([]AvailabilityRecord, error)

	Close() error
}

// RequireRows is the eager empty-result check: call it on every loaded row
// set before transforming or rendering anything.
func RequireRows[T any](relation string, rows []T) error {
	if len(rows) == 0 {
		return &EmptyResultError{Relation: relation}
	}
	return nil
}
