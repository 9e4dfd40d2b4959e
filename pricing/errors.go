/*
errors.go - Fatal validation errors for the reporting run

PURPOSE:
  Every check in this tool is a stop condition: there is no retry and no
  partial-output mode. Checks run eagerly right after data is loaded, before
  any transformation or rendering.

ERROR CATEGORIES:
  1. Missing-relation - a required table is absent from the database
  2. Empty-result     - a required row set came back with zero rows
  3. Cardinality      - distinct-company count differs from the configured
                        expectation, so cohort pages cannot be formed

USAGE:
  Callers match with errors.Is:

    if errors.Is(err, pricing.ErrCardinalityMismatch) {
        log.Fatalf("company set changed under us: %v", err)
    }
*/
package pricing

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingRelation is returned when a required table does not exist.
	// Raised before any data query runs.
	ErrMissingRelation = errors.New("required relation missing")

	// ErrEmptyResult is returned when a required row set has zero rows.
	// Raised before any rendering is attempted.
	ErrEmptyResult = errors.New("required row set is empty")

	// ErrCardinalityMismatch is returned when the distinct-company count does
	// not equal the configured expectation. Partitioning never silently
	// adjusts; a mismatch means the data changed and the palette/cohort
	// configuration no longer fits it.
	ErrCardinalityMismatch = errors.New("distinct-company count mismatch")

	// ErrInvalidPageSize is returned when cohort partitioning is asked for
	// pages smaller than one element.
	ErrInvalidPageSize = errors.New("cohort page size must be at least 1")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// MissingRelationError names the absent table.
type MissingRelationError struct {
	Relation string
}

func (e *MissingRelationError) Error() string {
	return fmt.Sprintf("relation %q not found in data source", e.Relation)
}

func (e *MissingRelationError) Unwrap() error { return ErrMissingRelation }

// EmptyResultError names the relation whose row set came back empty.
type EmptyResultError struct {
	Relation string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("relation %q returned no rows", e.Relation)
}

func (e *EmptyResultError) Unwrap() error { return ErrEmptyResult }

// CardinalityError reports the observed vs expected distinct-company count.
type CardinalityError struct {
	Got  int
	Want int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("expected %d distinct companies, found %d", e.Want, e.Got)
}

func (e *CardinalityError) Unwrap() error { return ErrCardinalityMismatch }
