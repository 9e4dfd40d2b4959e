/*
Package pricing contains the record types and the preparation pipeline for
the parts-pricing reports.

PURPOSE:
  Three row sets come out of the database (prices, parts, availability) and
  the pipeline in this package turns them into the deduplicated, grouped and
  paginated views the table reports and charts consume.

KEY CONCEPTS IN THIS FILE (types.go):
  - PriceRecord: one observed price for a company on a date, at a quantity
  - PartRecord: catalog row, passed through to the parts report unmodified
  - AvailabilityRecord: stock level observation for an MPN on a date
  - Cohort: fixed-size partition of company names, used to paginate charts

DESIGN PRINCIPLES:
  1. Immutability: row sets are loaded once and never mutated; every pipeline
     stage returns fresh slices
  2. Precision: prices use decimal.Decimal, never floats
  3. Eager validation: missing relations, empty row sets and cohort count
     mismatches halt the run before anything renders (see errors.go)

SEE ALSO:
  - pipeline.go: the transformations over these records
  - source.go: the read-only data source interface
*/
package pricing

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type PartID string
type ManufacturerID string

// =============================================================================
// RECORDS - Immutable rows loaded wholesale, once per run
// =============================================================================

// PriceRecord is one observed price point. The raw table may hold several
// rows for the same (date, company) pair; the unique-per-date views collapse
// them (see UniqueDailyPrices).
type PriceRecord struct {
	Date     Date
	Quantity int
	Price    decimal.Decimal
	Company  string
}

// PartRecord is a catalog row. No pipeline stage transforms these; the parts
// report renders them as loaded.
type PartRecord struct {
	PartID           PartID
	PartName         string
	ManufacturerName string
	ManufacturerID   ManufacturerID
}

// AvailabilityRecord is a stock observation for a manufacturer part number.
type AvailabilityRecord struct {
	ID                int64
	Date              Date
	TotalAvailability int
	MPN               string
}

// Cohort is a contiguous partition of distinct company names. Cohorts exist
// purely to split chart output across pages; they are derived per run and
// never persisted.
type Cohort []string
