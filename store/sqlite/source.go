/*
Package sqlite provides the SQLite-backed read-only data source.

PURPOSE:
  Implements pricing.Source over the parts-pricing database file. The tool
  never writes through this path: reporting runs open the file read-only and
  the connection is a scoped resource, released before any later phase
  re-opens it.

KEY TABLES:
  prices:        date, quantity, convertedPrice, company_name
  parts:         part_id, part_name, manufacturer_name, manufacturer_id
  availability:  id, date, total_availability, mpn

LOAD ORDER:
  Each loader carries a fixed ORDER BY so the in-memory row sets start from a
  known order. The pipeline still re-sorts explicitly before deduplicating;
  the clause here only keeps dev output stable.

COLUMN ENCODING:
  Dates are TEXT in "2006-01-02" form; prices are TEXT parsed with
  decimal.NewFromString so no float ever touches a price.

SEE ALSO:
  - pricing/source.go: the interface this implements
  - store/memory: in-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/partsight/pricing-reports/pricing"
)

// Source implements pricing.Source over a SQLite file.
type Source struct {
	db *sql.DB
}

// Open opens the database file read-only and verifies the connection.
func Open(path string) (*Source, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Source{db: db}, nil
}

// Close releases the connection. The run re-opens a fresh Source for the
// availability phase instead of sharing this one.
func (s *Source) Close() error {
	return s.db.Close()
}

// VerifyRelations checks every required table against sqlite_master before
// the first data query. Missing table -> fatal, before anything is loaded.
func (s *Source) VerifyRelations(ctx context.Context) error {
	for _, rel := range pricing.RequiredRelations {
		var name string
		err := s.db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, rel,
		).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return &pricing.MissingRelationError{Relation: rel}
		}
		if err != nil {
			return fmt.Errorf("failed to inspect schema: %w", err)
		}
	}
	return nil
}

// Prices loads the full prices relation.
func (s *Source) Prices(ctx context.Context) ([]pricing.PriceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, quantity, convertedPrice, company_name
		FROM prices
		ORDER BY date ASC, company_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer rows.Close()

	var out []pricing.PriceRecord
	for rows.Next() {
		var (
			dateStr  string
			quantity int
			priceStr string
			company  string
		)
		if err := rows.Scan(&dateStr, &quantity, &priceStr, &company); err != nil {
			return nil, fmt.Errorf("failed to scan price row: %w", err)
		}

		date, err := pricing.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in prices: %w", dateStr, err)
		}
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("bad price %q in prices: %w", priceStr, err)
		}

		out = append(out, pricing.PriceRecord{
			Date:     date,
			Quantity: quantity,
			Price:    price,
			Company:  company,
		})
	}
	return out, rows.Err()
}

// Parts loads the full parts relation. Passed through to the catalog report
// unmodified.
func (s *Source) Parts(ctx context.Context) ([]pricing.PartRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT part_id, part_name, manufacturer_name, manufacturer_id
		FROM parts
		ORDER BY part_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query parts: %w", err)
	}
	defer rows.Close()

	var out []pricing.PartRecord
	for rows.Next() {
		var p pricing.PartRecord
		if err := rows.Scan(&p.PartID, &p.PartName, &p.ManufacturerName, &p.ManufacturerID); err != nil {
			return nil, fmt.Errorf("failed to scan part row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Availability loads the full availability relation.
func (s *Source) Availability(ctx context.Context) ([]pricing.AvailabilityRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, total_availability, mpn
		FROM availability
		ORDER BY date ASC, total_availability ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	var out []pricing.AvailabilityRecord
	for rows.Next() {
		var (
			rec     pricing.AvailabilityRecord
			dateStr string
		)
		if err := rows.Scan(&rec.ID, &dateStr, &rec.TotalAvailability, &rec.MPN); err != nil {
			return nil, fmt.Errorf("failed to scan availability row: %w", err)
		}

		date, err := pricing.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in availability: %w", dateStr, err)
		}
		rec.Date = date
		out = append(out, rec)
	}
	return out, rows.Err()
}
