package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/partsight/pricing-reports/pricing"
)

// Seed creates the schema and inserts fixture rows. The reporting run itself
// never writes; this exists for tests and local fixture databases.
func Seed(path string, prices []pricing.PriceRecord, parts []pricing.PartRecord, availability []pricing.AvailabilityRecord) error {
	db, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("failed to open database for seeding: %w", err)
	}
	defer db.Close()

	schema := `
	CREATE TABLE IF NOT EXISTS prices (
		date TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		convertedPrice TEXT NOT NULL,
		company_name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS parts (
		part_id TEXT PRIMARY KEY,
		part_name TEXT NOT NULL,
		manufacturer_name TEXT NOT NULL,
		manufacturer_id TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS availability (
		id INTEGER PRIMARY KEY,
		date TEXT NOT NULL,
		total_availability INTEGER NOT NULL,
		mpn TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range prices {
		if _, err := tx.Exec(
			`INSERT INTO prices (date, quantity, convertedPrice, company_name) VALUES (?, ?, ?, ?)`,
			p.Date.String(), p.Quantity, p.Price.String(), p.Company,
		); err != nil {
			return fmt.Errorf("failed to insert price row: %w", err)
		}
	}
	for _, p := range parts {
		if _, err := tx.Exec(
			`INSERT INTO parts (part_id, part_name, manufacturer_name, manufacturer_id) VALUES (?, ?, ?, ?)`,
			string(p.PartID), p.PartName, p.ManufacturerName, string(p.ManufacturerID),
		); err != nil {
			return fmt.Errorf("failed to insert part row: %w", err)
		}
	}
	for _, a := range availability {
		if _, err := tx.Exec(
			`INSERT INTO availability (id, date, total_availability, mpn) VALUES (?, ?, ?, ?)`,
			a.ID, a.Date.String(), a.TotalAvailability, a.MPN,
		); err != nil {
			return fmt.Errorf("failed to insert availability row: %w", err)
		}
	}

	return tx.Commit()
}
