package report

import (
	"fmt"

	"github.com/partsight/pricing-reports/pricing"
)

// =============================================================================
// CONCRETE REPORTS - One builder per table the run emits
// =============================================================================

// PartsCatalog lists the parts relation as loaded; no transformation.
func PartsCatalog(parts []pricing.PartRecord) Table {
	t := Table{
		Title: "Parts Catalog",
		Columns: []Column{
			{Label: "Part ID", Kind: KindPlain},
			{Label: "Part Name", Kind: KindPlain},
			{Label: "Manufacturer", Kind: KindPlain},
			{Label: "Manufacturer ID", Kind: KindPlain},
		},
		Striped: true,
	}
	for _, p := range parts {
		t.Rows = append(t.Rows, []any{string(p.PartID), p.PartName, p.ManufacturerName, string(p.ManufacturerID)})
	}
	return t
}

// TopDailyPrices shows the per-day top-K view, ordered (date asc, company asc).
func TopDailyPrices(rows []pricing.PriceRecord, k int) Table {
	t := Table{
		Title:    fmt.Sprintf("Top %d Prices Per Day", k),
		Subtitle: "one row per company per day, highest quotes only",
		Columns:  priceColumns(),
		Striped:  true,
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, priceRow(r))
	}
	return t
}

// PricesByDateDescending shows the descending-price ordering of the same
// rows; a separate artifact from TopDailyPrices, not a re-sort of it.
func PricesByDateDescending(rows []pricing.PriceRecord) Table {
	t := Table{
		Title:   "Daily Prices, Most Expensive First",
		Columns: priceColumns(),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, priceRow(r))
	}
	return t
}

// AvailabilityView lists the deduplicated availability observations.
func AvailabilityView(rows []pricing.AvailabilityRecord) Table {
	t := Table{
		Title: "Availability",
		Columns: []Column{
			{Label: "Date", Kind: KindDate},
			{Label: "Total Available", Kind: KindNumber},
			{Label: "MPN", Kind: KindPlain},
		},
		Striped: true,
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Date, r.TotalAvailability, r.MPN})
	}
	return t
}

func priceColumns() []Column {
	return []Column{
		{Label: "Date", Kind: KindDate},
		{Label: "Company", Kind: KindPlain},
		{Label: "Quantity", Kind: KindNumber},
		{Label: "Price", Kind: KindPrice},
	}
}

func priceRow(r pricing.PriceRecord) []any {
	return []any{r.Date, r.Company, r.Quantity, r.Price}
}
