package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partsight/pricing-reports/pricing"
)

func priceRow(day int, company string, value float64, qty int) pricing.PriceRecord {
	return pricing.PriceRecord{
		Date:     pricing.NewDate(2024, time.January, day),
		Quantity: qty,
		Price:    decimal.NewFromFloat(value),
		Company:  company,
	}
}

func TestPriceScatterPages_OneFilePerCohort(t *testing.T) {
	dir := t.TempDir()
	b := New(Config{OutputDir: dir})

	rows := []pricing.PriceRecord{
		priceRow(1, "Acme", 10, 1),
		priceRow(2, "Acme", 11, 1),
		priceRow(1, "Borg", 20, 5),
		priceRow(1, "Cyberdyne", 30, 1),
	}
	cohorts := []pricing.Cohort{{"Acme", "Borg"}, {"Cyberdyne"}}

	files, err := b.PriceScatterPages("prices", "Price over time", rows, cohorts)
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, f := range files {
		content, err := os.ReadFile(f)
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	}
	assert.Equal(t, "prices_page_01.html", filepath.Base(files[0]))
}

func TestPriceScatterPages_SkipsEmptyCohortPage(t *testing.T) {
	dir := t.TempDir()
	b := New(Config{OutputDir: dir})

	rows := []pricing.PriceRecord{priceRow(1, "Acme", 10, 1)}
	cohorts := []pricing.Cohort{{"Acme"}, {"NoSuchCo"}}

	files, err := b.PriceScatterPages("prices", "Price over time", rows, cohorts)
	require.NoError(t, err)
	assert.Len(t, files, 1, "cohort with no rows yields no artifact")
}

func TestPriceScatterPages_PaletteTooSmall(t *testing.T) {
	b := New(Config{OutputDir: t.TempDir(), Palette: []string{"#111111"}})

	rows := []pricing.PriceRecord{priceRow(1, "Acme", 10, 1), priceRow(1, "Borg", 20, 1)}
	cohorts := []pricing.Cohort{{"Acme", "Borg"}}

	_, err := b.PriceScatterPages("prices", "Price over time", rows, cohorts)
	require.Error(t, err, "two series cannot share one palette color")
}

func TestPriceScatterPages_PagesUseSuccessivePaletteWindows(t *testing.T) {
	dir := t.TempDir()
	b := New(Config{OutputDir: dir})

	rows := []pricing.PriceRecord{
		priceRow(1, "Acme", 10, 1),
		priceRow(1, "Borg", 20, 1),
		priceRow(1, "Cyberdyne", 30, 1),
	}
	cohorts := []pricing.Cohort{{"Acme", "Borg"}, {"Cyberdyne"}}

	files, err := b.PriceScatterPages("prices", "Price over time", rows, cohorts)
	require.NoError(t, err)
	require.Len(t, files, 2)

	// The second page's company gets the third palette entry, not a reused
	// first-page color.
	content, err := os.ReadFile(files[1])
	require.NoError(t, err)
	assert.Contains(t, string(content), DefaultPalette[2])
	assert.NotContains(t, string(content), DefaultPalette[0])
}

func TestAvailabilityTrend_FacetsByYear(t *testing.T) {
	dir := t.TempDir()
	b := New(Config{OutputDir: dir})

	rows := []pricing.AvailabilityRecord{
		{ID: 1, Date: pricing.NewDate(2023, time.December, 30), TotalAvailability: 100, MPN: "NE555P"},
		{ID: 2, Date: pricing.NewDate(2024, time.January, 2), TotalAvailability: 150, MPN: "NE555P"},
	}

	file, err := b.AvailabilityTrend("availability", rows)
	require.NoError(t, err)

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	// Two year panels on the one page.
	assert.Contains(t, string(content), "Availability 2023")
	assert.Contains(t, string(content), "Availability 2024")
}

func TestAvailabilityTrend_EmptyPaletteIsAnError(t *testing.T) {
	b := New(Config{OutputDir: t.TempDir(), Palette: []string{}})

	rows := []pricing.AvailabilityRecord{
		{ID: 1, Date: pricing.NewDate(2024, time.January, 2), TotalAvailability: 150, MPN: "NE555P"},
	}

	_, err := b.AvailabilityTrend("availability", rows)
	require.Error(t, err, "an empty palette must fail the render, not panic it")
}
