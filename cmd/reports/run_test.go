package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partsight/pricing-reports/config"
	"github.com/partsight/pricing-reports/pricing"
	"github.com/partsight/pricing-reports/store/memory"
)

// fixture: three companies; Cyberdyne only quotes at quantity 50, so the
// [1,10] filter drops it and the filtered company count is one lower.
func fixtureRows() ([]pricing.PriceRecord, []pricing.PartRecord, []pricing.AvailabilityRecord) {
	day := func(d int) pricing.Date { return pricing.NewDate(2024, time.January, d) }
	p := func(d int, company string, value string, qty int) pricing.PriceRecord {
		return pricing.PriceRecord{
			Date: day(d), Company: company, Quantity: qty,
			Price: decimal.RequireFromString(value),
		}
	}

	prices := []pricing.PriceRecord{
		p(1, "Acme", "10.00", 1),
		p(1, "Borg", "12.00", 5),
		p(1, "Cyberdyne", "8.00", 50),
		p(2, "Acme", "11.00", 1),
		p(2, "Borg", "9.00", 10),
		p(2, "Cyberdyne", "7.50", 50),
	}
	parts := []pricing.PartRecord{
		{PartID: "P-1", PartName: "555 Timer", ManufacturerName: "TI", ManufacturerID: "M-1"},
	}
	availability := []pricing.AvailabilityRecord{
		{ID: 1, Date: day(1), TotalAvailability: 100, MPN: "NE555P"},
		{ID: 2, Date: day(2), TotalAvailability: 90, MPN: "NE555P"},
	}
	return prices, parts, availability
}

func fixtureConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Charts.OutputDir = t.TempDir()
	cfg.Charts.CohortPageSize = 2
	cfg.Charts.ExpectedCompanies = 3
	cfg.Charts.ExpectedCompaniesFiltered = 2
	return cfg
}

func TestRun_HappyPath(t *testing.T) {
	prices, parts, availability := fixtureRows()
	cfg := fixtureConfig(t)

	var opened []*memory.Source
	factory := func() (pricing.Source, error) {
		src := memory.New(prices, parts, availability)
		opened = append(opened, src)
		return src, nil
	}

	var out bytes.Buffer
	artifacts, err := run(context.Background(), cfg, &out, factory)
	require.NoError(t, err)

	// 3 companies at page size 2 -> 2 price pages; 2 filtered companies -> 1
	// page; plus the availability trend.
	assert.Len(t, artifacts, 4)

	// Two scoped connection phases, each released before the next.
	require.Len(t, opened, 2)
	for _, src := range opened {
		assert.True(t, src.Closed())
	}

	text := out.String()
	assert.Contains(t, text, "Top 4 Prices Per Day")
	assert.Contains(t, text, "Most Expensive First")
	assert.Contains(t, text, "Parts Catalog")
	assert.Contains(t, text, "Availability")
}

func TestRun_CardinalityMismatchAbortsBeforeCharts(t *testing.T) {
	prices, parts, availability := fixtureRows()
	cfg := fixtureConfig(t)
	cfg.Charts.ExpectedCompanies = 21 // fixture has 3

	var out bytes.Buffer
	_, err := run(context.Background(), cfg, &out, func() (pricing.Source, error) {
		return memory.New(prices, parts, availability), nil
	})
	require.ErrorIs(t, err, pricing.ErrCardinalityMismatch)
}

func TestRun_EmptyPricesIsFatal(t *testing.T) {
	_, parts, availability := fixtureRows()
	cfg := fixtureConfig(t)

	var out bytes.Buffer
	_, err := run(context.Background(), cfg, &out, func() (pricing.Source, error) {
		return memory.New(nil, parts, availability), nil
	})
	require.ErrorIs(t, err, pricing.ErrEmptyResult)
	assert.NotContains(t, out.String(), "Parts Catalog", "nothing renders after a fatal check")
}

func TestRun_MissingRelationHaltsBeforeAnyQuery(t *testing.T) {
	prices, parts, availability := fixtureRows()
	cfg := fixtureConfig(t)

	var out bytes.Buffer
	_, err := run(context.Background(), cfg, &out, func() (pricing.Source, error) {
		src := memory.New(prices, parts, availability)
		src.Missing = []string{pricing.RelationAvailability}
		return src, nil
	})
	require.ErrorIs(t, err, pricing.ErrMissingRelation)
	assert.Empty(t, out.String())
}

func TestRun_QuantityFilteredCohortsUseTheirOwnExpectation(t *testing.T) {
	// GIVEN: the filtered company set (2) matches its expectation but the
	// unfiltered one is configured wrong
	prices, parts, availability := fixtureRows()
	cfg := fixtureConfig(t)
	cfg.Charts.ExpectedCompaniesFiltered = 3 // filter leaves only 2

	var out bytes.Buffer
	_, err := run(context.Background(), cfg, &out, func() (pricing.Source, error) {
		return memory.New(prices, parts, availability), nil
	})

	// THEN: the mismatch on the filtered path is fatal on its own.
	var ce *pricing.CardinalityError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Got)
	assert.Equal(t, 3, ce.Want)
}
