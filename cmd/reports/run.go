package main

import (
	"context"
	"fmt"
	"io"

	"github.com/partsight/pricing-reports/chart"
	"github.com/partsight/pricing-reports/config"
	"github.com/partsight/pricing-reports/pricing"
	"github.com/partsight/pricing-reports/report"
)

// sourceFactory opens a fresh data-source connection. The run opens one per
// phase instead of sharing a connection across the whole run.
type sourceFactory func() (pricing.Source, error)

// withSource scopes a connection to fn: acquired, used for a bounded
// sequence of queries, released before the caller moves on.
func withSource(newSource sourceFactory, fn func(pricing.Source) error) error {
	src, err := newSource()
	if err != nil {
		return err
	}
	defer src.Close()
	return fn(src)
}

// run executes the whole reporting pass: load, validate, transform, render.
// Tables go to out; chart artifacts go to the configured output directory and
// their paths are returned. Any validation failure aborts the run; there is
// no partial-output mode.
func run(ctx context.Context, cfg config.Config, out io.Writer, newSource sourceFactory) ([]string, error) {
	// ---- Phase 1: prices + parts ------------------------------------------
	var (
		prices []pricing.PriceRecord
		parts  []pricing.PartRecord
	)
	err := withSource(newSource, func(src pricing.Source) error {
		if err := src.VerifyRelations(ctx); err != nil {
			return err
		}
		var err error
		if prices, err = src.Prices(ctx); err != nil {
			return err
		}
		parts, err = src.Parts(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Eager checks before any transformation or rendering.
	if err := pricing.RequireRows(pricing.RelationPrices, prices); err != nil {
		return nil, err
	}
	if err := pricing.RequireRows(pricing.RelationParts, parts); err != nil {
		return nil, err
	}

	// Tables.
	topDaily := pricing.TopPricesPerDay(prices, cfg.Reports.TopPerDay)
	report.TopDailyPrices(topDaily, cfg.Reports.TopPerDay).Render(out)
	report.PricesByDateDescending(pricing.ByPriceDescending(topDaily)).Render(out)
	report.PartsCatalog(parts).Render(out)

	// Charts: full price data, cohort-paginated.
	builder := chart.New(chart.Config{
		OutputDir: cfg.Charts.OutputDir,
		Palette:   cfg.Charts.Palette,
	})

	companies := pricing.DistinctCompanies(prices)
	cohorts, err := pricing.CompanyCohorts(companies, cfg.Charts.ExpectedCompanies, cfg.Charts.CohortPageSize)
	if err != nil {
		return nil, err
	}
	artifacts, err := builder.PriceScatterPages("prices", "Price over time", prices, cohorts)
	if err != nil {
		return nil, err
	}

	// Charts: quantity-filtered variant. The filter runs on the RAW price
	// rows and the company set is re-derived, so the expected count differs.
	filtered := pricing.FilterQuantityRange(prices, cfg.Reports.QuantityMin, cfg.Reports.QuantityMax)
	filteredCohorts, err := pricing.CompanyCohorts(
		pricing.DistinctCompanies(filtered),
		cfg.Charts.ExpectedCompaniesFiltered,
		cfg.Charts.CohortPageSize,
	)
	if err != nil {
		return nil, err
	}
	filteredName := fmt.Sprintf("prices_qty_%d_%d", cfg.Reports.QuantityMin, cfg.Reports.QuantityMax)
	filteredTitle := fmt.Sprintf("Price over time, quantity %d-%d", cfg.Reports.QuantityMin, cfg.Reports.QuantityMax)
	filteredArtifacts, err := builder.PriceScatterPages(filteredName, filteredTitle, filtered, filteredCohorts)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, filteredArtifacts...)

	// ---- Phase 2: availability, on a fresh connection ---------------------
	var availability []pricing.AvailabilityRecord
	err = withSource(newSource, func(src pricing.Source) error {
		var err error
		availability, err = src.Availability(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := pricing.RequireRows(pricing.RelationAvailability, availability); err != nil {
		return nil, err
	}

	unique := pricing.UniqueAvailability(availability)
	report.AvailabilityView(unique).Render(out)

	trend, err := builder.AvailabilityTrend("availability", unique)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, trend)

	return artifacts, nil
}
