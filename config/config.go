/*
Package config loads the run configuration.

PURPOSE:
  A reporting run is driven by a small TOML file overlaid on compiled
  defaults. Everything that looked like a magic number in the pipeline lives
  here instead: the per-day top-K, the quantity band, the cohort page size
  and, deliberately, BOTH expected distinct-company counts.

EXPECTED COMPANY COUNTS:
  expected_companies (21) and expected_companies_filtered (20) intentionally
  differ: the [1,10] quantity filter drops one company from the data
  entirely. They are kept as two independent values rather than unified;
  confirm against real data before changing either.

EXAMPLE (reports.toml):
  [database]
  path = "./data/parts.db"

  [reports]
  top_per_day = 4
  quantity_min = 1
  quantity_max = 10

  [charts]
  output_dir = "./out"
  cohort_page_size = 7
  expected_companies = 21
  expected_companies_filtered = 20

  [serve]
  addr = ":8080"
*/
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database Database `toml:"database"`
	Reports  Reports  `toml:"reports"`
	Charts   Charts   `toml:"charts"`
	Serve    Serve    `toml:"serve"`
}

type Database struct {
	Path string `toml:"path"`
}

type Reports struct {
	TopPerDay   int `toml:"top_per_day"`
	QuantityMin int `toml:"quantity_min"`
	QuantityMax int `toml:"quantity_max"`
}

type Charts struct {
	OutputDir                 string   `toml:"output_dir"`
	CohortPageSize            int      `toml:"cohort_page_size"`
	ExpectedCompanies         int      `toml:"expected_companies"`
	ExpectedCompaniesFiltered int      `toml:"expected_companies_filtered"`
	Palette                   []string `toml:"palette"`
}

type Serve struct {
	Addr string `toml:"addr"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Database: Database{Path: "./data/parts.db"},
		Reports: Reports{
			TopPerDay:   4,
			QuantityMin: 1,
			QuantityMax: 10,
		},
		Charts: Charts{
			OutputDir:                 "./out",
			CohortPageSize:            7,
			ExpectedCompanies:         21,
			ExpectedCompaniesFiltered: 20,
		},
		Serve: Serve{Addr: ":8080"},
	}
}

// Load overlays the TOML file at path onto the defaults. An empty path means
// defaults only; a missing file is an error (a typo'd -config should not
// silently fall back).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot honor.
func (c Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must be set")
	}
	if c.Reports.TopPerDay < 1 {
		return fmt.Errorf("reports.top_per_day must be at least 1, got %d", c.Reports.TopPerDay)
	}
	if c.Reports.QuantityMin > c.Reports.QuantityMax {
		return fmt.Errorf("reports quantity bounds are inverted: [%d,%d]",
			c.Reports.QuantityMin, c.Reports.QuantityMax)
	}
	if c.Charts.CohortPageSize < 1 {
		return fmt.Errorf("charts.cohort_page_size must be at least 1, got %d", c.Charts.CohortPageSize)
	}
	if c.Charts.ExpectedCompanies < 1 || c.Charts.ExpectedCompaniesFiltered < 1 {
		return fmt.Errorf("expected company counts must be positive")
	}
	if c.Charts.OutputDir == "" {
		return fmt.Errorf("charts.output_dir must be set")
	}
	if c.Charts.Palette != nil && len(c.Charts.Palette) == 0 {
		return fmt.Errorf("charts.palette must not be empty when set; omit it to use the built-in palette")
	}
	if len(c.Charts.Palette) > 0 && len(c.Charts.Palette) < c.Charts.ExpectedCompanies {
		return fmt.Errorf("palette has %d colors, need one per company (%d)",
			len(c.Charts.Palette), c.Charts.ExpectedCompanies)
	}
	return nil
}
