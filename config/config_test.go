package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_PreservesBothCompanyCounts(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 21, cfg.Charts.ExpectedCompanies)
	assert.Equal(t, 20, cfg.Charts.ExpectedCompaniesFiltered)
}

func TestLoad_OverlaysOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
path = "/tmp/other.db"

[reports]
top_per_day = 3
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, 3, cfg.Reports.TopPerDay)
	// Untouched keys keep their defaults.
	assert.Equal(t, 7, cfg.Charts.CohortPageSize)
	assert.Equal(t, 10, cfg.Reports.QuantityMax)
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero top_per_day", func(c *Config) { c.Reports.TopPerDay = 0 }},
		{"inverted quantity bounds", func(c *Config) { c.Reports.QuantityMin = 11 }},
		{"zero page size", func(c *Config) { c.Charts.CohortPageSize = 0 }},
		{"empty db path", func(c *Config) { c.Database.Path = "" }},
		{"empty output dir", func(c *Config) { c.Charts.OutputDir = "" }},
		{"short palette", func(c *Config) { c.Charts.Palette = []string{"#fff"} }},
		{"empty palette", func(c *Config) { c.Charts.Palette = []string{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
