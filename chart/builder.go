/*
Package chart renders the exploratory charts as HTML artifacts.

PURPOSE:
  The chart side of the output: price-over-time scatter pages split by
  company cohort (one panel per company, one series per quantity) and an
  availability trend line split by year. Every render writes a standalone
  HTML file into the configured output directory and returns its path.

  Chart input validation (cohort cardinality, empty row sets) happens
  upstream in the pipeline; here an individual empty panel is only worth a
  warning, not a halt.
*/
package chart

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/partsight/pricing-reports/pricing"
)

// Config carries the chart-side settings.
type Config struct {
	OutputDir string
	Palette   []string
}

// Builder constructs chart pages from prepared row sets.
type Builder struct {
	cfg Config
	l   *slog.Logger
}

// New creates a chart [Builder]. The builder embeds a [slog.Logger] to croak
// about skipped panels and written artifacts.
func New(cfg Config) *Builder {
	if cfg.Palette == nil {
		cfg.Palette = DefaultPalette
	}
	return &Builder{
		cfg: cfg,
		l:   slog.Default().With(slog.String("module", "chart")),
	}
}

// =============================================================================
// PRICE SCATTER PAGES
// =============================================================================

// PriceScatterPages renders one HTML page per cohort. Each page holds one
// scatter panel per company; within a panel, each quantity is its own series
// so price-per-quantity bands stay visually separate. Returns the artifact
// paths in page order.
func (b *Builder) PriceScatterPages(name, title string, rows []pricing.PriceRecord, cohorts []pricing.Cohort) ([]string, error) {
	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	var files []string
	offset := 0
	for i, cohort := range cohorts {
		colors, err := paletteFor(b.cfg.Palette, offset, len(cohort))
		if err != nil {
			return nil, err
		}
		offset += len(cohort)

		subset := pricing.FilterByCompanies(rows, cohort)
		if len(subset) == 0 {
			b.l.Warn("empty cohort page skipped", slog.Int("page", i+1))
			continue
		}

		page := components.NewPage()
		page.PageTitle = fmt.Sprintf("%s - page %d", title, i+1)

		dates := distinctDates(subset)
		for j, company := range cohort {
			panel := b.companyPanel(company, colors[j], dates, subset)
			if panel == nil {
				b.l.Warn("empty panel skipped", slog.String("company", company))
				continue
			}
			page.AddCharts(panel)
		}

		file := filepath.Join(b.cfg.OutputDir, fmt.Sprintf("%s_page_%02d.html", name, i+1))
		if err := renderPage(page, file); err != nil {
			return nil, err
		}
		b.l.Info("wrote chart page", slog.String("file", file), slog.Int("companies", len(cohort)))
		files = append(files, file)
	}
	return files, nil
}

// companyPanel builds a single company's scatter panel, one series per
// quantity, aligned over the cohort-wide date axis.
func (b *Builder) companyPanel(company, seriesColor string, dates []string, rows []pricing.PriceRecord) *charts.Scatter {
	byQty := map[int]map[string]string{}
	var quantities []int
	for _, r := range rows {
		if r.Company != company {
			continue
		}
		if byQty[r.Quantity] == nil {
			byQty[r.Quantity] = map[string]string{}
			quantities = append(quantities, r.Quantity)
		}
		day := r.Date.String()
		if _, ok := byQty[r.Quantity][day]; !ok {
			byQty[r.Quantity][day] = r.Price.StringFixed(2)
		}
	}
	if len(quantities) == 0 {
		return nil
	}
	sort.Ints(quantities)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: company}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price"}),
		charts.WithColorsOpts(opts.Colors{seriesColor}),
	)
	sc.SetXAxis(dates)

	for _, qty := range quantities {
		data := make([]opts.ScatterData, len(dates))
		for i, day := range dates {
			if v, ok := byQty[qty][day]; ok {
				data[i] = opts.ScatterData{Value: v}
			} else {
				// "-" is echarts' missing-value marker.
				data[i] = opts.ScatterData{Value: "-"}
			}
		}
		sc.AddSeries(fmt.Sprintf("qty %d", qty), data)
	}
	return sc
}

// =============================================================================
// AVAILABILITY TREND
// =============================================================================

// AvailabilityTrend renders the availability trend as one line panel per
// derived year, all on a single page.
func (b *Builder) AvailabilityTrend(name string, rows []pricing.AvailabilityRecord) (string, error) {
	if err := os.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	// The trend is a single series; it still goes through the palette check
	// so an empty palette fails instead of panicking.
	colors, err := paletteFor(b.cfg.Palette, 0, 1)
	if err != nil {
		return "", err
	}

	byYear := map[int][]pricing.AvailabilityRecord{}
	var years []int
	for _, r := range rows {
		if _, ok := byYear[r.Date.Year()]; !ok {
			years = append(years, r.Date.Year())
		}
		byYear[r.Date.Year()] = append(byYear[r.Date.Year()], r)
	}
	sort.Ints(years)

	page := components.NewPage()
	page.PageTitle = "Availability Trend"

	for _, year := range years {
		page.AddCharts(b.yearTrendPanel(year, colors[0], byYear[year]))
	}

	file := filepath.Join(b.cfg.OutputDir, name+".html")
	if err := renderPage(page, file); err != nil {
		return "", err
	}
	b.l.Info("wrote availability trend", slog.String("file", file), slog.Int("years", len(years)))
	return file, nil
}

func (b *Builder) yearTrendPanel(year int, seriesColor string, rows []pricing.AvailabilityRecord) *charts.Line {
	var dates []string
	var data []opts.LineData
	for _, r := range rows {
		dates = append(dates, r.Date.String())
		data = append(data, opts.LineData{Value: r.TotalAvailability})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Availability %d", year)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total available"}),
		charts.WithColorsOpts(opts.Colors{seriesColor}),
	)
	line.SetXAxis(dates)
	line.AddSeries("total availability", data)
	return line
}

func renderPage(page *components.Page, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}

// distinctDates returns the sorted distinct date labels for a row subset.
func distinctDates(rows []pricing.PriceRecord) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range rows {
		day := r.Date.String()
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	sort.Strings(out)
	return out
}
