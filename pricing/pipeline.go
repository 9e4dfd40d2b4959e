/*
pipeline.go - The preparation pipeline

PURPOSE:
  Pure transformations that turn the raw price/availability row sets into the
  views the reports and charts consume:

    UniqueDailyPrices    one row per (date, company)
    TopPricesPerDay      the K highest-priced companies per date
    ByPriceDescending    (date asc, price desc) ordering of the above
    FilterQuantityRange  raw rows restricted to a quantity band
    DistinctCompanies    company names in first-appearance order
    CompanyCohorts       fixed-size company pages for chart pagination
    UniqueAvailability   one row per (date, total_availability)

DETERMINISM:
  Deduplication keeps the FIRST row per key. To make "first" mean something,
  every dedup runs immediately after an explicit stable sort with a documented
  key, instead of trusting whatever order rows were loaded in. Within equal
  sort keys the load order still breaks ties, which preserves first-wins
  semantics for true duplicates.

STATE:
  None. Every function is row set in, fresh row set out. Inputs are never
  mutated, so two views derived from the same slice cannot interfere.
*/
package pricing

import "sort"

// =============================================================================
// GENERIC HELPERS
// =============================================================================

// sortedCopy returns a stably-sorted copy, leaving the input untouched.
func sortedCopy[T any](rows []T, less func(a, b T) bool) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// dedupBy keeps the first row per key under the slice's current ordering.
// Rows differing only in columns outside the key are collapsed; that loss is
// intentional for the views below.
func dedupBy[T any, K comparable](rows []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(rows))
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// splitPages partitions items into ceil(n/size) contiguous pages of at most
// size elements. The last page may be short.
func splitPages[T any](items []T, size int) [][]T {
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end:end])
	}
	return out
}

// =============================================================================
// ORDERING CONTRACTS
// =============================================================================
// Two distinct total orders exist over price rows and both are used as
// outputs: (date asc, company asc) for the per-day report and
// (date asc, price desc) for the descending view. They are separate
// artifacts, never an in-place re-sort.

func lessDateCompany(a, b PriceRecord) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.Company < b.Company
}

func lessDatePriceDesc(a, b PriceRecord) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.Price.GreaterThan(b.Price)
}

func lessDateTotal(a, b AvailabilityRecord) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.TotalAvailability < b.TotalAvailability
}

// =============================================================================
// DEDUPLICATION VIEWS
// =============================================================================

type dailyPriceKey struct {
	date    string
	company string
}

// UniqueDailyPrices returns at most one price row per (date, company).
// Pre-sort key: (date asc, company asc); among true duplicates the earliest
// loaded row survives.
func UniqueDailyPrices(rows []PriceRecord) []PriceRecord {
	sorted := sortedCopy(rows, lessDateCompany)
	return dedupBy(sorted, func(r PriceRecord) dailyPriceKey {
		return dailyPriceKey{date: r.Date.String(), company: r.Company}
	})
}

type availabilityKey struct {
	date  string
	total int
}

// UniqueAvailability returns at most one availability row per
// (date, total_availability). Pre-sort key: (date asc, total asc).
func UniqueAvailability(rows []AvailabilityRecord) []AvailabilityRecord {
	sorted := sortedCopy(rows, lessDateTotal)
	return dedupBy(sorted, func(r AvailabilityRecord) availabilityKey {
		return availabilityKey{date: r.Date.String(), total: r.TotalAvailability}
	})
}

// =============================================================================
// GROUPED TOP-K SELECTION
// =============================================================================

// TopPricesPerDay keeps, for each date, the k highest-priced rows after
// (date, company) deduplication, and returns them ordered by
// (date asc, company asc). A date with fewer than k deduplicated rows
// contributes all of them.
func TopPricesPerDay(rows []PriceRecord, k int) []PriceRecord {
	if k <= 0 {
		return nil
	}

	// Order within each day decides who makes the cut, so the pre-sort here
	// is (date asc, price desc); dedup then keeps each company's highest
	// price for the day.
	sorted := sortedCopy(rows, lessDatePriceDesc)
	unique := dedupBy(sorted, func(r PriceRecord) dailyPriceKey {
		return dailyPriceKey{date: r.Date.String(), company: r.Company}
	})

	out := make([]PriceRecord, 0, len(unique))
	taken := 0
	for i, r := range unique {
		if i > 0 && !r.Date.Equal(unique[i-1].Date) {
			taken = 0
		}
		if taken < k {
			out = append(out, r)
			taken++
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return lessDateCompany(out[i], out[j]) })
	return out
}

// ByPriceDescending re-sorts rows into (date asc, price desc) as a fresh
// slice. The input keeps its own ordering; the two views coexist.
func ByPriceDescending(rows []PriceRecord) []PriceRecord {
	return sortedCopy(rows, lessDatePriceDesc)
}

// =============================================================================
// QUANTITY-RANGE FILTER
// =============================================================================

// FilterQuantityRange keeps rows whose quantity lies in [min, max] inclusive.
// It operates on the raw row set, not a deduplicated view, and is idempotent.
func FilterQuantityRange(rows []PriceRecord, min, max int) []PriceRecord {
	out := make([]PriceRecord, 0, len(rows))
	for _, r := range rows {
		if r.Quantity >= min && r.Quantity <= max {
			out = append(out, r)
		}
	}
	return out
}

// =============================================================================
// COHORT PARTITIONING
// =============================================================================

// DistinctCompanies returns company names in first-appearance order.
func DistinctCompanies(rows []PriceRecord) []string {
	seen := make(map[string]struct{}, len(rows))
	var out []string
	for _, r := range rows {
		if _, ok := seen[r.Company]; ok {
			continue
		}
		seen[r.Company] = struct{}{}
		out = append(out, r.Company)
	}
	return out
}

// CompanyCohorts partitions companies into contiguous pages of at most
// pageSize names. The company count must equal expected exactly; a mismatch
// is a CardinalityError, never a silently adjusted partition. 21 companies
// at page size 7 yield [7 7 7]; 20 yield [7 7 6].
func CompanyCohorts(companies []string, expected, pageSize int) ([]Cohort, error) {
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}
	if len(companies) != expected {
		return nil, &CardinalityError{Got: len(companies), Want: expected}
	}

	pages := splitPages(companies, pageSize)
	cohorts := make([]Cohort, len(pages))
	for i, p := range pages {
		cohorts[i] = Cohort(p)
	}
	return cohorts, nil
}

// FilterByCompanies returns the subset of rows whose company belongs to the
// cohort, preserving row order. Used to slice the full price row set into
// per-cohort chart inputs.
func FilterByCompanies(rows []PriceRecord, cohort Cohort) []PriceRecord {
	members := make(map[string]struct{}, len(cohort))
	for _, c := range cohort {
		members[c] = struct{}{}
	}

	out := make([]PriceRecord, 0, len(rows))
	for _, r := range rows {
		if _, ok := members[r.Company]; ok {
			out = append(out, r)
		}
	}
	return out
}
