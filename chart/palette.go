package chart

import "fmt"

// DefaultPalette is the fixed ordered palette for company series. 21 entries,
// one per company in the unfiltered data; the quantity-filtered variant uses
// a 20-entry prefix of the same order.
var DefaultPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2",
	"#7f7f7f", "#bcbd22", "#17becf", "#aec7e8", "#ffbb78", "#98df8a", "#ff9896",
	"#c5b0d5", "#c49c94", "#f7b6d2", "#c7c7c7", "#dbdb8d", "#9edae5", "#393b79",
}

// paletteFor returns the n colors starting at offset, in order. Successive
// pages consume successive windows, so every company keeps its own color
// across the whole run. A palette too short to cover a window is a
// configuration error, not something to cycle around.
func paletteFor(palette []string, offset, n int) ([]string, error) {
	if offset+n > len(palette) {
		return nil, fmt.Errorf("palette has %d colors but groups %d through %d need one each",
			len(palette), offset+1, offset+n)
	}
	return palette[offset : offset+n : offset+n], nil
}
