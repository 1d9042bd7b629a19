package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/MikeSquared-Agency/boxrank/internal/catalog"
	"github.com/MikeSquared-Agency/boxrank/internal/presets"
	"github.com/MikeSquared-Agency/boxrank/internal/scoring"
)

const ruleWidth = 80

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) rule() {
	p.printf("%s\n", strings.Repeat("=", ruleWidth))
}

// Suite writes the catalog followed by a ranked section per preset.
func Suite(w io.Writer, cat *catalog.Catalog, s *scoring.Scorer, suite []presets.Preset) error {
	p := &printer{w: w}

	p.rule()
	p.printf("BOX RECOMMENDATION TOOL - TEST SUITE\n")
	p.rule()
	p.printf("\nPenalty policy: %s\n", s.Policy().Mode)
	writeCatalog(p, cat)

	for _, preset := range suite {
		ranking, err := s.Rank(cat, preset.Weights)
		if err != nil {
			return fmt.Errorf("preset %s: %w", preset.Slug, err)
		}
		p.printf("\n")
		p.rule()
		p.printf("%s\n", preset.Name)
		p.rule()
		writeRanking(p, cat, preset.Weights, ranking)
	}

	p.printf("\n")
	p.rule()
	return p.err
}

// Ranking writes a single ranked result for an ad-hoc importance vector.
func Ranking(w io.Writer, cat *catalog.Catalog, weights []int, ranking *scoring.Ranking) error {
	p := &printer{w: w}
	writeRanking(p, cat, weights, ranking)
	return p.err
}

func writeCatalog(p *printer, cat *catalog.Catalog) {
	p.printf("\nDevice Ratings (1=best, 10=worst):\n")
	width := nameWidth(cat)
	for _, d := range cat.Devices {
		parts := make([]string, len(d.Ratings))
		for i, r := range d.Ratings {
			parts[i] = cat.Features[i].Key + "=" + strconv.Itoa(r)
		}
		p.printf("  %s  %s\n", padRight(d.Name, width), strings.Join(parts, " "))
	}
}

func writeRanking(p *printer, cat *catalog.Catalog, weights []int, ranking *scoring.Ranking) {
	p.printf("\nUser Importance Ratings (1=most important, 10=least):\n")
	for i, f := range cat.Features {
		p.printf("  %s: %d\n", f.Name, weights[i])
	}

	width := nameWidth(cat) + 1

	p.printf("\nRaw Scores (lower is better):\n")
	for _, e := range ranking.Entries {
		p.printf("  %s %s\n", padRight(e.Name+":", width), strconv.FormatFloat(e.Raw, 'f', -1, 64))
	}

	p.printf("\nNormalized Scores (1=best, 10=worst):\n")
	for _, e := range ranking.Entries {
		p.printf("  %s %5.2f %s\n", padRight(e.Name+":", width), e.Normalized, Stars(e.Stars))
	}

	p.printf("\n🏆 Winner: %s\n", ranking.Winner)
}

// Stars renders n filled stars out of five.
func Stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func nameWidth(cat *catalog.Catalog) int {
	var width int
	for _, d := range cat.Devices {
		if w := runewidth.StringWidth(d.Name); w > width {
			width = w
		}
	}
	return width
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
