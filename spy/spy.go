// SPDX-License-Identifier: MIT

// Package spy renders the sparsity pattern of a sparse.Matrix ("spy plot"):
// one square marker per non-zero entry, row 0 at the top, column 0 at the left.
package spy

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/sparsemat/sparse"
)

// ErrFormat is returned for an output format gonum plot cannot write.
var ErrFormat = errors.New("spy: unsupported format")

// Supported output formats.
var formats = map[string]struct{}{
	"png": {}, "svg": {}, "pdf": {}, "eps": {}, "jpg": {}, "jpeg": {}, "tif": {}, "tiff": {},
}

// Default plot geometry.
const (
	DefaultSize   = 10 * vg.Centimeter
	DefaultFormat = "png"
	markerRadius  = 2 // points
)

// Options controls the rendered figure. Zero values pick the defaults.
type Options struct {
	Title  string
	Size   vg.Length // width == height
	Format string    // png, svg, pdf, ...
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	o.Format = strings.ToLower(o.Format)

	return o
}

// ValidFormat reports whether format can be rendered.
func ValidFormat(format string) bool {
	_, ok := formats[strings.ToLower(format)]
	return ok
}

// NewPlot builds the spy plot for m without rendering it.
func NewPlot(m *sparse.Matrix, title string) (*plot.Plot, error) {
	if err := sparse.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("spy: %w", err)
	}
	rows, cols := m.Shape()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("spy: %w", sparse.ErrInvalidDimensions)
	}

	p := plot.New()
	if title == "" {
		title = fmt.Sprintf("%dx%d, nnz=%d", rows, cols, m.NNZ())
	}
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.X.Min, p.X.Max = -0.5, float64(cols)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(rows)-0.5
	p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, m.Len())
	for _, e := range m.Entries() {
		if e.Value == 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(e.Col), Y: float64(e.Row)})
	}
	if len(pts) == 0 {
		return p, nil
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("spy: %w", err)
	}
	sc.GlyphStyle.Shape = draw.BoxGlyph{}
	sc.GlyphStyle.Radius = vg.Points(markerRadius)
	p.Add(sc)

	return p, nil
}

// Render writes the spy plot of m to w in opts.Format.
func Render(w io.Writer, m *sparse.Matrix, opts Options) error {
	opts = opts.withDefaults()
	if !ValidFormat(opts.Format) {
		return fmt.Errorf("%w: %q", ErrFormat, opts.Format)
	}

	p, err := NewPlot(m, opts.Title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Size, opts.Size, opts.Format)
	if err != nil {
		return fmt.Errorf("spy: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// SaveFile renders m into path; the format comes from the file extension.
func SaveFile(path string, m *sparse.Matrix, opts Options) error {
	opts.Format = strings.TrimPrefix(filepath.Ext(path), ".")
	if !ValidFormat(opts.Format) {
		return fmt.Errorf("%w: %q", ErrFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Render(f, m, opts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
