// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/fuzzy/collection"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoSeries indicates an empty series list.
var ErrNoSeries = errors.New("render: nothing to plot")

// Default canvas size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// yHeadroom keeps the plateau at membership 1 off the top border.
const yHeadroom = 1.05

const panicBadSize = "render: WithSize requires positive width and height"

// Option configures a rendering.
type Option func(*options)

type options struct {
	title         string
	width, height vg.Length
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithSize sets the canvas size. Panics on non-positive dimensions.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic(panicBadSize)
	}
	return func(o *options) { o.width, o.height = width, height }
}

func gather(opts []Option) options {
	o := options{title: "membership", width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Plot builds one line per series over x and membership axes, with a
// legend keyed by Series.Label. The y axis is fixed to [0, 1.05].
// Errors: ErrNoSeries, or a plotter error for non-finite points.
func Plot(series []collection.Series, opts ...Option) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}
	o := gather(opts)

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "membership"

	for i, s := range series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X, xys[j].Y = pt.X, pt.Mu
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("Plot: series %q: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Label, line)
	}
	p.Y.Min, p.Y.Max = 0, yHeadroom
	return p, nil
}

// Save renders series to path; the format follows the extension
// (png, svg, pdf, ...).
func Save(path string, series []collection.Series, opts ...Option) error {
	p, err := Plot(series, opts...)
	if err != nil {
		return err
	}
	o := gather(opts)
	if err := p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("Save %s: %w", path, err)
	}
	return nil
}

// Write renders series to w in format ("png", "svg", "pdf", ...).
func Write(w io.Writer, format string, series []collection.Series, opts ...Option) error {
	p, err := Plot(series, opts...)
	if err != nil {
		return err
	}
	o := gather(opts)
	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return fmt.Errorf("Write %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("Write %s: %w", format, err)
	}
	return nil
}
