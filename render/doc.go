// SPDX-License-Identifier: MIT

// Package render draws membership curves with gonum/plot.
//
// It consumes the []collection.Series produced by (*collection.Array).Curves,
// so the numeric side never depends on a plotting library:
//
//	series, _ := arr.Curves(fuzzy.DefaultSamples, nil)
//	err := render.Save("curves.png", series, render.WithTitle("demand"))
package render
