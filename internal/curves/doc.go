// Package curves provides the parametric curves boids are attracted to in
// pattern mode.
//
// Every curve maps a parameter t and a viewport size to a point in
// viewport coordinates:
//
//   - [Lissajous], [Rose], [Hypocycloid], [Butterfly]
//   - [MaurerRose], [Spirograph], [FermatSpiral], [Cardioid]
//
// All curves share the scale returned by [Scale] and are centered on the
// viewport, so a pattern keeps its proportions when the window is resized.
//
// # Example
//
//	x, y := curves.Lissajous(0, 800, 600) // (400, 480)
//
// Curves can also be resolved by name through [Lookup].
package curves
