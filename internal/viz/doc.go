// Package viz is the terminal display surface for the boids simulation.
//
// [Model] is a Bubble Tea program that drives a [sim.Simulator] with a
// fixed-step [sim.Stepper] and draws every agent as a short heading line on
// a braille [Canvas]. One braille dot covers [PixelScale] viewport units, so
// the viewport grows and shrinks with the terminal.
//
// # Key Bindings
//
//	L R Y B M S F C - Toggle a pattern (Lissajous, Rose, hYpocycloid,
//	                  Butterfly, Maurer rose, Spirograph, Fermat, Cardioid)
//	N               - Back to flocking
//	T               - Cycle color themes
//	?               - Show help overlay
//	Q               - Quit
//
// Pattern keys are ignored while auto mode cycles the patterns itself.
package viz
