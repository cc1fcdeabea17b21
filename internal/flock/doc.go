// Package flock implements the boids update rules.
//
// A [Flock] owns a fixed population of [Agent] values stored contiguously;
// an agent's Index never changes and is used as its identity. Each call to
// [Flock.Step] advances every agent once, in index order, mutating in
// place: agent i sees the already-updated state of agents 0..i-1 and the
// previous-tick state of agents i+1..N-1.
//
// Two update rules exist:
//
//   - free flocking: alignment, cohesion and separation over neighbors
//     closer than [Params].NeighborRadius
//   - pattern following: steering toward a point on a [curves.Curve] plus
//     a light separation term
//
// Both rules finish by clamping speed to [Params].MaxSpeed, integrating the
// position and wrapping it toroidally into the viewport.
package flock
