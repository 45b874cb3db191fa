// Package perturb draws the synthetic noise that makes each replayed date
// distinguishable from the static snapshot it came from.
//
// A Generator owns its random source. Each unit of work gets its own
// Generator, seeded from the run seed and the unit's identity, so units can
// run in parallel and still reproduce bit-for-bit.
package perturb
