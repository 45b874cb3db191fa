// Package dispatch fans units of work out across a bounded worker pool.
//
// Units (one equity or one curve each) share no mutable state, so they run in
// any order. A failing unit is recorded in the Summary and never stops the
// others.
package dispatch
