// Package sequence implements the core engine for arithmetic and geometric
// sequence generation. Given a first term, a step parameter (common difference
// or common ratio) and a term count, it produces the ordered list of terms,
// a summary (last term and running sum), and descriptive closed-form formula
// text for display.
//
// All operations are deterministic, side-effect-free and synchronous. Every
// request is validated before generation runs; results are produced fresh per
// request and never cached.
package sequence
