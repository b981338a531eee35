// Package searches finds pages by coordinates, pattern or literal text.
//
// Free-form input is classified in order: four numeric fields are coordinates,
// a valid regular expression using metacharacters is a pattern, anything else is
// a literal. Patterns are searched by sampling random coordinates up to an attempt
// ceiling, testing the unwrapped page text. Literals are handled by the configured
// Policy: scanning samples pages the same way until one already contains the
// literal; embedding plants the literal into a random page and always succeeds.
//
// Sampling is not exhaustive. A search that exhausts its ceiling reports
// ErrNotFound even though matching pages exist elsewhere in the library.
//
// Attempt k samples coordinates from a PCG stream keyed by (seed, k). Attempts run
// on a bounded worker pool and the lowest matching attempt wins, so a fixed seed
// always returns the same page.
package searches
