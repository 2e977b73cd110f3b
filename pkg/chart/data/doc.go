// Package data turns per-state records into the entries a chart pass plots.
//
// A [Record] is one row of the upstream feed: a state, its abbreviation, the
// total incident count, the count attributable to men and the population.
// [Transform] derives an [Entry] per record with rates per 100k population,
// rounded independently to two decimals:
//
//	male    = round(male_count / population * 100000)
//	female  = round((count - male_count) / population * 100000)
//	per100k = round(count / population * 100000)
//
// The female rate is computed from the count difference rather than as
// per100k minus male, so each rate carries at most one rounding step. The two
// sub-rates therefore add up to per100k only within 0.01.
//
// Records whose population is zero, negative or not a finite number produce
// an entry with every rate set to 0 and Invalid set. They stay in the chart
// (with zero-width bars) so the ranking still lists every state.
//
// Entries are recomputed on every render pass and never mutated after
// [SortByRate]. Nothing here is cached across passes.
package data
