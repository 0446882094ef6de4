// Package processor contains the core batch translation logic. It walks
// every (row, language) pair of an input CSV file, consults the
// translation memory before calling the remote translator, validates that
// markup survived the round trip, and writes one output file per target
// language. Per-cell failures fall back to the original source text and
// never abort the batch.
package processor
