// Package matrix builds the binary occupancy matrices and size vector fed to
// an external integer-linear-programming solver, and writes them to disk in
// a frozen, whitespace-separated text format.
//
// Build assigns every distinct tensor an id 0..T-1 in order of first
// appearance across the schedule's concatenated inputs++outputs lists, then
// populates M0 (first input slot), M1 (second input slot, left zero for
// single-input operators), and M2 (output slot) accordingly.
//
// Errors:
//
//	ErrArtifactIO - writing an artifact file to the destination directory failed.
package matrix
