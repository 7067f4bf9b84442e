// Package diag models compiler diagnostics: severities, stable codes,
// the Reporter contract passes emit through, and the Bag accumulator the
// driver renders at the end of a run.
package diag
