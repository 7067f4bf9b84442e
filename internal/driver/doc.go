// Package driver orchestrates the pass pipeline: load, parse, analyze,
// lower. It also provides batch directory compilation and a disk cache of
// compiled artifacts keyed by source digest.
package driver
