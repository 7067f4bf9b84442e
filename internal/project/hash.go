package project

// Digest is a fixed 256-bit hash, layout-compatible with source.File.Hash.
type Digest [32]byte
