// Package parasail binds the parasail pairwise sequence alignment library
// (Smith-Waterman, Needleman-Wunsch and semi-global variants with SIMD
// kernels) via dynamic loading. The native library is resolved on first use
// from libparasail.so / libparasail.dylib / parasail.dll, overridable with
// PARASAIL_LIBRARY.
//
// The alignment entry points come in two shapes: a sequence pair with gap
// costs and a Matrix, or a precomputed Profile plus a reference. Each of the
// several hundred native variants is exposed both as a named function (NW,
// SWStatsTableStriped16, ...) and through Align/AlignProfile with a Config
// naming the algorithm, output mode, vectorization strategy and lane width.
//
// Every handle type (Matrix, Profile, Result, Cigar, Sequences) wraps native
// memory and must be released with Close; Close is safe to call more than
// once but handles must not be used afterwards. Result accessors beyond the
// score and end positions are gated on the capability flags of the
// configuration that produced the result.
//
//go:generate go run generate.go
package parasail
