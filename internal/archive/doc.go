// Package archive writes per-unit zip archives of JSON entries.
//
// An archive is assembled in a temporary file beside its final path and only
// renamed into place by Commit, so a failed unit never leaves a partial
// archive behind. Entry timestamps are fixed, which makes archives
// byte-identical across runs with the same seed.
package archive
