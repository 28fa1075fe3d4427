// Package spectrum turns pairwise-distance signals into comparable magnitude
// profiles.
//
// The DFT itself lives in package transform. This package rounds the complex
// bins to integers before taking magnitudes, so floating-point residue does
// not leak energy into otherwise empty bins, then scales and rounds the
// magnitudes to a fixed number of decimals. It also provides the
// sample-rate free frequency coordinate of each bin for plotting.
package spectrum
