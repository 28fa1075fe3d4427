// Package dataset loads per-position coverage tables into organisms.
//
// A table is a CSV file with at least the columns Organism, Position,
// GenomeLength and Depth, one row per covered position. Rows are grouped by
// organism in file order. Files may be compressed with gzip, xz or zstd.
package dataset
