// Package report writes classification records as statistics tables.
//
// The CSV layout has one row per organism with the columns Species,
// r_value, p_value, stError, euclidean and distribution. The Parquet layout
// carries the same columns plus the full organism name, the regression of
// the sample profile on the reference profile, the bin count and the read
// count.
package report
