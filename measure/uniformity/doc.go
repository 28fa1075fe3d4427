// Package uniformity classifies whether the reads of an organism cover its
// reference genome uniformly.
//
// For each organism the [Analyzer] runs the full pipeline:
//
//   - deduplicate reads into read starts, drop organisms with too few starts
//   - fold positions around the genome midpoint and build a synthetic,
//     evenly spaced reference with the same read count
//   - turn both position sets into sorted pairwise-distance signals,
//     subsampling large sets with a seeded generator
//   - compare the rounded DFT magnitude profiles of both signals
//   - classify the similarity statistics against fixed [Thresholds]
//
// # Usage
//
//	a := uniformity.NewAnalyzer()
//	res, err := a.Analyze(org)
//	switch {
//	case uniformity.IsSkip(err):
//		// filtered out, not a fault
//	case err != nil:
//		return err
//	}
//	fmt.Println(res.Record.Species, res.Record.Distribution)
package uniformity
