// Command raspir classifies the read coverage of every organism in one or
// more coverage tables as uniform or nonuniform.
//
// Usage:
//
//	raspir [flags] [file|dir ...]
//
// Without arguments the current directory is scanned for *.raspir.csv
// tables. Every table gets an output directory named after it holding the
// statistics table and one spectrum plot per classified organism.
//
// Examples:
//
//	raspir
//	raspir -w 8 --format parquet sample.raspir.csv.gz
//	raspir --keep-nonuniform --no-plots runs/
//	RASPIR_SEED=7 raspir --config raspir.yaml
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
