package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-raspir/coverage/species"
	"github.com/cwbudde/algo-raspir/dataset"
	"github.com/cwbudde/algo-raspir/internal/batch"
	"github.com/cwbudde/algo-raspir/measure/uniformity"
	"github.com/cwbudde/algo-raspir/report"
)

// Configuration keys. Flags, config file entries and RASPIR_* environment
// variables share these names.
const (
	keyConfig         = "config"
	keyWorkers        = "workers"
	keyNoPlots        = "no-plots"
	keyFormat         = "format"
	keyKeepNonuniform = "keep-nonuniform"
	keyOutput         = "output"
	keyLogLevel       = "log-level"
	keyNoProgress     = "no-progress"
	keyMinReads       = "min-reads"
	keySeed           = "seed"
	keySubThreshold   = "subsample-threshold"
	keySubSize        = "subsample-size"
	keyAlpha          = "alpha"
	keyMinR           = "min-r"
	keyMaxStdErr      = "max-stderr"
	keyMaxEuclidean   = "max-euclidean"
	keyExclude        = "exclude"
	keyParser         = "species-parser"
)

const envPrefix = "RASPIR"

func registerFlags(fs *pflag.FlagSet) {
	def := uniformity.DefaultConfig()

	fs.String(keyConfig, "", "config file (default raspir.yaml in the working directory)")
	fs.IntP(keyWorkers, "w", runtime.NumCPU(), "organisms analyzed concurrently")
	fs.Bool(keyNoPlots, false, "do not render spectrum plots")
	fs.String(keyFormat, report.FormatCSV, "statistics table format: csv or parquet")
	fs.Bool(keyKeepNonuniform, false, "keep nonuniform organisms in the statistics table")
	fs.StringP(keyOutput, "o", "", "parent directory of the output directories (default next to each input)")
	fs.String(keyLogLevel, "info", "log level: debug, info, warn or error")
	fs.Bool(keyNoProgress, false, "hide the progress bar")
	fs.Int(keyMinReads, def.MinReads, "minimum read starts per organism")
	fs.Uint64(keySeed, def.Subsample.Seed, "subsampling seed")
	fs.Int(keySubThreshold, def.Subsample.Threshold, "read count above which positions are subsampled")
	fs.Int(keySubSize, def.Subsample.SampleSize, "subsample size")
	fs.Float64(keyAlpha, def.Thresholds.Alpha, "p-value limit")
	fs.Float64(keyMinR, def.Thresholds.MinR, "correlation limit")
	fs.Float64(keyMaxStdErr, def.Thresholds.MaxStdErr, "slope standard error limit")
	fs.Float64(keyMaxEuclidean, def.Thresholds.MaxEuclidean, "Euclidean score limit")
	fs.String(keyExclude, dataset.DefaultExcludePattern, "drop organisms whose name contains this pattern")
	fs.String(keyParser, "fields", "species label parser: fields or raw")
}

// loadConfig binds fs into v and reads the config file, if any.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(keyConfig); file != "" {
		v.SetConfigFile(file)
		return v.ReadInConfig()
	}

	v.SetConfigName("raspir")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

// analyzerOptions maps the configuration onto analyzer options.
func analyzerOptions(v *viper.Viper) ([]uniformity.Option, error) {
	parser, err := species.ParserByName(v.GetString(keyParser))
	if err != nil {
		return nil, err
	}

	opts := []uniformity.Option{
		uniformity.WithMinReads(v.GetInt(keyMinReads)),
		uniformity.WithSubsampling(v.GetInt(keySubThreshold), v.GetInt(keySubSize)),
		uniformity.WithSeed(v.GetUint64(keySeed)),
		uniformity.WithThresholds(uniformity.Thresholds{
			Alpha:        v.GetFloat64(keyAlpha),
			MinR:         v.GetFloat64(keyMinR),
			MaxStdErr:    v.GetFloat64(keyMaxStdErr),
			MaxEuclidean: v.GetFloat64(keyMaxEuclidean),
		}),
		uniformity.WithParser(parser),
	}

	if err := uniformity.ApplyOptions(opts...).Validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

// batchOptions maps the configuration onto batch options.
func batchOptions(v *viper.Viper) (batch.Options, error) {
	format := strings.ToLower(v.GetString(keyFormat))
	if !report.ValidFormat(format) {
		return batch.Options{}, fmt.Errorf("unknown format %q", format)
	}

	return batch.Options{
		Workers:        v.GetInt(keyWorkers),
		Plots:          !v.GetBool(keyNoPlots),
		Format:         format,
		KeepNonuniform: v.GetBool(keyKeepNonuniform),
		OutputRoot:     v.GetString(keyOutput),
		Progress:       !v.GetBool(keyNoProgress),
		Exclude:        v.GetString(keyExclude),
	}, nil
}
