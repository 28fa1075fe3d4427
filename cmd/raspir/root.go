package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-raspir/internal/batch"
	"github.com/cwbudde/algo-raspir/measure/uniformity"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "raspir [flags] [file|dir ...]",
		Short:         "Classify read coverage of organisms as uniform or nonuniform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, args)
		},
	}

	registerFlags(cmd.Flags())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "raspir", version)
		},
	}
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return log, nil
}

func run(ctx context.Context, v *viper.Viper, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	log, err := newLogger(v.GetString(keyLogLevel))
	if err != nil {
		return err
	}

	if used := v.ConfigFileUsed(); used != "" {
		log.WithField("config", used).Debug("config file loaded")
	}

	aopts, err := analyzerOptions(v)
	if err != nil {
		return err
	}

	bopts, err := batchOptions(v)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := batch.Discover(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		log.Warn("no coverage tables found")
		return nil
	}

	runner := batch.NewRunner(uniformity.NewAnalyzer(aopts...), bopts, log)

	_, err = runner.Run(ctx, files)

	return err
}
