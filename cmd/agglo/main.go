// Command agglo clusters the entities of a tab-delimited file with
// single-linkage agglomerative clustering and prints the final partition.
//
//	agglo --file data.txt --iterations 27 --standardize
//
// Without --iterations the merge count is read from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/TrevorS/agglo"
	"github.com/TrevorS/agglo/internal/config"
	"github.com/TrevorS/agglo/internal/dataset"
	"github.com/TrevorS/agglo/internal/logging"
	"github.com/TrevorS/agglo/internal/prompt"
	"github.com/TrevorS/agglo/internal/report"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "agglo:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "agglo",
		Usage:     "single-linkage agglomerative clustering of tab-delimited records",
		UsageText: "agglo [--file data.txt] [--iterations N] [--standardize]",
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file; flags override its values",
				EnvVars: []string{"AGGLO_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   dataset.DefaultPath,
				Usage:   "tab-delimited data file: name followed by attribute values",
				EnvVars: []string{"AGGLO_FILE"},
			},
			&cli.IntFlag{
				Name:    "iterations",
				Aliases: []string{"n"},
				Value:   config.PromptIterations,
				Usage:   "number of merges to perform; prompt on stdin when negative",
				EnvVars: []string{"AGGLO_ITERATIONS"},
			},
			&cli.BoolFlag{
				Name:    "standardize",
				Aliases: []string{"s"},
				Usage:   "z-score every attribute column before clustering",
				EnvVars: []string{"AGGLO_STANDARDIZE"},
			},
			&cli.StringFlag{
				Name:    "strategy",
				Value:   string(agglo.StrategyAuto),
				Usage:   "nearest-pair strategy: auto, brute or matrix",
				EnvVars: []string{"AGGLO_STRATEGY"},
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "goroutines used to build the distance matrix (0 = all CPUs)",
			},
			&cli.BoolFlag{
				Name:  "keep-duplicates",
				Usage: "keep every record instead of letting a repeated name replace the earlier one",
			},
			&cli.BoolFlag{
				Name:    "show-attributes",
				Aliases: []string{"a"},
				Usage:   "print attribute values next to each name",
			},
			&cli.IntFlag{
				Name:  "precision",
				Value: 3,
				Usage: "decimals for printed attribute values (negative = shortest exact)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level: debug, info, warn or error",
				EnvVars: []string{"AGGLO_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   logging.FormatText,
				Usage:   "log format: text or json",
				EnvVars: []string{"AGGLO_LOG_FORMAT"},
			},
		},
		Action: run,
	}
}

// loadConfig layers explicitly set flags over the config file (or defaults).
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	if c.IsSet("file") {
		cfg.File = c.String("file")
	}
	if c.IsSet("iterations") {
		cfg.Iterations = max(c.Int("iterations"), config.PromptIterations)
	}
	if c.IsSet("standardize") {
		cfg.Standardize = c.Bool("standardize")
	}
	if c.IsSet("strategy") {
		cfg.Strategy = c.String("strategy")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("keep-duplicates") {
		cfg.KeepDuplicates = c.Bool("keep-duplicates")
	}
	if c.IsSet("show-attributes") {
		cfg.Output.ShowAttributes = c.Bool("show-attributes")
	}
	if c.IsSet("precision") {
		cfg.Output.Precision = c.Int("precision")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	return cfg, cfg.Validate()
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger, err := logging.New(c.App.ErrWriter, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	entities, err := dataset.LoadFile(cfg.File, dataset.Options{KeepDuplicates: cfg.KeepDuplicates})
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"file":     cfg.File,
		"entities": len(entities),
	}).Info("dataset loaded")

	iterations := cfg.Iterations
	if iterations == config.PromptIterations {
		promptOut := io.Discard
		if interactive(c.App.Reader) {
			promptOut = c.App.ErrWriter
		}
		if iterations, err = prompt.Iterations(c.App.Reader, promptOut, len(entities)); err != nil {
			return err
		}
	}

	engineCfg := cfg.Engine()
	engineCfg.Logger = logger

	start := time.Now()
	result, err := agglo.Run(entities, iterations, engineCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.WithFields(logrus.Fields{
		"iterations": iterations,
		"clusters":   len(result.Clusters),
		"distance":   result.Distance,
		"elapsed":    elapsed,
	}).Info("clustering finished")

	out := c.App.Writer
	if err := report.WritePartition(out, result.Clusters, report.Options{
		ShowAttributes: cfg.Output.ShowAttributes,
		Precision:      cfg.Output.Precision,
	}); err != nil {
		return err
	}
	fmt.Fprintf(out, "Distance: %s\n", report.FormatDistance(result.Distance))
	fmt.Fprintf(out, "Elapsed: %s\n", elapsed)
	return nil
}

// interactive reports whether r is a terminal, so prompts are worth showing.
func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
