package main

import (
	"flag"
	"io"
	"os"

	"acadcal/internal/calendar"
	"acadcal/internal/config"
	"acadcal/internal/export"
	appLog "acadcal/internal/log"
)

// flagConfig holds CLI flag values; non-zero values override the config file.
type flagConfig struct {
	configPath string
	startYear  int
	endYear    int
	logLevel   string
	format     string
	output     string
}

func main() {
	flags := parseFlags()

	// Without -config, run on built-in defaults; with it, use the
	// teacher-style load (first run writes the default file).
	conf := config.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			appLog.Error("failed to load config", err, "config_path", flags.configPath)
			os.Exit(1)
		}
		conf = loaded
	}

	// CLI flags override config file values if provided.
	if flags.startYear != 0 {
		conf.StartYear = flags.startYear
	}
	if flags.endYear != 0 {
		conf.EndYear = flags.endYear
	}
	if flags.logLevel != "" {
		conf.LogLevel = flags.logLevel
	}
	if flags.format != "" {
		conf.Format = flags.format
	}
	if flags.output != "" {
		conf.Output = flags.output
	}
	conf.Normalize()

	appLog.SetLevel(appLog.ParseLevel(conf.LogLevel))
	appLog.Debug("effective config",
		"start_year", conf.StartYear,
		"end_year", conf.EndYear,
		"format", conf.Format,
		"output", conf.Output,
	)

	cal, err := calendar.New(calendar.Options{
		StartYear: conf.StartYear,
		EndYear:   conf.EndYear,
	})
	if err != nil {
		appLog.Error("failed to build calendar", err,
			"start_year", conf.StartYear,
			"end_year", conf.EndYear,
		)
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if conf.Output != "" {
		f, err := os.Create(conf.Output)
		if err != nil {
			appLog.Error("failed to create output file", err, "output", conf.Output)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	switch conf.Format {
	case config.FormatCSV:
		err = export.CSV(cal.Events(), out)
	case config.FormatICS:
		_, err = io.WriteString(out, export.ICS(cal.Events()))
	default:
		err = export.Table(cal.Events(), out)
	}
	if err != nil {
		appLog.Error("failed to write output", err, "format", conf.Format)
		os.Exit(1)
	}
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to YAML config file (optional)")
	flag.IntVar(&cfg.startYear, "start-year", 0, "First academic year (overrides config if set)")
	flag.IntVar(&cfg.endYear, "end-year", 0, "End academic year, exclusive (overrides config if set)")
	flag.StringVar(&cfg.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&cfg.format, "format", "", "Output format: table, csv, ics")
	flag.StringVar(&cfg.output, "o", "", "Output file (default stdout)")

	flag.Parse()

	return cfg
}
