// Package main prints when sunlight first clears Mount Baker as seen from a
// fixed observing location in the Vancouver area.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/devskill-org/peaklight/logging"
	"github.com/devskill-org/peaklight/report"
	"github.com/devskill-org/peaklight/sighting"
)

func main() {
	config := sighting.DefaultConfig()

	logger, err := logging.New(config.LogLevel, config.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}

	if err := run(config, logger); err != nil {
		logger.Error().Err(err).Msg("sighting failed")
		os.Exit(1)
	}
}

func run(config *sighting.Config, logger zerolog.Logger) error {
	logger.Debug().Str("config", config.String()).Msg("starting")

	provider, err := config.NewProvider(config.SolarModel)
	if err != nil {
		return err
	}

	res, err := sighting.Compute(config, provider, logger.With().Str("model", provider.Name()).Logger())
	if err != nil {
		return err
	}

	var crossCheck *sighting.Result
	if config.CrossCheckModel != "" {
		other, err := config.NewProvider(config.CrossCheckModel)
		if err != nil {
			return err
		}
		crossCheck, err = sighting.Compute(config, other, logger.With().Str("model", other.Name()).Logger())
		if err != nil {
			logger.Warn().Err(err).Str("model", other.Name()).Msg("cross-check failed")
			crossCheck = nil
		}
	}

	return report.NewWriter(os.Stdout, report.NewANSIStyler(config.Color)).Write(res, crossCheck)
}
