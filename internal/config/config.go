package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Every value has a default, so the tool runs without any config file.
type Config struct {
	// Environment selects the logger flavour (development or production)
	Environment string `env:"ENVIRONMENT" env-default:"production" yaml:"environment"`

	// Reference is the published Moxon design all calculations are scaled from
	Reference struct {
		// FrequencyMHz is the design frequency of the reference antenna
		FrequencyMHz float64 `env:"MOXON_REFERENCE_FREQUENCY_MHZ" env-default:"868" yaml:"frequencyMHz"`
		// DiameterMM is the wire diameter the reference antenna was built from
		DiameterMM float64 `env:"MOXON_REFERENCE_DIAMETER_MM" env-default:"1.5" yaml:"diameterMM"`
		// A is the long side of both elements in millimetres
		A float64 `env:"MOXON_REFERENCE_A" env-default:"124" yaml:"a"`
		// B is the driven element tail in millimetres
		B float64 `env:"MOXON_REFERENCE_B" env-default:"8.5" yaml:"b"`
		// C is the gap between the element tails in millimetres
		C float64 `env:"MOXON_REFERENCE_C" env-default:"18" yaml:"c"`
		// D is the reflector tail in millimetres
		D float64 `env:"MOXON_REFERENCE_D" env-default:"19.5" yaml:"d"`
		// E is the overall depth in millimetres
		E float64 `env:"MOXON_REFERENCE_E" env-default:"46" yaml:"e"`
		// ImpedanceOhm is the feed impedance of the reference antenna
		ImpedanceOhm float64 `env:"MOXON_REFERENCE_IMPEDANCE_OHM" env-default:"50" yaml:"impedanceOhm"`
	} `yaml:"reference"`
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. A missing file is not an error: values then come from the
// environment and the defaults only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		_, err := os.Stat(configPath)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return nil, fmt.Errorf("could not read config: %w", err)
			}

			return &cfg, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("could not stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from environment: %w", err)
	}

	return &cfg, nil
}
