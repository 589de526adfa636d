package config

import (
	"fmt"
	"healthreminder/internal/core/domain/interval"
	"time"

	"go.uber.org/zap/zapcore"
)

const (
	DefaultEyes     = "20m"
	DefaultWater    = "1h"
	DefaultLogLevel = "warn"
)

// Flags holds the raw command line values.
type Flags struct {
	Eyes     string
	Water    string
	LogLevel string
}

func DefaultFlags() Flags {
	return Flags{Eyes: DefaultEyes, Water: DefaultWater, LogLevel: DefaultLogLevel}
}

type Config struct {
	EyesEvery  time.Duration
	WaterEvery time.Duration
	LogLevel   zapcore.Level
}

func Load(flags Flags) (*Config, error) {
	eyesEvery, err := interval.Parse(flags.Eyes, "eyes")
	if err != nil {
		return nil, err
	}

	waterEvery, err := interval.Parse(flags.Water, "water")
	if err != nil {
		return nil, err
	}

	var logLevel zapcore.Level
	if err := logLevel.UnmarshalText([]byte(flags.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid value for --log-level='%s': %w", flags.LogLevel, err)
	}

	return &Config{
		EyesEvery:  eyesEvery,
		WaterEvery: waterEvery,
		LogLevel:   logLevel,
	}, nil
}
