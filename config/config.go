// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/fuzzy/fuzzy"
	"github.com/katalvlaran/fuzzy/random"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvStrategy overrides the addition strategy of a loaded file.
const EnvStrategy = "FUZZY_ADDITION_STRATEGY"

// ErrLogLevel indicates an unparsable log.level value.
var ErrLogLevel = errors.New("config: invalid log level")

// Settings holds everything a fuzzy tool reads from disk.
type Settings struct {
	// AdditionStrategy is not checked here; unknown names fail at the first
	// fuzzy-by-fuzzy addition with fuzzy.ErrUnknownStrategy.
	AdditionStrategy fuzzy.AdditionStrategy `yaml:"addition_strategy"`

	Log    LogSettings    `yaml:"log"`
	Random RandomSettings `yaml:"random"`
}

// LogSettings configures the zap logger built by Settings.Logger.
type LogSettings struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// RandomSettings holds the default populations of the random command.
type RandomSettings struct {
	Seed        int64                    `yaml:"seed"`
	Triangular  random.TriangularParams  `yaml:"triangular"`
	Trapezoidal random.TrapezoidalParams `yaml:"trapezoidal"`
}

// Default returns the built-in settings.
func Default() *Settings {
	tri := random.TriangularParams{
		N:          10,
		CenterMean: 0,
		CenterStd:  1,
		LeftMin:    0.5,
		LeftMax:    1.5,
		RightMin:   0.5,
		RightMax:   1.5,
	}
	return &Settings{
		AdditionStrategy: fuzzy.DefaultStrategy,
		Log: LogSettings{
			Level: "info",
		},
		Random: RandomSettings{
			Triangular: tri,
			Trapezoidal: random.TrapezoidalParams{
				TriangularParams: tri,
				WidthMin:         0.5,
				WidthMax:         1.5,
			},
		},
	}
}

// Parse decodes YAML on top of Default. Keys absent from data keep their
// default values.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return s, nil
}

// Load reads path and applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Settings, error) {
	s := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if s, err = Parse(data); err != nil {
				return nil, err
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	s.applyEnvOverrides()
	return s, nil
}

// Save writes s to path as YAML, creating parent directories.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (s *Settings) applyEnvOverrides() {
	if v := os.Getenv(EnvStrategy); v != "" {
		s.AdditionStrategy = fuzzy.AdditionStrategy(v)
	}
}

// Logger builds a zap logger from s.Log. An empty level means info.
func (s *Settings) Logger() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if s.Log.Level != "" {
		var err error
		if level, err = zapcore.ParseLevel(s.Log.Level); err != nil {
			return nil, fmt.Errorf("%q: %w", s.Log.Level, ErrLogLevel)
		}
	}

	cfg := zap.NewProductionConfig()
	if s.Log.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
