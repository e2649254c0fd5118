// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/katalvlaran/fuzzy/config"
	"github.com/katalvlaran/fuzzy/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefault(t *testing.T) {
	s := config.Default()
	assert.Equal(t, fuzzy.StrategyDefault, s.AdditionStrategy)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, 10, s.Random.Triangular.N)
	require.NoError(t, s.Random.Triangular.Validate())
	require.NoError(t, s.Random.Trapezoidal.Validate())
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	s, err := config.Parse([]byte(`
addition_strategy: parametric
random:
  seed: 7
  trapezoidal:
    n: 3
    width_min: 1
    width_max: 2
`))
	require.NoError(t, err)
	assert.Equal(t, fuzzy.StrategyParametric, s.AdditionStrategy)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, int64(7), s.Random.Seed)
	assert.Equal(t, 3, s.Random.Trapezoidal.N)
	assert.Equal(t, 1.0, s.Random.Trapezoidal.WidthMin)
	// siblings of an overridden key keep their defaults
	assert.Equal(t, 1.0, s.Random.Trapezoidal.CenterStd)

	_, err = config.Parse([]byte("log: [unclosed"))
	assert.Error(t, err)
}

func TestParse_UnknownStrategyAccepted(t *testing.T) {
	s, err := config.Parse([]byte("addition_strategy: bogus"))
	require.NoError(t, err)
	assert.False(t, s.AdditionStrategy.Known())
}

func TestSaveLoad(t *testing.T) {
	t.Setenv(config.EnvStrategy, "")
	path := filepath.Join(t.TempDir(), "nested", "fuzzy.yaml")

	s := config.Default()
	s.AdditionStrategy = fuzzy.StrategyExtensionPrinciple
	s.Log.Development = true
	s.Random.Seed = 99
	require.NoError(t, s.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoad_MissingFileAndEnv(t *testing.T) {
	t.Setenv(config.EnvStrategy, "parametric")
	s, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, fuzzy.StrategyParametric, s.AdditionStrategy)

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "cfg"), 0o755))
	_, err = config.Load(filepath.Join(dir, "cfg"))
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	s := config.Default()
	s.Log.Level = "warn"
	logger, err := s.Logger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	s.Log.Level = ""
	s.Log.Development = true
	logger, err = s.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))

	s.Log.Level = "loud"
	_, err = s.Logger()
	assert.ErrorIs(t, err, config.ErrLogLevel)
}

// TestStore_DrivesCalculator: a Set is seen by the next addition.
func TestStore_DrivesCalculator(t *testing.T) {
	store := config.NewStore("")
	assert.Equal(t, fuzzy.StrategyDefault, store.Get())

	core, logs := observer.New(zap.WarnLevel)
	calc := store.Calculator(zap.New(core))

	a, err := fuzzy.NewTriangular(0, 1, 2)
	require.NoError(t, err)

	_, err = calc.Add(a, a)
	require.NoError(t, err)

	store.Set(fuzzy.StrategyParametric)
	_, err = calc.Add(a, a)
	assert.ErrorIs(t, err, fuzzy.ErrNotImplemented)

	store.Set("bogus")
	_, err = calc.Add(a, a)
	assert.ErrorIs(t, err, fuzzy.ErrUnknownStrategy)

	_, err = calc.RAdd(1.0, a)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len())

	assert.NotNil(t, store.Calculator(nil))
}

func TestStore_Concurrent(t *testing.T) {
	store := config.NewStore(fuzzy.StrategyDefault)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Set(fuzzy.StrategyParametric)
		}()
		go func() {
			defer wg.Done()
			_ = store.Get()
		}()
	}
	wg.Wait()
	assert.Equal(t, fuzzy.StrategyParametric, store.Get())
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Setenv(config.EnvStrategy, "")
	s, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)
}
