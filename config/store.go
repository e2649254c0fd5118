// SPDX-License-Identifier: MIT

package config

import (
	"sync"

	"github.com/katalvlaran/fuzzy/fuzzy"
	"go.uber.org/zap"
)

// Store holds the process-wide addition strategy. Calculators read it on
// every fuzzy-by-fuzzy addition through fuzzy.WithStrategySource(store.Get),
// so a Set is visible to the next call.
type Store struct {
	mu       sync.RWMutex
	strategy fuzzy.AdditionStrategy
}

// NewStore returns a Store holding initial, or fuzzy.DefaultStrategy when
// initial is empty.
func NewStore(initial fuzzy.AdditionStrategy) *Store {
	if initial == "" {
		initial = fuzzy.DefaultStrategy
	}
	return &Store{strategy: initial}
}

// Set replaces the strategy. Names are not validated.
func (st *Store) Set(s fuzzy.AdditionStrategy) {
	st.mu.Lock()
	st.strategy = s
	st.mu.Unlock()
}

// Get returns the current strategy.
func (st *Store) Get() fuzzy.AdditionStrategy {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.strategy
}

// Calculator returns a fuzzy.Calculator bound to st and logging to logger.
// A nil logger leaves the calculator on zap.L().
func (st *Store) Calculator(logger *zap.Logger) *fuzzy.Calculator {
	opts := []fuzzy.Option{fuzzy.WithStrategySource(st.Get)}
	if logger != nil {
		opts = append(opts, fuzzy.WithLogger(logger))
	}
	return fuzzy.NewCalculator(opts...)
}
