package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Candidate strategies accepted by FILLER_STRATEGY.
const (
	StrategyAuto      = "auto"
	StrategyTerritory = "territory"
	StrategyGrid      = "grid"
)

// Row policies accepted by FILLER_ROW_POLICY.
const (
	RowPolicySkip = "skip"
	RowPolicyPad  = "pad"
)

const DefaultUnreachablePenalty = 1_000_000

type Engine struct {
	// UnreachablePenalty is added to a placement score for every star that
	// lands on an unreachable or off-board cell.
	UnreachablePenalty int    `json:"unreachablePenalty"`
	Strategy           string `json:"strategy"`
	RowPolicy          string `json:"rowPolicy"`
}

var ErrInvalidEngine = errors.New("invalid engine config")

// Merge applies the non-zero fields of patch on top of e and validates the
// result.
func (e Engine) Merge(patch Engine) (Engine, error) {
	out := e
	if patch.UnreachablePenalty != 0 {
		if patch.UnreachablePenalty < 0 {
			return e, fmt.Errorf("%w: penalty %d", ErrInvalidEngine, patch.UnreachablePenalty)
		}
		out.UnreachablePenalty = patch.UnreachablePenalty
	}
	if patch.Strategy != "" {
		switch v := strings.ToLower(patch.Strategy); v {
		case StrategyAuto, StrategyTerritory, StrategyGrid:
			out.Strategy = v
		default:
			return e, fmt.Errorf("%w: strategy %q", ErrInvalidEngine, patch.Strategy)
		}
	}
	if patch.RowPolicy != "" {
		switch v := strings.ToLower(patch.RowPolicy); v {
		case RowPolicySkip, RowPolicyPad:
			out.RowPolicy = v
		default:
			return e, fmt.Errorf("%w: row policy %q", ErrInvalidEngine, patch.RowPolicy)
		}
	}
	return out, nil
}

type Config struct {
	Engine      Engine `json:"engine"`
	HTTPAddr    string `json:"httpAddr"`
	MaxSessions int    `json:"maxSessions"`
	Debug       bool   `json:"debug"`
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvOneOf(key, def string, allowed ...string) string {
	v := strings.ToLower(getenv(key, def))
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		Engine: Engine{
			UnreachablePenalty: DefaultUnreachablePenalty,
			Strategy:           StrategyAuto,
			RowPolicy:          RowPolicySkip,
		},
		HTTPAddr:    ":8080",
		MaxSessions: 256,
	}
}

func Load() Config {
	def := Default()
	cfg := Config{
		Engine: Engine{
			UnreachablePenalty: getenvInt("FILLER_PENALTY", def.Engine.UnreachablePenalty),
			Strategy:           getenvOneOf("FILLER_STRATEGY", def.Engine.Strategy, StrategyAuto, StrategyTerritory, StrategyGrid),
			RowPolicy:          getenvOneOf("FILLER_ROW_POLICY", def.Engine.RowPolicy, RowPolicySkip, RowPolicyPad),
		},
		HTTPAddr:    getenv("HTTP_ADDR", def.HTTPAddr),
		MaxSessions: getenvInt("FILLER_MAX_SESSIONS", def.MaxSessions),
		Debug:       getenvInt("FILLER_DEBUG", 0) == 1,
	}
	if cfg.Engine.UnreachablePenalty <= 0 {
		cfg.Engine.UnreachablePenalty = def.Engine.UnreachablePenalty
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = def.MaxSessions
	}
	return cfg
}

var (
	once   sync.Once
	global Config
)

// Get returns the process-wide configuration, loading it from the
// environment on first use.
func Get() *Config {
	once.Do(func() {
		global = Load()
	})
	return &global
}
