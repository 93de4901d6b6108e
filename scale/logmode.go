package scale

import (
	"fmt"
	"strings"
)

// LogMode selects how rounding propagates through a log-spaced scale.
type LogMode uint8

const (
	// LogExact feeds the exact value forward and rounds only for storage.
	LogExact LogMode = iota
	// LogRoundedChain feeds the rounded value forward, accumulating rounding.
	LogRoundedChain
)

func (m LogMode) String() string {
	switch m {
	case LogExact:
		return "default"
	case LogRoundedChain:
		return "roundedChain"
	default:
		return "unknown"
	}
}

// ParseLogMode parses "default", "exact" or "roundedChain" (case-insensitive).
func ParseLogMode(name string) (LogMode, error) {
	switch strings.ToLower(name) {
	case "", "default", "exact":
		return LogExact, nil
	case "roundedchain", "rounded":
		return LogRoundedChain, nil
	default:
		return 0, fmt.Errorf("unknown log mode %q", name)
	}
}
