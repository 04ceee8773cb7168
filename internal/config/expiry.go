// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseExpiry parses a token lifetime expression into a time.Duration.
//
// Two forms are accepted:
//   - any expression understood by time.ParseDuration ("24h", "15m", "90s");
//   - a whole number of days with a "d" suffix ("7d"), which Go's duration
//     syntax does not cover but token lifetimes are commonly written in.
//
// Returns a wrapped [ErrInvalidExpiry] for empty, negative, or otherwise
// unparseable input.
func ParseExpiry(expr string) (time.Duration, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return 0, fmt.Errorf("%w: empty expression", ErrInvalidExpiry)
	}

	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidExpiry, expr)
		}
		if n < 0 {
			return 0, fmt.Errorf("%w: negative lifetime %q", ErrInvalidExpiry, expr)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExpiry, expr)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: negative lifetime %q", ErrInvalidExpiry, expr)
	}

	return d, nil
}
