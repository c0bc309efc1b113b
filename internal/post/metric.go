// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package post

import (
	"strconv"
	"strings"
)

// Metric is an engagement counter as the user typed it ("2,849", "1.2k")
// together with a lazily parsed numeric view used for arithmetic.
type Metric struct {
	raw string
}

// NewMetric wraps a display string.
func NewMetric(raw string) Metric {
	return Metric{raw: raw}
}

// MetricOf formats n as a plain integer metric.
func MetricOf(n int64) Metric {
	return Metric{raw: strconv.FormatInt(n, 10)}
}

// String returns the display string unchanged.
func (m Metric) String() string {
	return m.raw
}

// Count parses the display string. Thousands separators are ignored and the
// leading integer is taken ("1.2k" counts as 1); anything without a leading
// integer counts as 0.
func (m Metric) Count() int64 {
	return ParseCount(m.raw)
}

// Add returns a plain integer metric of Count()+delta. The original display
// formatting is not preserved.
func (m Metric) Add(delta int64) Metric {
	return MetricOf(m.Count() + delta)
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	return []byte(m.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	m.raw = string(text)
	return nil
}

// ParseCount strips commas and reads an optionally signed leading integer
// after leading whitespace. Unparseable input yields 0.
func ParseCount(s string) int64 {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
