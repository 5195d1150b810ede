package model

import (
	"fmt"
	"strings"
)

// Color is a CSS color value, either a hex literal from the mapping table or
// an hsl() value derived for unmapped departments.
type Color string

// String returns the string representation of Color
func (c Color) String() string {
	return string(c)
}

// DefaultColor is returned for records without a department.
const DefaultColor Color = "#e5e7eb"

const (
	fallbackSaturation = 80
	fallbackLightness  = 65
)

// ColorMap resolves a department name to its display color. Known
// departments use the configured table; unknown ones get a deterministic
// hash-derived hue so the same name renders the same color everywhere.
type ColorMap struct {
	table map[string]Color
	// lowercased key -> canonical key, for case-insensitive lookup
	folded map[string]string
}

// NewColorMap builds a resolver from a department -> color table.
func NewColorMap(table map[string]Color) *ColorMap {
	m := &ColorMap{
		table:  make(map[string]Color, len(table)),
		folded: make(map[string]string, len(table)),
	}
	for name, c := range table {
		m.table[name] = c
		m.folded[strings.ToLower(name)] = name
	}
	return m
}

// DefaultColorMap returns the built-in department color table.
func DefaultColorMap() *ColorMap {
	return NewColorMap(map[string]Color{
		"Research and Development": "#FF6D00",
		"Finance":                  "#4CAF50",
		"Human Resources":          "#FF4081",
		"Marketing":                "#2196F3",
	})
}

// Resolve maps a department name to a display color. Lookup order: exact
// table match, case-insensitive table match, then the deterministic hash
// fallback. Empty input yields DefaultColor.
func (m *ColorMap) Resolve(department string) Color {
	if department == "" {
		return DefaultColor
	}

	if c, ok := m.table[department]; ok {
		return c
	}
	if canonical, ok := m.folded[strings.ToLower(department)]; ok {
		return m.table[canonical]
	}

	return fallbackColor(department)
}

// fallbackColor derives a color from the department name alone. The rolling
// hash uses signed 32-bit wraparound so the result never depends on map
// order, memory layout or a process seed.
func fallbackColor(department string) Color {
	var acc int32
	for _, r := range department {
		acc = acc<<5 - acc + int32(r)
	}

	hue := acc % 360
	if hue < 0 {
		hue = -hue
	}
	return Color(fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, fallbackSaturation, fallbackLightness))
}
