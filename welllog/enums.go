// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package welllog

import (
	"fmt"
	"log/slog"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Smoothing determines whether the curves of a track are smoothed
// before rendering.
type Smoothing int32 //enums:enum -transform lower

const (
	// NoSmoothing renders the curve values as they are.
	NoSmoothing Smoothing = iota

	// SmoothingOn applies a Savitzky-Golay filter to the curve values.
	SmoothingOn

	SmoothingN
)

var _SmoothingMap = map[Smoothing]string{NoSmoothing: "no", SmoothingOn: "yes"}

var _SmoothingValueMap = map[string]Smoothing{"no": NoSmoothing, "yes": SmoothingOn, "false": NoSmoothing, "true": SmoothingOn}

// String returns the string representation of this Smoothing value.
func (i Smoothing) String() string {
	if s, ok := _SmoothingMap[i]; ok {
		return s
	}
	return fmt.Sprintf("Smoothing(%d)", int32(i))
}

// SetString sets the Smoothing value from its string representation,
// and returns an error if the string is invalid.
func (i *Smoothing) SetString(s string) error {
	return setEnumString(i, s, _SmoothingValueMap, "Smoothing")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Smoothing) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// An unknown value is logged and falls back to [NoSmoothing].
func (i *Smoothing) UnmarshalText(text []byte) error {
	unmarshalEnumText(i, text, _SmoothingValueMap, "Smoothing", NoSmoothing)
	return nil
}

// LineStyles are the styles of the line drawn for a curve.
type LineStyles int32 //enums:enum -transform lower

const (
	// Solid is a continuous line.
	Solid LineStyles = iota

	// Dashed is a line of long dashes.
	Dashed

	// Dotted is a line of dots.
	Dotted

	LineStylesN
)

var _LineStylesMap = map[LineStyles]string{Solid: "solid", Dashed: "dashed", Dotted: "dotted"}

var _LineStylesValueMap = map[string]LineStyles{"solid": Solid, "dashed": Dashed, "dotted": Dotted, "-": Solid, "--": Dashed, ":": Dotted}

// String returns the string representation of this LineStyles value.
func (i LineStyles) String() string {
	if s, ok := _LineStylesMap[i]; ok {
		return s
	}
	return fmt.Sprintf("LineStyles(%d)", int32(i))
}

// SetString sets the LineStyles value from its string representation,
// and returns an error if the string is invalid.
func (i *LineStyles) SetString(s string) error {
	return setEnumString(i, s, _LineStylesValueMap, "LineStyles")
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i LineStyles) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// An unknown value is logged and falls back to [Solid].
func (i *LineStyles) UnmarshalText(text []byte) error {
	unmarshalEnumText(i, text, _LineStylesValueMap, "LineStyles", Solid)
	return nil
}

// Dashes returns the dash pattern for the line style,
// scaled to the given line width.
func (i LineStyles) Dashes(width vg.Length) []vg.Length {
	switch i {
	case Dashed:
		return []vg.Length{3.7 * width, 1.6 * width}
	case Dotted:
		return []vg.Length{width, 1.65 * width}
	}
	return nil
}

func setEnumString[T ~int32](i *T, s string, valueMap map[string]T, typeName string) error {
	v, ok := valueMap[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("%q is not a valid value for type %s", s, typeName)
	}
	*i = v
	return nil
}

func unmarshalEnumText[T ~int32](i *T, text []byte, valueMap map[string]T, typeName string, def T) {
	if err := setEnumString(i, string(text), valueMap, typeName); err != nil {
		slog.Warn("welllog: invalid enum value, using default", "type", typeName, "value", string(text))
		*i = def
	}
}
