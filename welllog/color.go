// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package welllog

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// shortColors are the single letter color codes of common plotting tools.
var shortColors = map[string]string{
	"k": "black", "r": "red", "g": "green", "b": "blue",
	"c": "cyan", "m": "magenta", "y": "yellow", "w": "white",
}

// ParseColor returns the color for the given color name
// (an SVG/X11 name such as "darkgreen", or a single letter code
// such as "k") or hex value ("#rgb" or "#rrggbb").
// An empty string is [DefaultColor].
func ParseColor(s string) (color.Color, error) {
	nm := strings.ToLower(strings.TrimSpace(s))
	if nm == "" {
		nm = DefaultColor
	}
	if strings.HasPrefix(nm, "#") {
		c, err := colorful.Hex(nm)
		if err != nil {
			return color.Black, fmt.Errorf("welllog.ParseColor: invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}
	if full, ok := shortColors[nm]; ok {
		nm = full
	}
	if c, ok := colornames.Map[nm]; ok {
		return c, nil
	}
	return color.Black, fmt.Errorf("welllog.ParseColor: unknown color %q", s)
}
