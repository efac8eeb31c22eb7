// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package welllog provides well log (petrophysical) data visualization
and labeling on a [table.Table] of depth samples.

[Render] produces a multi-track depth plot [Figure], where each track
holds one or more curves, each on its own horizontal axis sharing the
inverted depth axis of the track. Curves can be smoothed, scaled
linearly or logarithmically, inverted, and stacked with offset axes,
and every curve has the same number of vertical gridlines regardless
of its scale. Formation markers are drawn across all tracks.
The figure can be drawn to any gonum/plot canvas, or saved as an image.

	fig := welllog.Render(dt, tracks, welllog.RenderParams{
		TopDepth: 3700, BottomDepth: 4000,
		MajorTickInterval: 100, MinorTickInterval: 20,
	})
	err := fig.Save("well.png")

[LabelProductiveZones] adds a 0/1 class column marking the rows
within any of a set of productive depth intervals.

Tracks and render parameters can also be read from TOML, YAML
or JSON files with [OpenConfig].
*/
package welllog
