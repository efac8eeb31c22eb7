// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package welllog

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

var (
	majorDepthStyle = draw.LineStyle{Color: color.Black, Width: 1}
	minorDepthStyle = draw.LineStyle{Color: color.Black, Width: 0.5, Dashes: []vg.Length{0.5, 0.825}}
	curveGridStyle  = draw.LineStyle{Color: color.Gray{Y: 128}, Width: 0.5, Dashes: []vg.Length{1.85, 0.8}}
	formationStyle  = draw.LineStyle{Color: color.Black, Width: 0.5}
	formationBox    = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
)

const (
	// trackPad is the horizontal space on either side of each track.
	trackPad vg.Length = 10

	// bottomPad is the space below the track data areas.
	bottomPad vg.Length = 20

	// tickLength is the length of the curve axis tick marks.
	tickLength vg.Length = 4

	titleSize     vg.Length = 14
	axisLabelSize vg.Length = 10
	tickLabelSize vg.Length = 8
)

// Draw draws the figure onto the given canvas, scaling the tracks to
// fill its width. The top of each track data area is placed at the
// TopMargin fraction of the height, or lower if the curve axes and
// titles need more room.
func (f *Figure) Draw(c draw.Canvas) {
	c.SetColor(color.White)
	c.Fill(c.Rectangle.Path())
	n := len(f.Tracks)
	if n == 0 {
		return
	}
	header := max((c.Max.Y-c.Min.Y)*vg.Length(1-f.TopMargin), f.headerHeight())
	width := (c.Max.X - c.Min.X) / vg.Length(n)
	for i, tr := range f.Tracks {
		tc := draw.Canvas{Canvas: c.Canvas, Rectangle: vg.Rectangle{
			Min: vg.Point{X: c.Min.X + vg.Length(i)*width, Y: c.Min.Y},
			Max: vg.Point{X: c.Min.X + vg.Length(i+1)*width, Y: c.Max.Y},
		}}
		f.drawTrack(draw.Crop(tc, trackPad, -trackPad, bottomPad, -header), tr)
	}
}

// headerHeight returns the space needed above the data areas
// for the curve axes and track titles.
func (f *Figure) headerHeight() vg.Length {
	ts := titleStyle()
	h := vg.Length(0)
	for _, tr := range f.Tracks {
		h = max(h, tr.TitlePad+ts.Height(tr.Title))
	}
	return h + 4
}

// drawTrack draws the track, with its data area and depth axis
// within the given canvas and the curve axes and title above it.
func (f *Figure) drawTrack(c draw.Canvas, tr *Track) {
	p := f.trackPlot(tr)
	p.Draw(c)
	da := p.DataCanvas(c)
	for _, cv := range tr.Curves {
		drawCurveAxis(da, cv)
	}
	da.FillText(titleStyle(), vg.Point{X: (da.Min.X + da.Max.X) / 2, Y: da.Max.Y + tr.TitlePad}, tr.Title)
}

// trackPlot returns a [plot.Plot] holding the inverted depth axis of
// the track and its plotters: the depth grid, then the curve grids
// beneath all of the curves, then the formation markers.
func (f *Figure) trackPlot(tr *Track) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = nil
	p.HideX()
	p.Y.Min = f.Depth.Min
	p.Y.Max = f.Depth.Max
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Y.Tick.Marker = depthTicks{Major: f.Depth.Major, Minor: f.Depth.Minor}
	if tr.DepthLabel {
		p.Y.Label.Text = f.Depth.Label
		p.Y.Label.TextStyle.Font.Size = 12
	} else {
		// keeps the same vertical layout as the labeled track
		p.Y.Tick.Label.Color = color.Transparent
	}
	p.Add(depthGrid{axis: &f.Depth})
	for _, cv := range tr.Curves {
		p.Add(curveGrid{cv})
	}
	for _, cv := range tr.Curves {
		p.Add(cv)
	}
	if len(tr.Formations) > 0 {
		p.Add(formationMarkers(tr.Formations))
	}
	return p
}

func textStyle(size vg.Length, clr color.Color) text.Style {
	fnt := plot.DefaultFont
	fnt.Size = size
	return text.Style{Color: clr, Font: fnt, Handler: plot.DefaultTextHandler}
}

func titleStyle() text.Style {
	ts := textStyle(titleSize, color.Black)
	ts.Font.Weight = xfont.WeightBold
	ts.XAlign = text.XCenter
	ts.YAlign = text.YBottom
	return ts
}

// drawCurveAxis draws the axis line, ticks, tick labels and label of
// the curve above the data area, moved up by the axis Offset.
func drawCurveAxis(da draw.Canvas, cv *Curve) {
	y := da.Max.Y + cv.Axis.Offset
	ls := draw.LineStyle{Color: cv.Color, Width: 0.75}
	da.StrokeLine2(ls, da.Min.X, y, da.Max.X, y)

	ts := textStyle(tickLabelSize, cv.Color)
	ts.XAlign = text.XCenter
	ts.YAlign = text.YBottom
	for _, tk := range cv.Axis.Ticks {
		nv, ok := cv.Axis.Norm(tk.Value)
		if !ok {
			continue
		}
		x := da.X(nv)
		da.StrokeLine2(ls, x, y, x, y+tickLength)
		da.FillText(ts, vg.Point{X: x, Y: y + tickLength + 1}, tk.Label)
	}

	lbl := textStyle(axisLabelSize, cv.Color)
	lbl.XAlign = text.XCenter
	lbl.YAlign = text.YBottom
	ly := y + tickLength + ts.Height("0") + 3
	da.FillText(lbl, vg.Point{X: (da.Min.X + da.Max.X) / 2, Y: ly}, cv.Label)
}

// depthGrid is a [plot.Plotter] that draws the horizontal depth
// gridlines: solid at the major ticks and dotted at the minor ticks.
type depthGrid struct {
	axis *DepthAxis
}

func (g depthGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	_, trY := plt.Transforms(&c)
	for _, tk := range g.axis.Ticks() {
		sty := majorDepthStyle
		if tk.IsMinor() {
			sty = minorDepthStyle
		}
		y := trY(tk.Value)
		c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
	}
}

// curveGrid is a [plot.Plotter] that draws the vertical
// gridlines of a curve at its axis ticks.
type curveGrid struct {
	*Curve
}

func (g curveGrid) Plot(c draw.Canvas, _ *plot.Plot) {
	if !g.Axis.Grid {
		return
	}
	for _, tk := range g.Axis.Ticks {
		nv, ok := g.Axis.Norm(tk.Value)
		if !ok {
			continue
		}
		x := c.X(nv)
		c.StrokeLine2(curveGridStyle, x, c.Min.Y, x, c.Max.Y)
	}
}

// Plot implements the [plot.Plotter] interface, drawing the curve
// line on its own horizontal axis against the depth axis of the plot.
// Values that cannot be placed on the axis break the line.
func (cv *Curve) Plot(c draw.Canvas, plt *plot.Plot) {
	_, trY := plt.Transforms(&c)
	var lines [][]vg.Point
	var cur []vg.Point
	for _, xy := range cv.XYs {
		nv, ok := cv.Axis.Norm(xy.X)
		if !ok {
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, vg.Point{X: c.X(nv), Y: trY(xy.Y)})
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	sty := draw.LineStyle{Color: cv.Color, Width: cv.Width, Dashes: cv.LineStyle.Dashes(cv.Width)}
	c.StrokeLines(sty, c.ClipLinesXY(lines...)...)
}

// formationMarkers is a [plot.Plotter] that draws a horizontal line
// for each formation, with its name in a box near the left edge.
type formationMarkers []FormationLine

func (fm formationMarkers) Plot(c draw.Canvas, plt *plot.Plot) {
	_, trY := plt.Transforms(&c)
	ts := textStyle(tickLabelSize, color.Black)
	ts.XAlign = text.XCenter
	ts.YAlign = text.YCenter
	x := c.Min.X + 0.1*(c.Max.X-c.Min.X)
	for _, fl := range fm {
		y := trY(fl.Depth)
		c.StrokeLine2(formationStyle, c.Min.X, y, c.Max.X, y)
		w, h := ts.Width(fl.Name)/2+3, ts.Height(fl.Name)/2+3
		box := vg.Rectangle{Min: vg.Point{X: x - w, Y: y - h}, Max: vg.Point{X: x + w, Y: y + h}}
		c.SetColor(formationBox)
		c.Fill(box.Path())
		c.FillText(ts, vg.Point{X: x, Y: y}, fl.Name)
	}
}

// WriterTo returns an [io.WriterTo] that writes the figure in the
// given image format: png, jpg (jpeg), tif (tiff), svg or pdf.
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	w, h := f.Width, f.Height
	var cw vg.CanvasWriterTo
	switch strings.ToLower(format) {
	case "png":
		cw = vgimg.PngCanvas{Canvas: vgimg.New(w, h)}
	case "jpg", "jpeg":
		cw = vgimg.JpegCanvas{Canvas: vgimg.New(w, h)}
	case "tif", "tiff":
		cw = vgimg.TiffCanvas{Canvas: vgimg.New(w, h)}
	case "svg":
		cw = vgsvg.New(w, h)
	case "pdf":
		cw = vgpdf.New(w, h)
	default:
		return nil, fmt.Errorf("welllog.Figure: unsupported image format %q", format)
	}
	f.Draw(draw.New(cw))
	return cw, nil
}

// Save saves the figure to the given file, in the image
// format given by the file extension (see [Figure.WriterTo]).
func (f *Figure) Save(filename string) error {
	wt, err := f.WriterTo(strings.TrimPrefix(filepath.Ext(filename), "."))
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if _, err := wt.WriteTo(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return fp.Close()
}
