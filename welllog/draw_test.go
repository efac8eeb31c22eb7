// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package welllog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/welllog/base/keylist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func wellFigure(t *testing.T) *Figure {
	t.Helper()
	params := wellParams()
	params.Formations = keylist.New[string, float64]()
	params.Formations.Set("LL-35-TOP", 3750)
	params.Formations.Set("LL-35-BOTTOM", 3950)
	return Render(wellTable(t), wellTracks(), params)
}

func TestFigureWriterTo(t *testing.T) {
	fig := wellFigure(t)
	headers := map[string][]byte{
		"png": []byte("\x89PNG"),
		"jpg": {0xff, 0xd8},
		"svg": []byte("<?xml"),
		"pdf": []byte("%PDF"),
	}
	for format, hdr := range headers {
		wt, err := fig.WriterTo(format)
		require.NoError(t, err, format)
		var buf bytes.Buffer
		_, err = wt.WriteTo(&buf)
		require.NoError(t, err, format)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), hdr), format)
	}
	_, err := fig.WriterTo("gif")
	assert.Error(t, err)
}

func TestFigureSave(t *testing.T) {
	fig := wellFigure(t)
	fn := filepath.Join(t.TempDir(), "well.png")
	require.NoError(t, fig.Save(fn))
	st, err := os.Stat(fn)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(1000))

	assert.Error(t, fig.Save(filepath.Join(t.TempDir(), "well.bmp")))
}

func TestFigureDrawDegenerate(t *testing.T) {
	c := vgimg.New(TrackWidth, 4*TrackWidth)
	empty := Render(wellTable(t), nil, wellParams())
	assert.NotPanics(t, func() { empty.Draw(draw.New(c)) })

	missing := Render(wellTable(t), []TrackConfig{{Curves: []CurveConfig{{Column: "RHOB"}}}}, wellParams())
	assert.NotPanics(t, func() { missing.Draw(draw.New(c)) })
}

func TestTrackPlot(t *testing.T) {
	fig := wellFigure(t)
	p := fig.trackPlot(fig.Tracks[1])
	assert.Equal(t, 3700.0, p.Y.Min)
	assert.Equal(t, 4000.0, p.Y.Max)
	assert.IsType(t, plot.InvertedScale{}, p.Y.Scale)
	assert.Empty(t, p.Y.Label.Text)

	p = fig.trackPlot(fig.Tracks[0])
	assert.Equal(t, "Depth", p.Y.Label.Text)
}
