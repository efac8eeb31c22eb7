// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package welllog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/welllog/base/keylist"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// PlotConfig is a complete, file-based description of a well log plot:
// the render parameters, tracks and formation markers, plus optional
// productive zones for [LabelProductiveZones].
type PlotConfig struct {
	Params     RenderParams  `toml:"params" yaml:"params" json:"params"`
	Tracks     []TrackConfig `toml:"tracks" yaml:"tracks" json:"tracks"`
	Formations []Formation   `toml:"formations" yaml:"formations" json:"formations"`
	Zones      []Interval    `toml:"zones" yaml:"zones" json:"zones"`
}

// Formation is a named formation depth marker in a [PlotConfig].
type Formation struct {
	Name  string  `toml:"name" yaml:"name" json:"name"`
	Depth float64 `toml:"depth" yaml:"depth" json:"depth"`
}

// FormationList returns the formations as an ordered list
// for [RenderParams.Formations]. Returns nil if there are none.
// A repeated name keeps the position of its first occurrence
// and the depth of its last.
func (pc *PlotConfig) FormationList() *keylist.List[string, float64] {
	if len(pc.Formations) == 0 {
		return nil
	}
	fl := keylist.New[string, float64]()
	for _, fm := range pc.Formations {
		fl.Set(fm.Name, fm.Depth)
	}
	return fl
}

// RenderParams returns the render parameters, including the formations.
func (pc *PlotConfig) RenderParams() RenderParams {
	rp := pc.Params
	rp.Formations = pc.FormationList()
	return rp
}

// OpenConfig reads a [PlotConfig] from the given file, in the format
// given by its extension: .toml, .yaml (.yml) or .json.
func OpenConfig(filename string) (*PlotConfig, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadConfig(fp, strings.TrimPrefix(filepath.Ext(filename), "."))
}

// ReadConfig reads a [PlotConfig] from the given reader,
// in the given format: toml, yaml (yml) or json.
func ReadConfig(r io.Reader, format string) (*PlotConfig, error) {
	pc := &PlotConfig{}
	var err error
	switch strings.ToLower(format) {
	case "toml":
		err = toml.NewDecoder(r).Decode(pc)
	case "yaml", "yml":
		err = yaml.NewDecoder(r).Decode(pc)
	case "json":
		err = json.NewDecoder(r).Decode(pc)
	default:
		return nil, fmt.Errorf("welllog.ReadConfig: unsupported config format %q", format)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("welllog.ReadConfig: %w", err)
	}
	return pc, nil
}

// WriteConfig writes the [PlotConfig] to the given writer,
// in the given format: toml, yaml (yml) or json.
func WriteConfig(w io.Writer, pc *PlotConfig, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		return toml.NewEncoder(w).Encode(pc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(pc); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(pc)
	}
	return fmt.Errorf("welllog.WriteConfig: unsupported config format %q", format)
}
