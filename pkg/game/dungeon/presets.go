package dungeon

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Preset is a named map configuration, optionally tied to a placer
type Preset struct {
	Name      string `yaml:"name"`
	Placer    string `yaml:"placer"`
	MapConfig `yaml:",inline"`
}

// Presets is a list of presets loaded from a file
type Presets []Preset

type presetFile struct {
	Presets Presets `yaml:"presets"`
}

// LoadPresets decodes a YAML document of the form
//
//	presets:
//	  - name: small
//	    placer: bsp
//	    width: 40
//	    ...
//
// Fields left out of a preset take their value from DefaultConfig. Every
// preset must have a unique name, a known placer (or none) and a valid config.
func LoadPresets(r io.Reader) (Presets, error) {
	var raw struct {
		Presets []yaml.Node `yaml:"presets"`
	}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	presets := make(Presets, 0, len(raw.Presets))
	seen := make(map[string]bool)
	for i := range raw.Presets {
		p := Preset{MapConfig: DefaultConfig()}
		if err := raw.Presets[i].Decode(&p); err != nil {
			return nil, fmt.Errorf("decode preset %d: %w", i, err)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d: missing name", i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("preset %q: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if p.Placer != "" && PlacerByName(p.Placer) == nil {
			return nil, fmt.Errorf("preset %q: unknown placer %q", p.Name, p.Placer)
		}
		if err := p.MapConfig.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// Lookup returns the preset with the given name
func (ps Presets) Lookup(name string) (Preset, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// RoomPlacer returns the preset's placer, or DefaultPlacer when it names none
func (p Preset) RoomPlacer() RoomPlacer {
	if placer := PlacerByName(p.Placer); placer != nil {
		return placer
	}
	return DefaultPlacer
}

// MarshalPresets encodes presets in the format read by LoadPresets
func MarshalPresets(w io.Writer, presets Presets) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(presetFile{Presets: presets}); err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	return enc.Close()
}
