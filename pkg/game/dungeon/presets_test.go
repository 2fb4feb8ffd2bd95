package dungeon

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const presetsYAML = `
presets:
  - name: cramped
    placer: bsp
    width: 30
    height: 24
    min_rooms: 4
    max_rooms: 6
    min_room_size: 3
    max_room_size: 6
  - name: vault
    min_treasure_rooms: 5
`

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets(strings.NewReader(presetsYAML))
	if err != nil {
		t.Fatalf("LoadPresets() error = %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("loaded %d presets, want 2", len(presets))
	}

	cramped, ok := presets.Lookup("cramped")
	if !ok {
		t.Fatal("preset cramped not found")
	}
	if cramped.Width != 30 || cramped.Height != 24 || cramped.MaxRoomSize != 6 {
		t.Errorf("cramped = %+v", cramped.MapConfig)
	}
	// Unset fields fall back to the defaults
	if cramped.MinShopRooms != DefaultConfig().MinShopRooms {
		t.Errorf("cramped.MinShopRooms = %d, want default %d", cramped.MinShopRooms, DefaultConfig().MinShopRooms)
	}
	if cramped.RoomPlacer() != BSP {
		t.Errorf("cramped placer = %s, want bsp", cramped.RoomPlacer().Name())
	}

	vault, _ := presets.Lookup("vault")
	want := DefaultConfig()
	want.MinTreasureRooms = 5
	if vault.MapConfig != want {
		t.Errorf("vault = %+v, want %+v", vault.MapConfig, want)
	}
	if vault.RoomPlacer() != DefaultPlacer {
		t.Errorf("vault placer = %s, want default", vault.RoomPlacer().Name())
	}

	if _, ok := presets.Lookup("missing"); ok {
		t.Error("Lookup(missing) found a preset")
	}
}

func TestLoadPresets_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "presets: [\n"},
		{"missing name", "presets:\n  - width: 10\n"},
		{"duplicate", "presets:\n  - name: a\n  - name: a\n"},
		{"unknown placer", "presets:\n  - name: a\n    placer: maze\n"},
		{"invalid config", "presets:\n  - name: a\n    width: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPresets(strings.NewReader(tt.yaml)); err == nil {
				t.Error("LoadPresets() error = nil")
			}
		})
	}

	_, err := LoadPresets(strings.NewReader("presets:\n  - name: a\n    min_room_size: 20\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadPresets() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadPresets_Empty(t *testing.T) {
	presets, err := LoadPresets(strings.NewReader(""))
	if err != nil || len(presets) != 0 {
		t.Errorf("LoadPresets(empty) = %v, %v", presets, err)
	}
}

func TestMarshalPresets_RoundTrip(t *testing.T) {
	in := Presets{{Name: "small", Placer: "scatter", MapConfig: LevelConfig(2)}}
	var buf bytes.Buffer
	if err := MarshalPresets(&buf, in); err != nil {
		t.Fatalf("MarshalPresets() error = %v", err)
	}
	if !strings.Contains(buf.String(), "min_room_size:") {
		t.Errorf("inline config fields missing from output:\n%s", buf.String())
	}

	out, err := LoadPresets(&buf)
	if err != nil {
		t.Fatalf("LoadPresets() error = %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
