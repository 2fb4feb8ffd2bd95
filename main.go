package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"darkdepths/pkg/engine/terminal"
	"darkdepths/pkg/engine/world"
	"darkdepths/pkg/game/devtools"
	"darkdepths/pkg/game/dungeon"
	"darkdepths/pkg/game/locale"
	"darkdepths/pkg/game/mapmanager"
	"darkdepths/pkg/game/renderer"
	ebitenrenderer "darkdepths/pkg/game/renderer/ebiten"
	"darkdepths/pkg/game/renderer/tui"
)

type options struct {
	level      int
	seed       int64
	placer     string
	presets    string
	preset     string
	path       string
	bossPath   bool
	dump       string
	gui        bool
	plain      bool
	tileSize   int
	overrides  dungeon.MapConfig
	overridden map[string]bool
}

func parseFlags() *options {
	o := &options{}
	def := dungeon.DefaultConfig()

	flag.IntVar(&o.level, "level", 0, "scale the map for this level (0 uses the default 50x50 config)")
	flag.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.StringVar(&o.placer, "placer", "", "room placer: scatter or bsp")
	flag.StringVar(&o.presets, "presets", "", "YAML file of named map presets")
	flag.StringVar(&o.preset, "preset", "", "name of the preset to use from -presets")
	flag.StringVar(&o.path, "path", "", "show the path x1,y1,x2,y2")
	flag.BoolVar(&o.bossPath, "boss-path", false, "show the path from the start room to the boss room")
	flag.StringVar(&o.dump, "dump", "", "write a debug dump of the map to this file")
	flag.BoolVar(&o.gui, "gui", false, "open the map in a window")
	flag.BoolVar(&o.plain, "plain", false, "ASCII output without colours")
	flag.IntVar(&o.tileSize, "tile", 0, "tile size in pixels for -gui")

	flag.IntVar(&o.overrides.Width, "width", def.Width, "grid width")
	flag.IntVar(&o.overrides.Height, "height", def.Height, "grid height")
	flag.IntVar(&o.overrides.MinRooms, "min-rooms", def.MinRooms, "minimum number of rooms to try for")
	flag.IntVar(&o.overrides.MaxRooms, "max-rooms", def.MaxRooms, "maximum number of rooms")
	flag.IntVar(&o.overrides.MinRoomSize, "min-size", def.MinRoomSize, "minimum room side length")
	flag.IntVar(&o.overrides.MaxRoomSize, "max-size", def.MaxRoomSize, "maximum room side length")
	flag.IntVar(&o.overrides.MinTreasureRooms, "treasure", def.MinTreasureRooms, "treasure rooms to assign")
	flag.IntVar(&o.overrides.MinShopRooms, "shops", def.MinShopRooms, "shop rooms to assign")
	flag.Parse()

	o.overridden = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		o.overridden[f.Name] = true
	})
	return o
}

// mapConfig layers the config sources: level or default, then the preset,
// then any size flags given explicitly
func (o *options) mapConfig() (dungeon.MapConfig, dungeon.RoomPlacer, error) {
	cfg := dungeon.DefaultConfig()
	if o.level > 0 {
		cfg = dungeon.LevelConfig(o.level)
	}
	placer := dungeon.DefaultPlacer

	if o.preset != "" {
		if o.presets == "" {
			return cfg, nil, fmt.Errorf("-preset needs -presets")
		}
		f, err := os.Open(o.presets)
		if err != nil {
			return cfg, nil, err
		}
		presets, err := dungeon.LoadPresets(f)
		f.Close()
		if err != nil {
			return cfg, nil, fmt.Errorf("%s: %w", o.presets, err)
		}
		p, ok := presets.Lookup(o.preset)
		if !ok {
			return cfg, nil, fmt.Errorf("%s: no preset named %q", o.presets, o.preset)
		}
		cfg = p.MapConfig
		placer = p.RoomPlacer()
	}

	fields := map[string]*int{
		"width":     &cfg.Width,
		"height":    &cfg.Height,
		"min-rooms": &cfg.MinRooms,
		"max-rooms": &cfg.MaxRooms,
		"min-size":  &cfg.MinRoomSize,
		"max-size":  &cfg.MaxRoomSize,
		"treasure":  &cfg.MinTreasureRooms,
		"shops":     &cfg.MinShopRooms,
	}
	values := map[string]int{
		"width":     o.overrides.Width,
		"height":    o.overrides.Height,
		"min-rooms": o.overrides.MinRooms,
		"max-rooms": o.overrides.MaxRooms,
		"min-size":  o.overrides.MinRoomSize,
		"max-size":  o.overrides.MaxRoomSize,
		"treasure":  o.overrides.MinTreasureRooms,
		"shops":     o.overrides.MinShopRooms,
	}
	for name, field := range fields {
		if o.overridden[name] {
			*field = values[name]
		}
	}

	if o.placer != "" {
		placer = dungeon.PlacerByName(o.placer)
		if placer == nil {
			return cfg, nil, fmt.Errorf("unknown placer %q", o.placer)
		}
	}
	return cfg, placer, cfg.Validate()
}

// generate builds the first map, retrying once with a relaxed config when no
// room fits
func generate(manager *mapmanager.Manager, cfg dungeon.MapConfig, logger *log.Logger) (*dungeon.MapData, dungeon.MapConfig, error) {
	data, err := manager.GenerateMap(cfg)
	if errors.Is(err, dungeon.ErrNoRooms) {
		cfg = cfg.Relaxed()
		logger.Printf("retrying with relaxed config: rooms %d-%d of size %d-%d",
			cfg.MinRooms, cfg.MaxRooms, cfg.MinRoomSize, cfg.MaxRoomSize)
		data, err = manager.GenerateMap(cfg)
	}
	return data, cfg, err
}

// pathQuery returns the requested path overlay, or nil when none was asked for
func pathQuery(o *options, manager *mapmanager.Manager) ([]world.Point, error) {
	switch {
	case o.path != "":
		var x1, y1, x2, y2 int
		if _, err := fmt.Sscanf(o.path, "%d,%d,%d,%d", &x1, &y1, &x2, &y2); err != nil {
			return nil, fmt.Errorf("-path wants x1,y1,x2,y2: %w", err)
		}
		return nonNil(manager.FindPath(x1, y1, x2, y2)), nil
	case o.bossPath:
		start, ok := manager.GetStartRoom()
		boss, hasBoss := manager.GetBossRoom()
		if !ok || !hasBoss {
			return []world.Point{}, nil
		}
		a, b := start.Center(), boss.Center()
		return nonNil(manager.FindPath(a.X, a.Y, b.X, b.Y)), nil
	}
	return nil, nil
}

// nonNil keeps "asked for a path, none found" distinct from "no path asked for"
func nonNil(path []world.Point) []world.Point {
	if path == nil {
		return []world.Point{}
	}
	return path
}

func main() {
	o := parseFlags()
	logger := log.New(os.Stderr, "darkdepths: ", 0)

	cfg, placer, err := o.mapConfig()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := dungeon.NewGenerator(seed)
	gen.Placer = placer
	manager := mapmanager.New(gen, logger)

	data, cfg, err := generate(manager, cfg, logger)
	if err != nil {
		logger.Fatalf("generate: %v", err)
	}

	if o.dump != "" {
		path, err := devtools.DumpMapToFile(data, o.dump)
		if err != nil {
			logger.Fatalf("dump: %v", err)
		}
		logger.Printf("map dumped to %s", path)
	}

	path, err := pathQuery(o, manager)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	title := fmt.Sprintf("darkdepths seed %d", seed)
	if o.level > 0 {
		title = locale.Get("Level %d", o.level) + " - " + title
	}

	if o.gui {
		viewer := ebitenrenderer.New(manager, cfg, o.tileSize)
		if path != nil {
			viewer.RenderFrame(renderer.Frame{Title: title, Map: data, Path: path})
		}
		if err := viewer.Run(title); err != nil {
			logger.Fatalf("gui: %v", err)
		}
		return
	}

	r := tui.New(os.Stdout)
	r.SetPlain(o.plain || !terminal.IsTerminal())
	if !terminal.IsTerminal() {
		r.SetWidth(data.Grid.Width())
	}
	r.Init()
	if err := r.RenderFrame(renderer.Frame{Title: title, Map: data, Path: path}); err != nil {
		logger.Fatalf("render: %v", err)
	}
}
