package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/doomerang-physics/shared/fixed"
	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	TileLayerName     = "tiles"
	PlayerSpawnGroup  = "PlayerSpawn"
	NPCSpawnGroup     = "NPCSpawn"
	WaterGroup        = "Water"
	AttribProperty    = "attrib"
	maxTileIndex      = 255
	defaultNPCHitSize = 2
)

var (
	ErrUnsupportedTileSize = errors.New("unsupported tile size")
	ErrMissingTileLayer    = errors.New("missing tile layer")
)

// LoadCollisionData parses a TMX file and returns its attribute grid, spawns
// and water level. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("%s: %dx%d tiles: %w", tmxPath, levelMap.TileWidth, levelMap.TileHeight, ErrUnsupportedTileSize)
	}
	tileSize := fixed.TileSize(levelMap.TileWidth)
	if !tileSize.Valid() {
		return nil, fmt.Errorf("%s: %dpx tiles: %w", tmxPath, levelMap.TileWidth, ErrUnsupportedTileSize)
	}

	data := &CollisionData{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Attributes: NewAttributeMap(int32(levelMap.Width), int32(levelMap.Height)),
		TileSize:   tileSize,
		WaterLevel: NoWaterLevel,
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
	}

	loadAttributeTable(data.Attributes, levelMap.Tilesets)
	if err := loadTiles(data.Attributes, levelMap); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     pixelsToSub(o.X),
					Y:     pixelsToSub(o.Y),
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case NPCSpawnGroup:
			for _, o := range og.Objects {
				size := o.Properties.GetInt("size")
				if size <= 0 {
					size = defaultNPCHitSize
				}
				data.NPCSpawns = append(data.NPCSpawns, NPCSpawn{
					X:            pixelsToSub(o.X),
					Y:            pixelsToSub(o.Y),
					Size:         size,
					Boss:         o.Properties.GetBool("boss"),
					IgnoreTile44: o.Properties.GetBool("ignoreTile44"),
					Direction:    o.Properties.GetString("direction"),
				})
			}
		case WaterGroup:
			if len(og.Objects) == 0 || data.HasWater {
				continue
			}
			data.WaterLevel = pixelsToSub(og.Objects[0].Y)
			data.HasWater = true
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// loadAttributeTable fills the attribute table from every tileset tile that
// carries an attrib property. Table indices are Tiled global tile IDs.
func loadAttributeTable(m *AttributeMap, tilesets []*tiled.Tileset) {
	for _, ts := range tilesets {
		for _, tt := range ts.Tiles {
			gid := ts.FirstGID + tt.ID
			if gid > maxTileIndex {
				log.Printf("Warning: tileset %s tile %d is beyond the attribute table", ts.Name, tt.ID)
				continue
			}
			m.Attrib[gid] = uint8(tt.Properties.GetInt(AttribProperty))
		}
	}
}

func loadTiles(m *AttributeMap, levelMap *tiled.Map) error {
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayerName {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				gid := tile.Tileset.FirstGID + tile.ID
				if gid > maxTileIndex {
					log.Printf("Warning: tile %d at (%d, %d) is beyond the attribute table", gid, x, y)
					continue
				}
				m.SetTile(int32(x), int32(y), uint8(gid))
			}
		}
		return nil
	}
	return fmt.Errorf("layer %q: %w", TileLayerName, ErrMissingTileLayer)
}

func pixelsToSub(px float64) int32 {
	return fixed.FromPixels(int32(px))
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	log.Printf("Loaded %d level(s): %s", len(names), strings.Join(names, ", "))
	return levels, names, nil
}
