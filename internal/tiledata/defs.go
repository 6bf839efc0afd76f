package tiledata

import (
	"encoding/json"
	"fmt"
)

// Terrain is the closed set of traversal behaviours a tile can have. Every
// consumer switches exhaustively over the three variants so that adding a
// fourth forces a review of digging eligibility, movement cost and texture
// resolution alike.
type Terrain interface {
	isTerrain()
}

// Walkable terrain can be stepped onto freely.
type Walkable struct{}

// Diggable terrain blocks movement until it has been excavated into ground.
type Diggable struct {
	Level    uint32  // required tool tier, reserved for later balancing
	Hardness float64 // scales dig duration, nonnegative
}

// Impassable terrain can never be entered or dug.
type Impassable struct{}

func (Walkable) isTerrain()   {}
func (Diggable) isTerrain()   {}
func (Impassable) isTerrain() {}

// Texture is the closed set of texture rules. Single tiles keep a fixed
// atlas index; Directional tiles offset their base index by the auto-tiling
// neighbor mask.
type Texture interface {
	isTexture()
}

// Single is a fixed texture index, never recomputed.
type Single struct {
	Index uint32
}

// Directional is a base texture index; the displayed index is the base plus
// the offset derived from the neighbor bitmask.
type Directional struct {
	Base uint32
}

func (Single) isTexture()      {}
func (Directional) isTexture() {}

// Definition is one registry entry loaded from tiles.json. Immutable once
// loaded.
type Definition struct {
	Name    string  // registry key (e.g. "ice")
	Type    string  // auto-tiling group; tiles of the same type connect
	Glyph   string  // single character for rendering
	Color   string  // hex color code (e.g. "#9BD4E4")
	Terrain Terrain // traversal behaviour
	Texture Texture // texture rule
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *Definition) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return []rune(d.Glyph)[0]
}

// terrainJSON is the wire form of the Terrain tagged union.
type terrainJSON struct {
	Kind     string  `json:"kind"`
	Level    uint32  `json:"level,omitempty"`
	Hardness float64 `json:"hardness,omitempty"`
}

// textureJSON is the wire form of the Texture tagged union.
type textureJSON struct {
	Kind  string `json:"kind"`
	Index uint32 `json:"index,omitempty"`
	Base  uint32 `json:"base,omitempty"`
}

type definitionJSON struct {
	Type    string      `json:"type"`
	Glyph   string      `json:"glyph"`
	Color   string      `json:"color"`
	Terrain terrainJSON `json:"terrain"`
	Texture textureJSON `json:"texture"`
}

func decodeTerrain(raw terrainJSON) (Terrain, error) {
	switch raw.Kind {
	case "walkable":
		return Walkable{}, nil
	case "diggable":
		if raw.Hardness < 0 {
			return nil, fmt.Errorf("diggable hardness must be nonnegative, got %v", raw.Hardness)
		}
		return Diggable{Level: raw.Level, Hardness: raw.Hardness}, nil
	case "impassable":
		return Impassable{}, nil
	default:
		return nil, fmt.Errorf("unknown terrain kind %q", raw.Kind)
	}
}

func decodeTexture(raw textureJSON) (Texture, error) {
	switch raw.Kind {
	case "single":
		return Single{Index: raw.Index}, nil
	case "directional":
		return Directional{Base: raw.Base}, nil
	default:
		return nil, fmt.Errorf("unknown texture kind %q", raw.Kind)
	}
}

// UnmarshalJSON decodes the tagged terrain and texture variants.
func (d *Definition) UnmarshalJSON(data []byte) error {
	var raw definitionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	terrain, err := decodeTerrain(raw.Terrain)
	if err != nil {
		return err
	}
	texture, err := decodeTexture(raw.Texture)
	if err != nil {
		return err
	}

	d.Type = raw.Type
	d.Glyph = raw.Glyph
	d.Color = raw.Color
	d.Terrain = terrain
	d.Texture = texture
	return nil
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles map[string]*Definition `json:"tiles"`
}

// LoadDefinitions loads tile definitions from the embedded tiles.json file.
// The registry key becomes each definition's Name.
func LoadDefinitions() (map[string]*Definition, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	for name, def := range file.Tiles {
		def.Name = name
	}
	return file.Tiles, nil
}
