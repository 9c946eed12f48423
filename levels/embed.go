package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrNoLevels = errors.New("levels: no levels embedded")

// Level is a tile map drawn as rows of characters, top row first. Each
// character is looked up in the legend: solid cells merge into static
// colliders, the rest place one prefab at the cell center.
type Level struct {
	Name     string           `json:"name"`
	TileSize float64          `json:"tile_size,omitempty"`
	Rows     []string         `json:"rows"`
	Legend   map[string]Glyph `json:"legend,omitempty"`
	// Root is the prefab of the rotating level root.
	Root string `json:"root,omitempty"`
	// Margin pads the kill bounds around the level, in tiles.
	Margin   float64  `json:"margin,omitempty"`
	Entities []Entity `json:"entities,omitempty"`
}

// Glyph maps a map character to a prefab.
type Glyph struct {
	Prefab string `json:"prefab"`
	Solid  bool   `json:"solid,omitempty"`
}

// Entity places a prefab at a tile position. X counts columns from the
// left, Y rows from the top; fractions are allowed. Rotation is in degrees.
type Entity struct {
	Prefab   string  `json:"prefab"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation,omitempty"`
}

// DefaultLegend is used for characters a level does not define itself.
var DefaultLegend = map[string]Glyph{
	"#": {Prefab: "platform", Solid: true},
	"^": {Prefab: "hazard_block", Solid: true},
	"P": {Prefab: "player"},
	"E": {Prefab: "enemy_patrol"},
	"S": {Prefab: "enemy_shooter"},
	"T": {Prefab: "trap"},
	"G": {Prefab: "gear_trap"},
	"K": {Prefab: "spike_trap"},
	"Y": {Prefab: "spike_sentry"},
	"D": {Prefab: "gate"},
	"F": {Prefab: "flag"},
}

// Names lists the embedded levels in play order.
func Names() []string {
	matches, err := fs.Glob(LevelsFS, "*.json")
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// Load reads an embedded level by file name or by its index in Names.
func Load(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(data)
}

// LoadIndex loads the i-th embedded level. Indices wrap around.
func LoadIndex(i int) (*Level, int, error) {
	names := Names()
	if len(names) == 0 {
		return nil, 0, ErrNoLevels
	}
	i %= len(names)
	if i < 0 {
		i += len(names)
	}
	lvl, err := Load(names[i])
	return lvl, i, err
}

// Index returns the position of name in Names, or -1.
func Index(name string) int {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	for i, n := range Names() {
		if n == name {
			return i
		}
	}
	return -1
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) validate() error {
	if len(l.Rows) == 0 {
		return fmt.Errorf("levels: %q has no rows", l.Name)
	}
	width := len(l.Rows[0])
	for i, row := range l.Rows {
		if len(row) != width {
			return fmt.Errorf("levels: %q row %d is %d wide, want %d", l.Name, i, len(row), width)
		}
	}
	if l.TileSize < 0 {
		return fmt.Errorf("levels: %q has negative tile size", l.Name)
	}
	for _, row := range l.Rows {
		for _, ch := range row {
			if ch == '.' || ch == ' ' {
				continue
			}
			if _, ok := l.Glyph(byte(ch)); !ok {
				return fmt.Errorf("levels: %q uses unknown glyph %q", l.Name, ch)
			}
		}
	}
	return nil
}

func (l *Level) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

func (l *Level) Height() int {
	return len(l.Rows)
}

func (l *Level) Tile() float64 {
	if l.TileSize <= 0 {
		return 1
	}
	return l.TileSize
}

// Glyph resolves a map character, level legend first.
func (l *Level) Glyph(ch byte) (Glyph, bool) {
	key := string(ch)
	if g, ok := l.Legend[key]; ok {
		return g, true
	}
	g, ok := DefaultLegend[key]
	return g, ok
}

// RootPrefab is the level root prefab, "level_root" unless overridden.
func (l *Level) RootPrefab() string {
	if l.Root == "" {
		return "level_root"
	}
	return l.Root
}
