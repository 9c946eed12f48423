package component

import (
	"fmt"
	"strings"
)

// Tag is a bit set of gameplay tags resolved at build time.
type Tag uint32

const (
	TagPlayer Tag = 1 << iota
	TagEnemy
	TagHazard
	TagTrap
	TagBullet
	TagGoal
)

var tagNames = map[string]Tag{
	"player": TagPlayer,
	"enemy":  TagEnemy,
	"hazard": TagHazard,
	"trap":   TagTrap,
	"bullet": TagBullet,
	"goal":   TagGoal,
}

var tagOrder = []string{"player", "enemy", "hazard", "trap", "bullet", "goal"}

// Names lists the tags in t.
func (t Tag) Names() []string {
	var out []string
	for _, name := range tagOrder {
		if t&tagNames[name] != 0 {
			out = append(out, name)
		}
	}
	return out
}

func (t Tag) Has(other Tag) bool {
	return other != 0 && t&other != 0
}

// ParseTags resolves tag names into a set.
func ParseTags(names []string) (Tag, error) {
	var set Tag
	for _, name := range names {
		tag, ok := tagNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("component: unknown tag %q", name)
		}
		set |= tag
	}
	return set, nil
}

// Tags stores an entity's gameplay tags.
type Tags struct {
	Set Tag
}

var TagsComponent = NewComponent[Tags]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type LevelRootTag struct{}

var LevelRootTagComponent = NewComponent[LevelRootTag]()
