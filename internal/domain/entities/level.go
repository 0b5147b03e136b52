package entities

import "strings"

// Level is a CEFR proficiency tier.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists all tiers in ascending order.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// ParseLevel accepts a tier name in any case, surrounding spaces ignored.
func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	return l, l.Valid()
}

func (l Level) Valid() bool {
	return l.rank() >= 0
}

func (l Level) rank() int {
	for i, lv := range Levels {
		if lv == l {
			return i
		}
	}
	return -1
}

// UpTo returns every tier from A1 to l inclusive.
func (l Level) UpTo() []Level {
	r := l.rank()
	if r < 0 {
		return nil
	}
	out := make([]Level, r+1)
	copy(out, Levels[:r+1])
	return out
}

// Less reports whether l is strictly below other.
func (l Level) Less(other Level) bool {
	return l.rank() < other.rank()
}

func (l Level) String() string {
	return string(l)
}
