package enums

import (
	"fmt"
	"strings"
)

// Team is the faction used by targeting logic.
type Team uint8

const (
	TeamPlayer  Team = iota // 0
	TeamEnemy               // 1
	TeamNeutral             // 2
)

var teamToString = map[Team]string{
	TeamPlayer:  "Player",
	TeamEnemy:   "Enemy",
	TeamNeutral: "Neutral",
}

var teamStringToType = map[string]Team{
	"PLAYER":  TeamPlayer,
	"ENEMY":   TeamEnemy,
	"NEUTRAL": TeamNeutral,
}

// TeamValues returns every team in encoding order.
func TeamValues() []Team {
	return []Team{TeamPlayer, TeamEnemy, TeamNeutral}
}

func (t Team) String() string {
	if val, ok := teamToString[t]; ok {
		return val
	}
	return fmt.Sprintf("Team(%d)", uint8(t))
}

// DisplayName returns the human-readable label. For teams it matches String.
func (t Team) DisplayName() string {
	return teamToString[t]
}

func (t Team) IsValid() bool {
	_, ok := teamToString[t]
	return ok
}

// IsHostileTo reports whether members of t may target members of other.
// Player and Enemy are hostile to each other; Neutral is hostile to no one.
func (t Team) IsHostileTo(other Team) bool {
	switch t {
	case TeamPlayer:
		return other == TeamEnemy
	case TeamEnemy:
		return other == TeamPlayer
	default:
		return false
	}
}

// ParseTeam converts a case-insensitive name into a Team.
func ParseTeam(s string) (Team, error) {
	if val, ok := teamStringToType[strings.ToUpper(s)]; ok {
		return val, nil
	}
	return 0, fmt.Errorf("%w: team %q", ErrUnknownValue, s)
}

func (t Team) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: team %d", ErrUnknownValue, uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *Team) UnmarshalText(text []byte) error {
	val, err := ParseTeam(string(text))
	if err != nil {
		return err
	}
	*t = val
	return nil
}
