// Package enums holds the closed classification sets shared by gameplay
// systems: weapon categories, damage types, and teams.
//
// Every enum is a uint8 with a stable encoding starting at zero, a code
// name (String), a display label (DisplayName), and case-insensitive text
// parsing for config files.
package enums

import "errors"

// ErrUnknownValue is returned when text does not name a known enum value.
var ErrUnknownValue = errors.New("unknown enum value")
