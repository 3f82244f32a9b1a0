package enums

import (
	"fmt"
	"strings"
)

// WeaponType categorizes weapons for logic and UI.
type WeaponType uint8

const (
	WeaponTypePrimary WeaponType = iota // 0
	WeaponTypeSpecial                   // 1
	WeaponTypeUtility                   // 2
)

var weaponTypeToString = map[WeaponType]string{
	WeaponTypePrimary: "Primary",
	WeaponTypeSpecial: "Special",
	WeaponTypeUtility: "Utility",
}

var weaponTypeDisplayNames = map[WeaponType]string{
	WeaponTypePrimary: "Primary Weapon",
	WeaponTypeSpecial: "Special Ability",
	WeaponTypeUtility: "Utility/Movement",
}

var weaponTypeStringToType = map[string]WeaponType{
	"PRIMARY": WeaponTypePrimary,
	"SPECIAL": WeaponTypeSpecial,
	"UTILITY": WeaponTypeUtility,
}

// WeaponTypeValues returns every weapon type in encoding order.
func WeaponTypeValues() []WeaponType {
	return []WeaponType{WeaponTypePrimary, WeaponTypeSpecial, WeaponTypeUtility}
}

func (w WeaponType) String() string {
	if val, ok := weaponTypeToString[w]; ok {
		return val
	}
	return fmt.Sprintf("WeaponType(%d)", uint8(w))
}

// DisplayName returns the human-readable label.
func (w WeaponType) DisplayName() string {
	return weaponTypeDisplayNames[w]
}

func (w WeaponType) IsValid() bool {
	_, ok := weaponTypeToString[w]
	return ok
}

// ParseWeaponType converts a case-insensitive name into a WeaponType.
func ParseWeaponType(s string) (WeaponType, error) {
	if val, ok := weaponTypeStringToType[strings.ToUpper(s)]; ok {
		return val, nil
	}
	return 0, fmt.Errorf("%w: weapon type %q", ErrUnknownValue, s)
}

func (w WeaponType) MarshalText() ([]byte, error) {
	if !w.IsValid() {
		return nil, fmt.Errorf("%w: weapon type %d", ErrUnknownValue, uint8(w))
	}
	return []byte(w.String()), nil
}

func (w *WeaponType) UnmarshalText(text []byte) error {
	val, err := ParseWeaponType(string(text))
	if err != nil {
		return err
	}
	*w = val
	return nil
}
