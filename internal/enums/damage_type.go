package enums

import (
	"fmt"
	"strings"
)

// DamageType classifies damage for resistance calculations. The zero value
// is DamageTypePhysical.
type DamageType uint8

const (
	DamageTypePhysical    DamageType = iota // 0
	DamageTypeEnergy                        // 1
	DamageTypeExplosive                     // 2
	DamageTypeEnvironment                   // 3
)

var damageTypeToString = map[DamageType]string{
	DamageTypePhysical:    "Physical",
	DamageTypeEnergy:      "Energy",
	DamageTypeExplosive:   "Explosive",
	DamageTypeEnvironment: "Environment",
}

var damageTypeDisplayNames = map[DamageType]string{
	DamageTypePhysical:    "Physical Impact",
	DamageTypeEnergy:      "Energy/Plasma",
	DamageTypeExplosive:   "Explosive",
	DamageTypeEnvironment: "Environmental",
}

var damageTypeStringToType = map[string]DamageType{
	"PHYSICAL":    DamageTypePhysical,
	"ENERGY":      DamageTypeEnergy,
	"EXPLOSIVE":   DamageTypeExplosive,
	"ENVIRONMENT": DamageTypeEnvironment,
}

// DamageTypeValues returns every damage type in encoding order.
func DamageTypeValues() []DamageType {
	return []DamageType{DamageTypePhysical, DamageTypeEnergy, DamageTypeExplosive, DamageTypeEnvironment}
}

func (d DamageType) String() string {
	if val, ok := damageTypeToString[d]; ok {
		return val
	}
	return fmt.Sprintf("DamageType(%d)", uint8(d))
}

// DisplayName returns the human-readable label.
func (d DamageType) DisplayName() string {
	return damageTypeDisplayNames[d]
}

func (d DamageType) IsValid() bool {
	_, ok := damageTypeToString[d]
	return ok
}

// ParseDamageType converts a case-insensitive name into a DamageType.
func ParseDamageType(s string) (DamageType, error) {
	if val, ok := damageTypeStringToType[strings.ToUpper(s)]; ok {
		return val, nil
	}
	return 0, fmt.Errorf("%w: damage type %q", ErrUnknownValue, s)
}

func (d DamageType) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: damage type %d", ErrUnknownValue, uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *DamageType) UnmarshalText(text []byte) error {
	val, err := ParseDamageType(string(text))
	if err != nil {
		return err
	}
	*d = val
	return nil
}
