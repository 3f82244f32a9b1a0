package model

import (
	"testing"

	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestDamageInfo_Defaults(t *testing.T) {
	var info DamageInfo

	assert.Equal(t, 0.0, info.Amount)
	assert.Equal(t, enums.DamageTypePhysical, info.DamageType)
	assert.Equal(t, ZeroVector, info.HitLocation)
	assert.True(t, info.DamageTags.IsEmpty())
	assert.True(t, info.Instigator.IsNil())
	assert.True(t, info.DamageCauser.IsNil())
}

func TestDamageInfo_CtyValue(t *testing.T) {
	m := tag.NewManager(nil)
	plasma, err := m.RegisterOrGet("Weapon.Type.PlasmaBeam", "")
	require.NoError(t, err)

	instigator := ActorIDFromName("hero")
	info := DamageInfo{
		Amount:      12.5,
		Instigator:  instigator,
		DamageType:  enums.DamageTypeEnergy,
		DamageTags:  tag.NewContainer(plasma),
		HitLocation: Vec3(1, 2, 3),
	}

	val := info.CtyValue()
	require.True(t, val.Type().Equals(DamageInfoCtyType))

	amount, _ := val.GetAttr("amount").AsBigFloat().Float64()
	assert.Equal(t, 12.5, amount)
	assert.Equal(t, instigator.String(), val.GetAttr("instigator").AsString())
	assert.True(t, val.GetAttr("damage_causer").IsNull())
	assert.Equal(t, "Energy", val.GetAttr("damage_type").AsString())
	assert.True(t, val.GetAttr("damage_tags").HasElement(cty.StringVal("Weapon.Type.PlasmaBeam")).True())

	loc, err := VectorFromCty(val.GetAttr("hit_location"))
	require.NoError(t, err)
	assert.Equal(t, Vec3(1, 2, 3), loc)
}

func TestDamageInfo_CtyValueWithDefaults(t *testing.T) {
	val := DamageInfo{}.CtyValue()

	require.True(t, val.Type().Equals(DamageInfoCtyType))
	assert.Equal(t, 0, val.GetAttr("damage_tags").LengthInt())
	assert.Equal(t, "Physical", val.GetAttr("damage_type").AsString())
	assert.True(t, val.GetAttr("instigator").IsNull())
}
