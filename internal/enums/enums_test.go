package enums

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodingIsStable(t *testing.T) {
	assert.Equal(t, uint8(0), uint8(WeaponTypePrimary))
	assert.Equal(t, uint8(2), uint8(WeaponTypeUtility))
	assert.Equal(t, uint8(0), uint8(DamageTypePhysical))
	assert.Equal(t, uint8(3), uint8(DamageTypeEnvironment))
	assert.Equal(t, uint8(0), uint8(TeamPlayer))
	assert.Equal(t, uint8(2), uint8(TeamNeutral))

	var zero DamageType
	assert.Equal(t, DamageTypePhysical, zero, "the zero value must be Physical")
}

func TestDisplayNames(t *testing.T) {
	testCases := []struct {
		value interface{ DisplayName() string }
		want  string
	}{
		{WeaponTypePrimary, "Primary Weapon"},
		{WeaponTypeSpecial, "Special Ability"},
		{WeaponTypeUtility, "Utility/Movement"},
		{DamageTypePhysical, "Physical Impact"},
		{DamageTypeEnergy, "Energy/Plasma"},
		{DamageTypeExplosive, "Explosive"},
		{DamageTypeEnvironment, "Environmental"},
		{TeamPlayer, "Player"},
		{TeamEnemy, "Enemy"},
		{TeamNeutral, "Neutral"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.value.DisplayName())
		})
	}
}

func TestParse(t *testing.T) {
	w, err := ParseWeaponType("special")
	require.NoError(t, err)
	assert.Equal(t, WeaponTypeSpecial, w)

	d, err := ParseDamageType("EXPLOSIVE")
	require.NoError(t, err)
	assert.Equal(t, DamageTypeExplosive, d)

	team, err := ParseTeam("Enemy")
	require.NoError(t, err)
	assert.Equal(t, TeamEnemy, team)

	_, err = ParseWeaponType("melee")
	assert.ErrorIs(t, err, ErrUnknownValue)
	_, err = ParseDamageType("")
	assert.ErrorIs(t, err, ErrUnknownValue)
	_, err = ParseTeam("Aliens")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestValuesRoundTripThroughText(t *testing.T) {
	for _, v := range WeaponTypeValues() {
		parsed, err := ParseWeaponType(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	for _, v := range DamageTypeValues() {
		parsed, err := ParseDamageType(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	for _, v := range TeamValues() {
		parsed, err := ParseTeam(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}

func TestOutOfRangeValues(t *testing.T) {
	bogus := Team(42)
	assert.False(t, bogus.IsValid())
	assert.Equal(t, "Team(42)", bogus.String())
	assert.Equal(t, "", bogus.DisplayName())

	_, err := bogus.MarshalText()
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestJSONUsesNames(t *testing.T) {
	type payload struct {
		Team   Team       `json:"team"`
		Damage DamageType `json:"damage"`
	}

	data, err := json.Marshal(payload{Team: TeamEnemy, Damage: DamageTypeEnergy})
	require.NoError(t, err)
	assert.JSONEq(t, `{"team":"Enemy","damage":"Energy"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"team":"neutral","damage":"environment"}`), &decoded))
	assert.Equal(t, TeamNeutral, decoded.Team)
	assert.Equal(t, DamageTypeEnvironment, decoded.Damage)
}

func TestTeam_IsHostileTo(t *testing.T) {
	assert.True(t, TeamPlayer.IsHostileTo(TeamEnemy))
	assert.True(t, TeamEnemy.IsHostileTo(TeamPlayer))
	assert.False(t, TeamPlayer.IsHostileTo(TeamPlayer))
	assert.False(t, TeamEnemy.IsHostileTo(TeamEnemy))
	assert.False(t, TeamNeutral.IsHostileTo(TeamPlayer))
	assert.False(t, TeamPlayer.IsHostileTo(TeamNeutral))
}
