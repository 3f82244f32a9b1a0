package combat_test

import (
	"testing"

	"github.com/specialistvlad/tircore/internal/actor"
	"github.com/specialistvlad/tircore/internal/capability/mocks"
	"github.com/specialistvlad/tircore/internal/combat"
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/model"
	"github.com/specialistvlad/tircore/internal/tag"
	"github.com/specialistvlad/tircore/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolver_Apply_DelegatesToTarget(t *testing.T) {
	ctx, logs := testutil.NewContext(t)
	native := testutil.NewNativeTags(t)
	ctrl := gomock.NewController(t)

	instigator := model.ActorIDFromName("hero")
	target := mocks.NewMockDamageable(ctrl)

	gomock.InOrder(
		target.EXPECT().CurrentHealth().Return(30.0),
		target.EXPECT().IsDead().Return(false),
		target.EXPECT().TakeDamage(25.0, instigator),
		target.EXPECT().CurrentHealth().Return(5.0),
		target.EXPECT().IsDead().Return(false),
	)

	r := &combat.Resolver{Tags: native.Tags}
	out := r.Apply(ctx, target, model.DamageInfo{
		Amount:     25,
		Instigator: instigator,
		DamageType: enums.DamageTypeEnergy,
		DamageTags: tag.NewContainer(native.Tags.WeaponTypePlasmaBeam),
	})

	assert.Equal(t, combat.Outcome{HealthBefore: 30, HealthAfter: 5, Applied: true}, out)
	assert.Contains(t, logs.String(), "Damage resolved.")
	assert.Contains(t, logs.String(), "damage_type=Energy")
	assert.Contains(t, logs.String(), "Weapon.Type.PlasmaBeam")
}

func TestResolver_Apply_SkipsDeadTarget(t *testing.T) {
	ctx, logs := testutil.NewContext(t)
	ctrl := gomock.NewController(t)

	target := mocks.NewMockDamageable(ctrl)
	target.EXPECT().CurrentHealth().Return(0.0)
	target.EXPECT().IsDead().Return(true)
	// TakeDamage has no expectation: calling it fails the test.

	r := &combat.Resolver{}
	out := r.Apply(ctx, target, model.DamageInfo{Amount: 10})

	assert.False(t, out.Applied)
	assert.False(t, out.Killed)
	assert.Contains(t, logs.String(), "already dead")
}

func TestResolver_Apply_SkipsNonPositiveAmount(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	ctrl := gomock.NewController(t)

	target := mocks.NewMockDamageable(ctrl)
	target.EXPECT().CurrentHealth().Return(50.0).Times(2)

	r := &combat.Resolver{}
	for _, amount := range []float64{0, -5} {
		out := r.Apply(ctx, target, model.DamageInfo{Amount: amount})
		assert.False(t, out.Applied)
		assert.Equal(t, 50.0, out.HealthAfter)
	}
}

func TestResolver_Apply_WithActor(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	native := testutil.NewNativeTags(t)

	grunt := actor.New(native.Tags, actor.Config{
		Name:  "grunt",
		Team:  enums.TeamEnemy,
		Stats: actor.Stats{Health: 30, MaxHealth: 30, Speed: 1},
	})
	r := &combat.Resolver{Tags: native.Tags}

	t.Run("invulnerable actor is untouched", func(t *testing.T) {
		grunt.AddState(native.Tags.StateInvulnerable)
		defer grunt.RemoveState(native.Tags.StateInvulnerable)

		out := r.Apply(ctx, grunt, model.DamageInfo{Amount: 100})
		assert.False(t, out.Applied)
		assert.Equal(t, 30.0, grunt.CurrentHealth())
	})

	t.Run("killing blow", func(t *testing.T) {
		out := r.Apply(ctx, grunt, model.DamageInfo{Amount: 45})
		require.True(t, out.Applied)
		assert.True(t, out.Killed)
		assert.Equal(t, 30.0, out.HealthBefore)
		assert.LessOrEqual(t, out.HealthAfter, 0.0)
		assert.True(t, grunt.HasState(native.Tags.StateDead))
	})

	t.Run("overkill is not a second kill", func(t *testing.T) {
		out := r.Apply(ctx, grunt, model.DamageInfo{Amount: 5})
		assert.False(t, out.Applied)
		assert.False(t, out.Killed)
	})
}

func TestCanDamage(t *testing.T) {
	testCases := []struct {
		attacker, target enums.Team
		want             bool
	}{
		{enums.TeamPlayer, enums.TeamEnemy, true},
		{enums.TeamEnemy, enums.TeamPlayer, true},
		{enums.TeamPlayer, enums.TeamPlayer, false},
		{enums.TeamEnemy, enums.TeamEnemy, false},
		{enums.TeamNeutral, enums.TeamPlayer, false},
		{enums.TeamPlayer, enums.TeamNeutral, false},
	}

	for _, tc := range testCases {
		t.Run(tc.attacker.String()+"->"+tc.target.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, combat.CanDamage(tc.attacker, tc.target))
		})
	}
}
