package actor_test

import (
	"testing"

	"github.com/specialistvlad/tircore/internal/actor"
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/model"
	"github.com/specialistvlad/tircore/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrunt(t *testing.T) (*actor.Actor, *testutil.NativeTags) {
	t.Helper()
	nt := testutil.NewNativeTags(t)
	a := actor.New(nt.Tags, actor.Config{
		Name:     "grunt",
		Team:     enums.TeamEnemy,
		Location: model.Vec3(1, 2, 0),
		Stats:    actor.DefaultStats(),
	})
	return a, nt
}

func TestActor_ShieldAbsorbsFirst(t *testing.T) {
	testCases := []struct {
		name       string
		hits       []float64
		wantShield float64
		wantHealth float64
		wantDead   bool
	}{
		{name: "shield only", hits: []float64{30}, wantShield: 20, wantHealth: 100},
		{name: "exactly drains shield", hits: []float64{50}, wantShield: 0, wantHealth: 100},
		{name: "spills into health", hits: []float64{70}, wantShield: 0, wantHealth: 80},
		{name: "multiple hits", hits: []float64{40, 40}, wantShield: 0, wantHealth: 70},
		{name: "overkill clamps at zero", hits: []float64{500}, wantShield: 0, wantHealth: 0, wantDead: true},
		{name: "exact kill", hits: []float64{150}, wantShield: 0, wantHealth: 0, wantDead: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newGrunt(t)
			for _, h := range tc.hits {
				a.TakeDamage(h, model.NilActorID)
			}
			assert.Equal(t, tc.wantShield, a.Stats().Shield)
			assert.Equal(t, tc.wantHealth, a.CurrentHealth())
			assert.Equal(t, tc.wantDead, a.IsDead())
		})
	}
}

func TestActor_DeathAddsStateTag(t *testing.T) {
	a, nt := newGrunt(t)
	hero := model.ActorIDFromName("hero")

	a.TakeDamage(1000, hero)

	require.True(t, a.IsDead())
	assert.True(t, a.HasState(nt.Tags.StateDead))
	assert.Equal(t, hero, a.LastInstigator())
	assert.False(t, a.IsValidTarget(), "dead actors are not valid targets")

	// Further damage to a corpse is ignored.
	a.TakeDamage(10, model.ActorIDFromName("someone-else"))
	assert.Equal(t, hero, a.LastInstigator())
}

func TestActor_IgnoredDamage(t *testing.T) {
	a, nt := newGrunt(t)

	a.TakeDamage(0, model.NilActorID)
	a.TakeDamage(-25, model.NilActorID)
	assert.Equal(t, actor.DefaultStats(), a.Stats(), "non-positive amounts are ignored")
	assert.True(t, a.LastInstigator().IsNil())

	a.AddState(nt.Tags.StateInvulnerable)
	a.TakeDamage(80, model.NilActorID)
	assert.Equal(t, actor.DefaultStats(), a.Stats(), "invulnerable actors take no damage")

	a.RemoveState(nt.Tags.StateInvulnerable)
	a.TakeDamage(80, model.NilActorID)
	assert.Equal(t, 70.0, a.CurrentHealth())
}

func TestActor_PoolLifecycle(t *testing.T) {
	nt := testutil.NewNativeTags(t)
	a := actor.NewPooled(nt.Tags)
	assert.False(t, a.InPlay())
	assert.False(t, a.IsValidTarget(), "dormant actors are not targetable")

	a.Configure(actor.Config{Name: "drone", Team: enums.TeamEnemy, Stats: actor.DefaultStats()})
	a.OnAcquireFromPool()
	assert.True(t, a.IsValidTarget())
	assert.Equal(t, model.ActorIDFromName("drone"), a.ID())

	a.TakeDamage(1000, model.NilActorID)
	require.True(t, a.IsDead())
	a.OnReturnToPool()
	assert.False(t, a.InPlay())

	// Reacquiring restores the configured stats and clears state.
	a.OnAcquireFromPool()
	assert.False(t, a.IsDead())
	assert.Equal(t, 100.0, a.CurrentHealth())
	assert.Equal(t, 50.0, a.Stats().Shield)
	assert.False(t, a.HasState(nt.Tags.StateDead))
	assert.True(t, a.IsValidTarget())
}

func TestActor_Targetable(t *testing.T) {
	a, _ := newGrunt(t)

	assert.True(t, a.IsValidTarget())
	assert.Equal(t, model.Vec3(1, 2, 0), a.TargetLocation())
	assert.Equal(t, enums.TeamEnemy, a.Team())
	assert.Equal(t, "grunt", a.Name())
}

func TestActor_Move(t *testing.T) {
	a, nt := newGrunt(t)
	a.SetLocation(model.ZeroVector)

	moved := a.Move(model.Vec3(3, 4, 0), 0.5)
	require.True(t, moved)
	// Speed 5 for half a second along (0.6, 0.8).
	assert.InDelta(t, 1.5, a.Location().X, 1e-9)
	assert.InDelta(t, 2.0, a.Location().Y, 1e-9)

	assert.False(t, a.Move(model.ZeroVector, 1), "zero direction means stop")

	a.AddState(nt.Tags.StateStunned)
	before := a.Location()
	assert.False(t, a.Move(model.Vec3(1, 0, 0), 1))
	assert.Equal(t, before, a.Location(), "stunned actors cannot move")
}

func TestActor_StateIsCopied(t *testing.T) {
	a, nt := newGrunt(t)
	a.AddState(nt.Tags.StateStunned)

	state := a.State()
	state.Remove(nt.Tags.StateStunned)

	assert.True(t, a.HasState(nt.Tags.StateStunned))
}

func TestStats_Restored(t *testing.T) {
	s := actor.Stats{Health: 3, MaxHealth: 40, Shield: 0, MaxShield: 10, Damage: 7, Speed: 2}
	r := s.Restored()
	assert.Equal(t, 40.0, r.Health)
	assert.Equal(t, 10.0, r.Shield)
	assert.Equal(t, 7.0, r.Damage)
	assert.Equal(t, 3.0, s.Health, "Restored must not modify the receiver")
}
