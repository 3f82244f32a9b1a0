package movement

import (
	"testing"

	"github.com/specialistvlad/tircore/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMelee_Steer(t *testing.T) {
	m := DefaultMelee()

	testCases := []struct {
		name   string
		self   model.Vector3
		target model.Vector3
		want   model.Vector3
	}{
		{name: "far target is approached", self: model.ZeroVector, target: model.Vec3(4, 0, 0), want: model.Vec3(1, 0, 0)},
		{name: "within stop distance", self: model.ZeroVector, target: model.Vec3(0.3, 0, 0), want: model.ZeroVector},
		{name: "exactly at stop distance", self: model.ZeroVector, target: model.Vec3(0, 0.5, 0), want: model.ZeroVector},
		{name: "same position", self: model.Vec3(1, 1, 1), target: model.Vec3(1, 1, 1), want: model.ZeroVector},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.Steer(tc.self, tc.target)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tc.want.Z, got.Z, 1e-9)
		})
	}
}

func TestRanged_Steer(t *testing.T) {
	r := DefaultRanged()

	testCases := []struct {
		name   string
		target model.Vector3
		want   model.Vector3
	}{
		{name: "too close backs off", target: model.Vec3(2, 0, 0), want: model.Vec3(-1, 0, 0)},
		{name: "too far approaches", target: model.Vec3(0, 10, 0), want: model.Vec3(0, 1, 0)},
		{name: "inside band holds", target: model.Vec3(5, 0, 0), want: model.ZeroVector},
		{name: "lower edge holds", target: model.Vec3(3, 0, 0), want: model.ZeroVector},
		{name: "upper edge holds", target: model.Vec3(7, 0, 0), want: model.ZeroVector},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Steer(model.ZeroVector, tc.target)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tc.want.Z, got.Z, 1e-9)
		})
	}
}

func TestParseStrategy(t *testing.T) {
	testCases := []struct {
		input string
		want  Strategy
	}{
		{input: "", want: Stationary{}},
		{input: "stationary", want: Stationary{}},
		{input: "Melee", want: DefaultMelee()},
		{input: "RANGED", want: DefaultRanged()},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseStrategy(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseStrategy("teleport")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"teleport"`)
}
