// Package targeting picks targets for AI and homing projectiles.
package targeting

import (
	"github.com/specialistvlad/tircore/internal/capability"
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/model"
)

// Filter returns the candidates a member of seeker may target: valid
// targets on a hostile team. Order is preserved.
func Filter[T capability.Targetable](seeker enums.Team, candidates []T) []T {
	var out []T
	for _, c := range candidates {
		if !c.IsValidTarget() {
			continue
		}
		if !seeker.IsHostileTo(c.Team()) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SelectNearest returns the valid hostile candidate closest to origin. Ties
// go to the earliest candidate. TargetLocation is read only after
// IsValidTarget has returned true.
func SelectNearest[T capability.Targetable](origin model.Vector3, seeker enums.Team, candidates []T) (T, bool) {
	var (
		best     T
		bestDist float64
		found    bool
	)
	for _, c := range Filter(seeker, candidates) {
		d := origin.Distance(c.TargetLocation())
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}
