// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines DamageInfo, the standardized payload for damage events
// passed between combat, AI, and UI systems.
//
// DamageInfo is plain data. It has no invariants beyond its field defaults,
// and the zero value is the default payload: no damage, no instigator or
// causer, physical damage type, no tags, hit at the origin. Consumers that
// want to modify DamageTags after receiving a copy should Clone it first,
// since the underlying set is shared between shallow copies.
package model

import (
	"github.com/specialistvlad/tircore/internal/enums"
	"github.com/specialistvlad/tircore/internal/tag"
	"github.com/zclconf/go-cty/cty"
)

// DamageInfo describes a single damage event.
type DamageInfo struct {
	Amount float64

	// Instigator is the actor responsible for the damage. Weak reference.
	Instigator ActorID
	// DamageCauser is the actor that physically delivered the damage, e.g.
	// a projectile. Weak reference.
	DamageCauser ActorID

	DamageType  enums.DamageType
	DamageTags  tag.Container
	HitLocation Vector3
}

// DamageInfoCtyType is the cty object type produced by DamageInfo.CtyValue.
var DamageInfoCtyType = cty.Object(map[string]cty.Type{
	"amount":        cty.Number,
	"instigator":    cty.String,
	"damage_causer": cty.String,
	"damage_type":   cty.String,
	"damage_tags":   cty.Set(cty.String),
	"hit_location":  cty.List(cty.Number),
})

// CtyValue exposes the payload to tooling as a cty object. Null actor
// references become null strings.
func (d DamageInfo) CtyValue() cty.Value {
	tags := cty.SetValEmpty(cty.String)
	if !d.DamageTags.IsEmpty() {
		vals := make([]cty.Value, 0, d.DamageTags.Len())
		for _, s := range d.DamageTags.Strings() {
			vals = append(vals, cty.StringVal(s))
		}
		tags = cty.SetVal(vals)
	}

	return cty.ObjectVal(map[string]cty.Value{
		"amount":        cty.NumberFloatVal(d.Amount),
		"instigator":    actorCtyValue(d.Instigator),
		"damage_causer": actorCtyValue(d.DamageCauser),
		"damage_type":   cty.StringVal(d.DamageType.String()),
		"damage_tags":   tags,
		"hit_location":  d.HitLocation.CtyValue(),
	})
}

func actorCtyValue(id ActorID) cty.Value {
	if id.IsNil() {
		return cty.NullVal(cty.String)
	}
	return cty.StringVal(id.String())
}
