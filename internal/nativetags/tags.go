package nativetags

import "github.com/specialistvlad/tircore/internal/tag"

// Tags holds one slot per native gameplay tag. The `tag` struct tag names
// the manifest path bound to the field.
//
// A Tags value obtained from Registry.Get is shared and must not be
// modified.
type Tags struct {
	// Input
	InputMove     tag.Tag `tag:"Input.Move"`
	InputFire     tag.Tag `tag:"Input.Fire"`
	InputDash     tag.Tag `tag:"Input.Dash"`
	InputAbility1 tag.Tag `tag:"Input.Ability.1"`
	InputAbility2 tag.Tag `tag:"Input.Ability.2"`
	InputAbility3 tag.Tag `tag:"Input.Ability.3"`

	// Weapon
	WeaponTypePlasmaBeam tag.Tag `tag:"Weapon.Type.PlasmaBeam"`
	WeaponTypeIonCannon  tag.Tag `tag:"Weapon.Type.IonCannon"`
	WeaponStateFiring    tag.Tag `tag:"Weapon.State.Firing"`
	WeaponStateReloading tag.Tag `tag:"Weapon.State.Reloading"`

	// State
	StateDead         tag.Tag `tag:"State.Dead"`
	StateInvulnerable tag.Tag `tag:"State.Invulnerable"`
	StateStunned      tag.Tag `tag:"State.Stunned"`

	// Attribute
	AttributeHealth        tag.Tag `tag:"Attribute.Health"`
	AttributeMaxHealth     tag.Tag `tag:"Attribute.MaxHealth"`
	AttributeMovementSpeed tag.Tag `tag:"Attribute.MovementSpeed"`
}
