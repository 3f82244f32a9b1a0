// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the plain gameplay data passed between systems.
//
// # Core Concepts
//
//   - DamageInfo: the payload of a single damage event. Combat, AI, and UI
//     all read the same struct, so it carries everything any of them needs:
//     amount, who caused it, what delivered it, its type, its tags, and
//     where it landed.
//
//   - ActorID: a weak reference to an actor. It names an actor without
//     keeping it alive; holders resolve it through whatever actor table they
//     own and must expect the actor to be gone.
//
//   - Vector3: a world-space position or direction.
//
// Everything here is a value type with a usable zero value. Values convert
// to cty so they can be read from HCL files and written out as JSON.
package model
