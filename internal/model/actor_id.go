// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines ActorID, the weak reference used wherever one system
// needs to point at an actor it does not own.
//
// An ActorID never keeps an actor alive and is never dereferenced directly.
// Holders resolve it through whatever actor table they have access to and
// must handle the case where the actor is gone.
package model

import "github.com/google/uuid"

// ActorID identifies an actor. The zero value, NilActorID, is the null
// reference.
type ActorID struct {
	id uuid.UUID
}

// NilActorID is the null actor reference.
var NilActorID = ActorID{}

// actorNamespace scopes name-derived IDs so they cannot collide with IDs
// derived by other tools from the same names.
var actorNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("tircore.actor"))

// NewActorID returns a random actor ID.
func NewActorID() ActorID {
	return ActorID{id: uuid.New()}
}

// ActorIDFromName derives a stable ID from a name, so that runs over the
// same scenario produce the same IDs in logs.
func ActorIDFromName(name string) ActorID {
	return ActorID{id: uuid.NewSHA1(actorNamespace, []byte(name))}
}

// ParseActorID parses the canonical UUID form.
func ParseActorID(s string) (ActorID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NilActorID, err
	}
	return ActorID{id: id}, nil
}

// IsNil reports whether the reference is null.
func (a ActorID) IsNil() bool {
	return a.id == uuid.Nil
}

// String returns the canonical UUID form, or "" for the null reference.
func (a ActorID) String() string {
	if a.IsNil() {
		return ""
	}
	return a.id.String()
}
