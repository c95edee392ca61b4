// Package users provides the durable user collection plus the single
// active-session pointer.
//
// # Storage layout
//
// Two keys on the injected storage backend, JSON-encoded:
//
//	users              — { "<id>": {"id","username","password"}, ... }
//	users__activeUser  — User | null
//
// The active session is a snapshot of the user at login time, persisted
// separately so it survives restarts without re-reading the collection.
// Later changes to the underlying user record are not reflected in the
// snapshot until SetActiveUser is called again.
//
// # Failure semantics
//
// An absent or unparseable collection is first-run state, not an error:
// Init resets it to an empty collection and persists that. An absent or
// unparseable active-user value reads as "no session". Login with no
// matching credentials returns (nil, nil); Remove of an absent id is a
// no-op.
package users
