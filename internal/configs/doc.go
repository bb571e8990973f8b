// Package configs manages the user-scoped Movey configuration.
//
// The Movey home directory is resolved from the environment (MOVE_HOME, or
// TEST_MOVE_HOME in test mode, falling back to <home>/.move) by
// ResolveMoveyHome; the credential operations take the resolved path so they
// stay independent of process environment state.
//
// The credential file is a TOML document. Updates decode it into a generic
// map, touch only registry.token, and rewrite the whole file, so fields
// written by other Movey tooling survive a login or logout.
package configs
