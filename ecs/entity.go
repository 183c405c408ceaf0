package ecs

// Entity is an opaque handle to a spawned entity. Handles are allocated by
// World.Spawn from a monotonic counter starting at 1 and are never reused.
type Entity uint64

// EntityNone is the zero Entity; no spawned entity ever carries this value.
const EntityNone Entity = 0
