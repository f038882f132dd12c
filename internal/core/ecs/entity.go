package ecs

// Entity handle packing: low 32 bits are the index, high 32 bits are the
// generation. Packing them into one opaque uint64 lets callers pass an
// EntityID by value while the Registry detects stale handles cheaply (ABA
// defense): reusing an index always bumps its generation, so an old handle
// compares unequal to the live one even though the index matches.

const entityIndexBits = 32
const entityIndexMask = (uint64(1) << entityIndexBits) - 1

// reservedIndexSentinel mirrors the source engine's bound on valid indices;
// an index at or above this value is never considered valid (it collides
// with the all-ones NullEntity encoding at generation 0xFFFFFFFF).
const reservedIndexSentinel = 0xFFFFFFFE

// MakeEntity packs an index and a generation into an opaque EntityID.
func MakeEntity(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<entityIndexBits | uint64(index))
}

// GetEntityIndex extracts the low 32 bits (index) of an entity handle.
func GetEntityIndex(e EntityID) uint32 {
	return uint32(uint64(e) & entityIndexMask)
}

// GetEntityGeneration extracts the high 32 bits (generation) of an entity handle.
func GetEntityGeneration(e EntityID) uint32 {
	return uint32(uint64(e) >> entityIndexBits)
}

// IsValidEntity reports whether e is structurally plausible: non-null,
// non-zero, and its index below the reserved sentinel. It does NOT check
// liveness against a Registry; use Registry.ContainsEntity for that.
func IsValidEntity(e EntityID) bool {
	if e == NullEntity || e == InvalidEntityID {
		return false
	}
	return GetEntityIndex(e) < reservedIndexSentinel
}
