package ecs

import "strconv"

// Entity packs a 32-bit slot id (low bits) and a 32-bit generation (high
// bits). Slot ids start at 1, so the zero handle is never valid.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID { return entityID(uint32(e)) }
func (e Entity) generation() generation { return generation(uint32(uint64(e) >> entityIDBits)) }

// String prints slot and generation as "12v3".
func (e Entity) String() string {
	b := strconv.AppendUint(nil, uint64(e.id()), 10)
	b = append(b, 'v')
	return string(strconv.AppendUint(b, uint64(e.generation()), 10))
}

// Valid reports whether e has a slot. It says nothing about liveness.
func (e Entity) Valid() bool {
	return e.id() > 0
}
