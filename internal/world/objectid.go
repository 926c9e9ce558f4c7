package world

import "sync/atomic"

// ID ranges (convention):
//
//	0x00000000:              invalid
//	0x00000001 - 0x0FFFFFFF: player
//	0x20000000 - 0x2FFFFFFF: pursuers
const pursuerIDBase uint32 = 0x20000000

// IDGenerator hands out stable pursuer IDs. IDs are never reused within a session.
type IDGenerator struct {
	nextPursuerID atomic.Uint32
}

// NewIDGenerator creates a new ID generator.
func NewIDGenerator() *IDGenerator {
	gen := &IDGenerator{}
	gen.nextPursuerID.Store(pursuerIDBase)
	return gen
}

// NextPursuerID returns the next unused pursuer ID.
func (g *IDGenerator) NextPursuerID() uint32 {
	return g.nextPursuerID.Add(1)
}

// IsPursuerID reports whether id lies in the pursuer range.
func IsPursuerID(id uint32) bool {
	return id > pursuerIDBase && id < 0x30000000
}
