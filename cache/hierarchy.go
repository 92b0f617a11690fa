package cache

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"

	"github.com/smdupor/CacheSim/config"
)

// Hierarchy is a fully constructed memory hierarchy. Requests enter at the
// L1; the chain is fixed at construction and never rewired.
type Hierarchy struct {
	l1 *Level
}

// Build constructs the hierarchy described by params: an L1, a victim cache
// when VCNumBlocks > 0, an L2 when L2Size > 0, and a main-memory sink.
func Build(params config.Params) (*Hierarchy, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	l1 := newCacheLevel(RoleL1, params.BlockSize, params.L1Size, params.L1Assoc)
	if params.VCNumBlocks > 0 {
		l1.victim = newVictimLevel(params.BlockSize, params.VCNumBlocks)
	}

	last := l1
	if params.L2Size > 0 {
		l2 := newCacheLevel(RoleL2, params.BlockSize, params.L2Size, params.L2Assoc)
		l1.next = l2
		last = l2
	}
	last.next = &Level{role: RoleMainMemory}

	return &Hierarchy{l1: l1}, nil
}

// newCacheLevel constructs a set-associative L1 or L2 level.
func newCacheLevel(role Role, blockSize, size, assoc int) *Level {
	numSets := size / (assoc * blockSize)

	return &Level{
		role:      role,
		blockSize: blockSize,
		assoc:     assoc,
		numSets:   numSets,
		offsetLen: log2(blockSize),
		indexLen:  log2(numSets),
		directory: akitacache.NewDirectory(
			numSets,
			assoc,
			blockSize,
			akitacache.NewLRUVictimFinder(),
		),
	}
}

// newVictimLevel constructs a fully-associative victim cache of numBlocks
// blocks. Its single set means the whole upper address acts as the tag.
func newVictimLevel(blockSize, numBlocks int) *Level {
	return &Level{
		role:      RoleVictim,
		blockSize: blockSize,
		assoc:     numBlocks,
		numSets:   1,
		offsetLen: log2(blockSize),
		indexLen:  0,
		directory: akitacache.NewDirectory(
			1,
			numBlocks,
			blockSize,
			akitacache.NewLRUVictimFinder(),
		),
	}
}

// L1 returns the entry point of the hierarchy.
func (h *Hierarchy) L1() *Level {
	return h.l1
}

// Read issues a read for addr at the top of the hierarchy.
func (h *Hierarchy) Read(addr uint64) {
	h.l1.Read(addr)
}

// Write issues a write for addr at the top of the hierarchy.
func (h *Hierarchy) Write(addr uint64) {
	h.l1.Write(addr)
}
