package cache

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// attemptVCSwap tries to service a miss through this level's victim cache.
// victim is the slot in the owner's set that is about to be displaced;
// blockAddr is the block-aligned address being requested.
//
// On a victim-cache hit the requested line is swapped into the victim slot
// and the displaced line takes its place in the victim cache; the caller can
// use the slot directly and no fill is needed. On a victim-cache miss with a
// valid victim slot, the displaced line is pushed into the victim cache's
// LRU slot, and whatever line falls out of the victim cache is written back
// if dirty; the caller then fills the freed slot from the next level. A miss
// with an invalid victim slot leaves the victim cache untouched.
func (l *Level) attemptVCSwap(blockAddr uint64, victim *akitacache.Block) bool {
	if l.victim == nil {
		return false
	}
	vc := l.victim

	if wanted := vc.directory.Lookup(0, blockAddr); wanted != nil && wanted.IsValid {
		victim.IsDirty, wanted.IsDirty = wanted.IsDirty, victim.IsDirty
		victim.Tag, wanted.Tag = wanted.Tag, victim.Tag
		victim.IsValid, wanted.IsValid = wanted.IsValid, true
		vc.directory.Visit(wanted)
		l.stats.VCSwapRequests++
		l.stats.VCSwaps++
		return true
	}

	if !victim.IsValid {
		return false
	}

	// Push the displaced line into the victim cache's LRU slot. The line
	// falling out of the victim cache lands in the victim slot.
	out := vc.directory.FindVictim(blockAddr)
	victim.IsDirty, out.IsDirty = out.IsDirty, victim.IsDirty
	victim.Tag, out.Tag = out.Tag, victim.Tag
	victim.IsValid, out.IsValid = out.IsValid, true
	vc.directory.Visit(out)

	if victim.IsValid && victim.IsDirty {
		l.next.Write(victim.Tag)
		victim.IsDirty = false
		l.stats.Writebacks++
	}

	l.stats.VCSwapRequests++
	return false
}
