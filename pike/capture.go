package pike

// capState is one thread's capture vector: 2*NumCaps slots, start offsets
// followed by end offsets, shared copy-on-write across threads that have
// not diverged yet. This is the bytecode-VM analogue of the teacher's
// cowCaptures/sharedCaptures pair in nfa/pikevm.go, adapted from a
// pointer-to-shared-struct model to a pooled-slice model since threads
// here are keyed by plain pc rather than graph StateIDs.
type capState struct {
	slots []int32
	refs  int
}

// capPool hands out capState values backed by a free list, so a typical
// match reuses a handful of allocations across the whole input instead of
// allocating one capture vector per thread per step.
type capPool struct {
	numCaps int
	free    []*capState
}

func newCapPool(numCaps, hint int) *capPool {
	return &capPool{numCaps: numCaps, free: make([]*capState, 0, hint)}
}

// alloc returns a fresh capState with every slot set to -1 (unset) and a
// reference count of 1.
func (p *capPool) alloc() *capState {
	if n := len(p.free); n > 0 {
		cs := p.free[n-1]
		p.free = p.free[:n-1]
		for i := range cs.slots {
			cs.slots[i] = -1
		}
		cs.refs = 1
		return cs
	}
	cs := &capState{slots: make([]int32, 2*p.numCaps), refs: 1}
	for i := range cs.slots {
		cs.slots[i] = -1
	}
	return cs
}

func (p *capPool) retain(cs *capState) *capState {
	cs.refs++
	return cs
}

func (p *capPool) release(cs *capState) {
	if cs == nil {
		return
	}
	cs.refs--
	if cs.refs == 0 {
		p.free = append(p.free, cs)
	}
}

// set writes value into slot, cloning first if cs is shared with another
// thread. The clone, if any, is what the caller must keep using; cs itself
// is released by set when it clones.
func (p *capPool) set(cs *capState, slot int, value int32) *capState {
	if cs.refs == 1 {
		cs.slots[slot] = value
		return cs
	}
	nc := p.alloc()
	copy(nc.slots, cs.slots)
	nc.slots[slot] = value
	p.release(cs)
	return nc
}
