package pike

import (
	"github.com/coregx/repike/internal/conv"
	"github.com/coregx/repike/internal/sparse"
)

// thread is one live execution path: a program counter and the capture
// vector it carries. Grounded on the teacher's nfa/pikevm.go thread{state,
// startPos, captures}, minus startPos (slot 0 of the capture vector
// already records it) since this VM has no separate StateID space.
type thread struct {
	pc   int
	caps *capState
}

// threadList is one step's ordered set of live threads plus the sparse
// set used to admit each pc at most once, built on internal/sparse (the
// teacher's own O(1)-clear set implementation, trimmed to the surface
// this VM actually calls).
type threadList struct {
	dense []thread
	seen  *sparse.SparseSet
}

func newThreadList(capHint, sparseCap int) *threadList {
	return &threadList{
		dense: make([]thread, 0, capHint),
		seen:  sparse.NewSparseSet(conv.IntToUint32(sparseCap)),
	}
}

func (l *threadList) reset() {
	l.dense = l.dense[:0]
	l.seen.Clear()
}

// VM executes a compiled Program over an input byte slice using Pike's
// algorithm: one epsilon closure per input position, at most one live
// thread per program counter, so the whole search runs in
// O(len(Insts)*len(input)) regardless of backtracking-prone constructs.
type VM struct {
	prog  *Program
	pool  *capPool
	clist *threadList
	nlist *threadList
}

// NewVM prepares a VM to run prog. A VM may be reused across many Match/
// FindSubmatchIndex calls; each call resets the thread lists and pool it
// needs but keeps their backing arrays.
func NewVM(prog *Program) *VM {
	return &VM{
		prog:  prog,
		pool:  newCapPool(prog.NumCaps, prog.CapPoolSize),
		clist: newThreadList(prog.Len, prog.Sparsesz),
		nlist: newThreadList(prog.Len, prog.Sparsesz),
	}
}

type stackItem struct {
	pc   int
	caps *capState
}

// addThread runs the epsilon closure starting at pc0/caps0, evaluating
// zero-width assertions immediately and adding every reachable
// CHAR/CLASS/ANY instruction to list. The explicit stack is walked in
// priority order, so a MATCH outranks everything still pending on the
// stack when it is reached (threads already appended to list outrank it):
// that pending lower-priority work is abandoned and its capture
// references released.
func (vm *VM) addThread(list *threadList, pc0 int, caps0 *capState, input []byte, pos int) (matchCaps *capState, matched bool) {
	stack := make([]stackItem, 1, vm.prog.Splits+1)
	stack[0] = stackItem{pc0, caps0}
	insts := vm.prog.Insts
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pc, caps := top.pc, top.caps

		pcKey := conv.IntToUint32(pc)
		if list.seen.Contains(pcKey) {
			vm.pool.release(caps)
			continue
		}
		list.seen.Insert(pcKey)

		switch Op(insts[pc]) {
		case opJMP:
			stack = append(stack, stackItem{int(insts[pc+1]), caps})

		case opSplit:
			x, y := int(insts[pc+2]), int(insts[pc+3])
			stack = append(stack, stackItem{y, vm.pool.retain(caps)}, stackItem{x, caps})

		case opRSplit:
			x, y := int(insts[pc+2]), int(insts[pc+3])
			stack = append(stack, stackItem{x, vm.pool.retain(caps)}, stackItem{y, caps})

		case opSave:
			slot := int(insts[pc+1])
			nc := vm.pool.set(caps, slot, int32(pos))
			stack = append(stack, stackItem{pc + 2, nc})

		case opBOL:
			if pos == 0 {
				stack = append(stack, stackItem{pc + 1, caps})
			} else {
				vm.pool.release(caps)
			}

		case opEOL:
			if pos == len(input) {
				stack = append(stack, stackItem{pc + 1, caps})
			} else {
				vm.pool.release(caps)
			}

		case opWBeg:
			if !vm.isWordAt(input, pos-1) && vm.isWordAt(input, pos) {
				stack = append(stack, stackItem{pc + 1, caps})
			} else {
				vm.pool.release(caps)
			}

		case opWEnd:
			if vm.isWordAt(input, pos-1) && !vm.isWordAt(input, pos) {
				stack = append(stack, stackItem{pc + 1, caps})
			} else {
				vm.pool.release(caps)
			}

		case opNotB:
			if vm.isWordAt(input, pos-1) == vm.isWordAt(input, pos) {
				stack = append(stack, stackItem{pc + 1, caps})
			} else {
				vm.pool.release(caps)
			}

		case opMatch:
			for _, it := range stack {
				vm.pool.release(it.caps)
			}
			stack = stack[:0]
			matchCaps = caps
			matched = true

		case opChar, opClass, opAny:
			list.dense = append(list.dense, thread{pc: pc, caps: caps})
		}
	}
	return matchCaps, matched
}

// isWordAt reports whether the codepoint starting at input[i] is a word
// character, per isWordRune. Out-of-range i (either side of the input)
// counts as a non-word character, so boundary checks at the very start or
// end of input behave correctly without special-casing.
func (vm *VM) isWordAt(input []byte, i int) bool {
	if i < 0 || i >= len(input) {
		return false
	}
	r, _ := decodeRune(input[i:], vm.prog.Opts.UTF8)
	return isWordRune(r)
}

// run executes the program against input, returning the capture vector of
// the highest-priority match found, or nil if there is none. Unanchored:
// a new start thread is seeded at every position until the first match is
// found, after which only already-running (and therefore higher-priority)
// threads are allowed to continue.
func (vm *VM) run(input []byte) []int32 {
	vm.clist.reset()
	vm.nlist.reset()

	var best *capState
	pos := 0
	for {
		if best == nil {
			start := vm.pool.alloc()
			// Slot 0 (the whole match's start) is set here directly
			// rather than by a SAVE instruction: the compiled program
			// never emits one for it, matching the original engine's
			// "_sp written at thread creation" convention.
			start.slots[0] = int32(pos)
			if mc, ok := vm.addThread(vm.clist, 0, start, input, pos); ok {
				vm.pool.release(best)
				best = mc
			}
		}

		if len(vm.clist.dense) == 0 && best != nil {
			break
		}
		if len(vm.clist.dense) == 0 && pos >= len(input) {
			break
		}

		var c rune
		var size int
		if pos < len(input) {
			c, size = decodeRune(input[pos:], vm.prog.Opts.UTF8)
		}

		vm.nlist.reset()
		insts := vm.prog.Insts
		for i, th := range vm.clist.dense {
			if pos >= len(input) {
				vm.pool.release(th.caps)
				continue
			}
			var ok bool
			switch Op(insts[th.pc]) {
			case opChar:
				ok = c == rune(insts[th.pc+1])
				if !ok && vm.prog.Opts.CaseInsensitive {
					ok = asciiLower(c) == asciiLower(rune(insts[th.pc+1]))
				}
			case opAny:
				ok = true
			case opClass:
				ok = classMatch(insts, th.pc, c, vm.prog.Opts.CaseInsensitive)
			}
			if !ok {
				vm.pool.release(th.caps)
				continue
			}
			next := th.pc + instrWidth(insts, th.pc)
			if mc, found := vm.addThread(vm.nlist, next, th.caps, input, pos+size); found {
				vm.pool.release(best)
				best = mc
				// A match just converged on a thread at priority i; every
				// thread after it in clist.dense is strictly lower
				// priority and must not be allowed to overwrite best.
				for _, rest := range vm.clist.dense[i+1:] {
					vm.pool.release(rest.caps)
				}
				break
			}
		}

		vm.clist, vm.nlist = vm.nlist, vm.clist
		if pos >= len(input) {
			break
		}
		pos += size
	}

	if best == nil {
		return nil
	}
	out := make([]int32, len(best.slots))
	copy(out, best.slots)
	vm.pool.release(best)
	return out
}

// Match reports whether the program matches anywhere in input.
func (vm *VM) Match(input []byte) bool {
	return vm.run(input) != nil
}

// FindSubmatchIndex returns the leftmost-priority match's capture offsets
// as [start0, end0, start1, end1, ...], group 0 first, or nil if there is
// no match. A group that did not participate carries -1 for both offsets.
func (vm *VM) FindSubmatchIndex(input []byte) []int {
	slots := vm.run(input)
	if slots == nil {
		return nil
	}
	n := vm.prog.NumCaps
	out := make([]int, 2*n)
	for k := 0; k < n; k++ {
		out[2*k] = int(slots[k])
		out[2*k+1] = int(slots[k+n])
	}
	return out
}
