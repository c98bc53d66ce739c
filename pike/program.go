package pike

// Program is the immutable result of compiling a pattern: the instruction
// array plus the counts the Pike VM needs to size its own execution frame.
// It carries spec.md §3's "Program record" fields, renamed onto Go-slice
// terms instead of raw byte sizes where the two differ only in units (see
// DESIGN.md).
type Program struct {
	// Insts holds the compiled instruction words, opcode followed inline
	// by its operands, SAVE/MATCH-terminated.
	Insts []int32

	// Unilen is the number of slots in Insts actually used.
	Unilen int

	// Len is the count of logical instructions (opcodes), excluding the
	// extra slots split identities don't add but operands do; i.e. every
	// opcode in Insts counts once regardless of its operand width.
	Len int

	// NumCaps is nsub+1: group 0 (the whole match) plus every explicit
	// capturing group. The capture vector has 2*NumCaps entries.
	NumCaps int

	// Splits is the number of SPLIT/RSPLIT instructions, each carrying a
	// unique identity in [1, Splits] assigned by finalize. The VM uses
	// this bound to size the explicit stack addThread walks the epsilon
	// closure with.
	Splits int

	// Sparsesz is the capacity the Pike VM must allocate for its
	// per-step visited-pc sparse set: one slot per instruction word, so
	// every pc value in Insts is a valid key.
	Sparsesz int

	// CapPoolSize is the number of capture-state records the Pike VM
	// should preallocate for this program: an upper bound on the number
	// of simultaneously live threads, matching spec.md §3 invariant (iii)
	// scaled from bytes to records (one record per unit of "presub").
	CapPoolSize int

	// Source is the original pattern text, kept for error messages and
	// the convenience wrapper's String().
	Source string

	// Opts is the flag set the program was compiled with.
	Opts Options
}

// capRecordSlots is 2*NumCaps: the number of int entries in one capture
// state's slot array (NumCaps starts, NumCaps ends).
func (p *Program) capRecordSlots() int {
	return 2 * p.NumCaps
}
