package pike

// Op identifies the opcode stored in the first slot of an instruction.
// Consuming opcodes are numbered below opWBeg and zero-width/control
// opcodes from opWBeg up; the VM dispatches on each opcode by name, and
// split identities live in their own slot (see finalize in compile.go),
// so neither depends on the numeric values.
type Op int32

const (
	opChar Op = 1 + iota
	opClass
	opMatch
	opAny

	opWBeg
	opWEnd
	opNotB
	opBOL
	opEOL

	opSave

	opJMP
	opSplit
	opRSplit
)

// String names an opcode for debugging and panic messages.
func (o Op) String() string {
	switch o {
	case opChar:
		return "CHAR"
	case opClass:
		return "CLASS"
	case opMatch:
		return "MATCH"
	case opAny:
		return "ANY"
	case opWBeg:
		return "WBEG"
	case opWEnd:
		return "WEND"
	case opNotB:
		return "NOTB"
	case opBOL:
		return "BOL"
	case opEOL:
		return "EOL"
	case opSave:
		return "SAVE"
	case opJMP:
		return "JMP"
	case opSplit:
		return "SPLIT"
	case opRSplit:
		return "RSPLIT"
	default:
		return "ILLEGAL"
	}
}

// classShorthandLo is the lo value of a (-1, letter) pair inside a CLASS
// instruction, marking the pair as a \d \D \s \S \w \W shorthand named by
// letter rather than a codepoint range.
const classShorthandLo = -1
