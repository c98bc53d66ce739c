// Package pike compiles regular expressions to a linear bytecode program
// and executes that program with a Pike VM: a Thompson NFA simulation that
// advances every live thread in lockstep, one input codepoint at a time,
// giving O(n·m) worst-case matching with full leftmost submatch capture.
//
// Compile builds a Program in a single pass over the pattern, then NewVM
// prepares a reusable execution frame for it:
//
//	prog, err := pike.Compile(pattern, pike.DefaultOptions())
//	vm := pike.NewVM(prog)
//	ok := vm.Match([]byte("hello 123"))
package pike
