// Package diag carries the structured diagnostics produced while lexing,
// parsing, building and storing GBLN values.
//
// Every fallible operation in this module returns an error whose concrete
// type is [*Diagnostic]. The error kind can be tested with [errors.Is]
// against the [Kind] constants:
//
//	v, err := parse.ParseString(`{"a":1,"a":2}`)
//	if errors.Is(err, diag.DuplicateKey) {
//	    ...
//	}
//
// There is no process-wide "last error". Callers that need a retained
// last-error channel (for example a host binding) own a [Slot].
package diag
