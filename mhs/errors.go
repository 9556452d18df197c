// Sentinel errors for the mhs package and its dependents (graphstore,
// hsdag, rctree). Callers must branch with errors.Is, never by comparing
// error strings.
package mhs

import "errors"

// ErrInvalidState indicates a contract violation: a caller (or, in a
// correctly implemented engine, never the engine itself) attempted to
// assign a label to a node that has already been ticked. A ticked node
// has no outgoing labeling left to assign; relabeling it would violate
// invariant 1 (ticked => label = None).
var ErrInvalidState = errors.New("mhs: invalid state: node already ticked, cannot relabel")
