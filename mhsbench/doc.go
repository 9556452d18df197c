// Package mhsbench runs both hsdag and rctree over the same conflict list
// and flags, then reports elapsed time, constructed/live node counts, and
// whether the two engines agree on the solution set — the side-by-side
// comparison a caller runs to decide which construction strategy fits a
// given conflict list's shape.
package mhsbench
