package mhsio

import "errors"

// ErrMalformedLine is returned when a conflict-list line cannot be parsed
// into a caster-compatible element after cleaning.
var ErrMalformedLine = errors.New("mhsio: malformed conflict line")

// ErrEmptyElement is returned when two element separators inside one set
// enclose no token (e.g. "1,,2"), unless the Parser is lenient. A segment
// between set separators that holds no elements at all is dropped, not
// reported.
var ErrEmptyElement = errors.New("mhsio: empty element in conflict set")
