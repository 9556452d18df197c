// Package mhsio reads and generates conflict lists: the plain-text format
// engines are fed from, and synthetic fixtures for exercising them.
//
// The text format is line-oriented: each line holds `|`-separated sets of
// `,`-separated elements, brackets `{}[]()` are stripped before splitting
// (so `{1,2}|{3,4}` and `1,2|3,4` parse identically), `#` starts a
// line comment, and all whitespace is insignificant. Blank lines and empty
// sets are silently dropped, matching the behavior a human hand-editing a
// fixture file expects.
package mhsio
