// Package index provides an ordered stack of (key, value) entries.
//
// A [Stack] keeps every recorded entry, duplicates included, and answers
// point and interval queries over the keys:
//
//   - ascending mode keeps entries sorted by key; a new entry is placed to
//     the left of any existing entries with an equal key, so lookups by
//     key return the most recently recorded of the tied entries
//   - unordered mode keeps entries in recording order
//
// Two storage backends are available for ascending mode: a sorted slice
// searched by bisection (the default) and a B-tree. Both satisfy the
// same ordering and tie-break rules.
//
// # Slicing
//
// Ascending slices are half-open, [start, stop), and honour a stride.
// Unordered slices keep entries strictly between the two bounds and
// accept the bounds in either order. The two rules differ on purpose:
// existing callers depend on both.
//
// # Thread Safety
//
// Stack instances are NOT thread-safe. Callers that record and read from
// several goroutines must serialize access themselves.
package index
