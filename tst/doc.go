// Package tst implements an in-memory string index on top of a ternary search tree
// with single-marker wildcard lookups.
//
// Every node holds one byte of a key and three links:
//
//   - lo - keys having a smaller byte at the same position;
//   - eq - the next byte of keys having this byte at this position;
//   - hi - keys having a greater byte at the same position.
//
// Nodes live in a NodePool arena and link to each other by index.
//
// Pattern syntax:
// --------------
//
// A pattern is a non-empty string with at most one wildcard marker ('*' by default):
//
//   - "google.com"  - exact lookup, returns the key itself or nothing;
//   - "google.*"    - a trailing marker matches any suffix, including the empty one;
//   - "g*ogle.com"  - a marker in the middle matches exactly one byte.
//
// Example tree:
// ------------
//
// Keys "cat", "car" and "dog" inserted in that order:
//
//	[c] -------------------- hi -- [d]
//	 |                              |
//	 eq                             eq
//	 |                              |
//	[a]                            [o]
//	 |                              |
//	 eq                             eq
//	 |                              |
//	[t]* -- lo -- [r]*             [g]*
//
// Nodes marked with * terminate a key.
//
// An Index is not safe for concurrent mutation. Concurrent lookups on an index that
// is not being modified are fine.
package tst
