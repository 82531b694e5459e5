// Package store provides a keyed in-process cache of deep-copied composite
// values.
//
// A Store owns one value tree per int64 key. Set imports the caller's
// value into an independent tree, Get exports a brand-new value from the
// stored tree, Del removes an entry, and List enumerates present keys in
// ascending order. The core Store is single-threaded; Guarded adds the
// per-store exclusive-lock discipline for shared use, and Observed adds
// per-operation telemetry.
package store
