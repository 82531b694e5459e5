// Package value converts dynamically-typed composite values to and from
// owned tagged node trees.
//
// Import deep-copies a JSON-like value (numbers, strings, ordered
// sequences, string-keyed mappings) into a Node tree that holds no
// reference back to the input. Export materializes a brand-new value from
// such a tree. The variant set is closed: Undefined, String, Number,
// Int32, Uint32, Array and Object.
package value
