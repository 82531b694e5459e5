package value

// Export materializes a brand-new value from the tree rooted at n. Every
// call builds fresh values; nothing is shared with the tree or with
// earlier exports. A nil root exports as nil.
func Export(n Node) any {
	if n == nil {
		return nil
	}
	return n.Export()
}

// Count returns the total number of nodes in the tree rooted at n,
// including n itself.
func Count(n Node) int {
	switch x := n.(type) {
	case Array:
		c := 1
		for i := 0; i < len(x.elems); i++ {
			c += Count(x.elems[i])
		}
		return c
	case Object:
		c := 1
		for _, m := range x.members {
			c += Count(m)
		}
		return c
	case nil:
		return 0
	default:
		return 1
	}
}
