package unionfind

type denseNode struct {
	parent int
	rank   int
}

// Dense is a disjoint-set over the fixed universe 0..n-1, backed by a
// flat array instead of a map. It trades the flexibility of arbitrary
// identifiers for speed when the element universe is known up front.
// Indices outside [0, Len()) make operations panic on the bounds check.
type Dense struct {
	nodes []denseNode
}

// NewDense returns a disjoint-set of count elements, each in its own
// singleton set.
func NewDense(count int) *Dense {
	u := &Dense{
		nodes: make([]denseNode, count),
	}
	for i := range u.nodes {
		u.nodes[i].parent = i
	}
	return u
}

// Find returns the representative of the set containing i. The walk is
// done in two passes to keep the stack flat on large inputs: the first
// locates the root, the second reparents every visited node under it.
func (u *Dense) Find(i int) int {
	root := i
	for u.nodes[root].parent != root {
		root = u.nodes[root].parent
	}
	for i != root {
		i, u.nodes[i].parent = u.nodes[i].parent, root
	}
	return root
}

// Union merges the sets containing x and y, attaching the lower ranked
// root under the higher ranked one. Equal ranks keep x's root and bump
// its rank.
func (u *Dense) Union(x, y int) {
	rx := u.Find(x)
	ry := u.Find(y)
	if rx == ry {
		return
	}
	if u.nodes[rx].rank > u.nodes[ry].rank {
		u.nodes[ry].parent = rx
	} else if u.nodes[rx].rank < u.nodes[ry].rank {
		u.nodes[rx].parent = ry
	} else {
		u.nodes[ry].parent = rx
		u.nodes[rx].rank++
	}
}

// Connected returns true if x and y are in the same set.
func (u *Dense) Connected(x, y int) bool {
	return u.Find(x) == u.Find(y)
}

// Len returns the universe size.
func (u *Dense) Len() int {
	return len(u.nodes)
}

// Count returns the number of disjoint sets.
func (u *Dense) Count() int {
	count := 0
	for i := range u.nodes {
		if u.nodes[i].parent == i {
			count++
		}
	}
	return count
}
