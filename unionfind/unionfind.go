// Package unionfind implements a disjoint-set data structure with union
// by rank and path compression.
package unionfind

import (
	"bytes"
	"fmt"
	"sort"
)

type node struct {
	// Upper bound on the height of the subtree rooted here, meaningful
	// when the element is a root.
	rank int
	// Identifier of the parent element. Equals the element itself for
	// set representatives.
	parent int64
}

// DisjointSet maintains a partition of arbitrary int64 identifiers.
// Elements must be registered with Add before Find or Union sees them.
// The zero value is not usable, call New.
type DisjointSet struct {
	nodes map[int64]node
}

// New returns an empty disjoint-set.
func New() *DisjointSet {
	return &DisjointSet{
		nodes: make(map[int64]node),
	}
}

// Add inserts e as a singleton set with rank 0 and itself as parent.
// Adding an element already present resets it to a fresh singleton root
// and leaves former children attached to it.
func (d *DisjointSet) Add(e int64) {
	d.nodes[e] = node{parent: e}
}

// Contains returns true if e has been added.
func (d *DisjointSet) Contains(e int64) bool {
	_, ok := d.nodes[e]
	return ok
}

// Find returns the representative of the set containing e and reparents
// every element on the walked path directly under it, so later lookups
// are near constant time. Panics if e was never added.
func (d *DisjointSet) Find(e int64) int64 {
	n, ok := d.nodes[e]
	if !ok {
		panic(fmt.Sprintf("unknown element: %d", e))
	}
	if n.parent == e {
		return e
	}
	root := d.Find(n.parent)
	if root != n.parent {
		n.parent = root
		d.nodes[e] = n
	}
	return root
}

// Union merges the sets containing x and y, attaching the lower ranked
// root under the higher ranked one. Merging two roots of equal rank
// keeps x's root and bumps its rank. Does nothing when x and y are
// already in the same set. Panics if either element was never added.
func (d *DisjointSet) Union(x, y int64) {
	rx := d.Find(x)
	ry := d.Find(y)
	if rx == ry {
		return
	}
	nx := d.nodes[rx]
	ny := d.nodes[ry]
	if nx.rank > ny.rank {
		ny.parent = rx
		d.nodes[ry] = ny
	} else if nx.rank < ny.rank {
		nx.parent = ry
		d.nodes[rx] = nx
	} else {
		ny.parent = rx
		d.nodes[ry] = ny
		nx.rank++
		d.nodes[rx] = nx
	}
}

// Connected returns true if x and y are in the same set. Panics if
// either element was never added.
func (d *DisjointSet) Connected(x, y int64) bool {
	return d.Find(x) == d.Find(y)
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int {
	return len(d.nodes)
}

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int {
	count := 0
	for e, n := range d.nodes {
		if n.parent == e {
			count++
		}
	}
	return count
}

// Record is the inspection view of a single element entry.
type Record struct {
	Element int64
	Rank    int
	Parent  int64
}

// Records returns a snapshot of all entries sorted by element. It does
// not compress paths.
func (d *DisjointSet) Records() []Record {
	records := make([]Record, 0, len(d.nodes))
	for e, n := range d.nodes {
		records = append(records, Record{
			Element: e,
			Rank:    n.rank,
			Parent:  n.parent,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Element < records[j].Element
	})
	return records
}

// Walks to the root without mutating the structure.
func (d *DisjointSet) root(e int64) int64 {
	for d.nodes[e].parent != e {
		e = d.nodes[e].parent
	}
	return e
}

// Sets returns the partition as equivalence classes. Elements in each
// class are sorted and classes are ordered by their smallest element.
// It does not compress paths.
func (d *DisjointSet) Sets() [][]int64 {
	classes := make(map[int64][]int64)
	for e := range d.nodes {
		r := d.root(e)
		classes[r] = append(classes[r], e)
	}
	sets := make([][]int64, 0, len(classes))
	for _, set := range classes {
		sort.Slice(set, func(i, j int) bool {
			return set[i] < set[j]
		})
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool {
		return sets[i][0] < sets[j][0]
	})
	return sets
}

// String renders the partition, one bracket group per set.
func (d *DisjointSet) String() string {
	buf := &bytes.Buffer{}
	for i, set := range d.Sets() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%d", set)
	}
	return buf.String()
}
