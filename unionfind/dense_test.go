package unionfind

import (
	"math/rand"
	"testing"
)

func TestDense(t *testing.T) {
	u := NewDense(5)

	checkId := func(i, j int) {
		n := u.Find(i)
		if n != j {
			t.Fatalf("unexpected id: %d: %d != %d", i, n, j)
		}
	}

	for i := 0; i < 4; i++ {
		checkId(i, i)
	}

	u.Union(1, 3)
	checkId(0, 0)
	checkId(1, 1)
	checkId(2, 2)
	checkId(3, 1)
	checkId(4, 4)

	u.Union(0, 2)
	checkId(0, 0)
	checkId(1, 1)
	checkId(2, 0)
	checkId(3, 1)
	checkId(4, 4)

	u.Union(2, 1)
	checkId(0, 0)
	checkId(1, 0)
	checkId(2, 0)
	checkId(3, 0)
	checkId(4, 4)

	u.Union(2, 4)
	checkId(0, 0)
	checkId(1, 0)
	checkId(2, 0)
	checkId(3, 0)
	checkId(4, 0)
}

func TestDenseCompression(t *testing.T) {
	u := NewDense(8)
	u.Union(0, 1)
	u.Union(2, 3)
	// Equal ranks: 2 ends up under 0, leaving 3 two hops away.
	u.Union(0, 2)

	if r := u.Find(3); r != 0 {
		t.Fatalf("unexpected root: %d", r)
	}
	if p := u.nodes[3].parent; p != 0 {
		t.Fatalf("path was not compressed: parent %d", p)
	}
	if u.nodes[0].rank != 2 {
		t.Fatalf("unexpected root rank: %d", u.nodes[0].rank)
	}
}

func TestDenseConnectedCount(t *testing.T) {
	u := NewDense(6)
	if u.Count() != 6 {
		t.Fatalf("unexpected set count: %d", u.Count())
	}

	u.Union(0, 1)
	u.Union(4, 5)
	if !u.Connected(0, 1) || !u.Connected(4, 5) {
		t.Fatal("unions did not connect")
	}
	if u.Connected(1, 5) {
		t.Fatal("unexpected connection")
	}
	if u.Len() != 6 {
		t.Fatalf("unexpected length: %d", u.Len())
	}
	if u.Count() != 4 {
		t.Fatalf("unexpected set count: %d", u.Count())
	}

	// Union on an already merged pair changes nothing.
	u.Union(0, 1)
	if u.Count() != 4 {
		t.Fatalf("unexpected set count: %d", u.Count())
	}
}

func BenchmarkDenseUnion(b *testing.B) {
	const size = 1 << 16
	u := NewDense(size)
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.Union(rng.Intn(size), rng.Intn(size))
	}
}

func BenchmarkDenseFind(b *testing.B) {
	const size = 1 << 16
	u := NewDense(size)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < size; i++ {
		u.Union(rng.Intn(size), rng.Intn(size))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u.Find(i % size)
	}
}
