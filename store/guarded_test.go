package store

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestGuarded_Passthrough(t *testing.T) {
	g := NewGuarded(New())

	g.Set(1, map[string]any{"a": 1})
	got, ok := g.Get(1)
	if !ok {
		t.Fatal("Get(1) missed")
	}
	if !valueEqual(got, map[string]any{"a": 1}) {
		t.Errorf("Get(1) = %#v", got)
	}

	g.Set(2, "x")
	if g.Len() != 2 {
		t.Errorf("Len = %d, want 2", g.Len())
	}
	if keys := g.List(); len(keys) != 2 || keys[0] != 1 || keys[1] != 2 {
		t.Errorf("List = %v, want [1 2]", keys)
	}

	g.Del(1)
	if _, ok := g.Get(1); ok {
		t.Error("Get after Del should miss")
	}

	if st := g.Stats(); st.Entries != 1 {
		t.Errorf("Stats.Entries = %d, want 1", st.Entries)
	}

	g.Clear()
	if g.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", g.Len())
	}
}

func TestGuarded_ConcurrentAccess(t *testing.T) {
	const (
		writers = 8
		perG    = 500
	)
	g := NewGuarded(New())

	var eg errgroup.Group
	for w := 0; w < writers; w++ {
		eg.Go(func() error {
			base := int64(w * perG)
			for i := int64(0); i < perG; i++ {
				g.Set(base+i, map[string]any{"owner": w, "seq": i})
			}
			return nil
		})
		eg.Go(func() error {
			base := int64(w * perG)
			for i := int64(0); i < perG; i++ {
				g.Get(base + i)
				g.List()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}

	if g.Len() != writers*perG {
		t.Fatalf("Len = %d, want %d", g.Len(), writers*perG)
	}
	for w := 0; w < writers; w++ {
		base := int64(w * perG)
		got, ok := g.Get(base)
		if !ok {
			t.Fatalf("Get(%d) missed", base)
		}
		if !valueEqual(got.(map[string]any)["owner"], w) {
			t.Fatalf("Get(%d) owner = %v, want %d", base, got, w)
		}
	}
}
