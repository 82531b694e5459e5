package store

import "testing"

func benchDoc() map[string]any {
	return map[string]any{
		"id":    42,
		"name":  "benchmark entry",
		"score": 99.5,
		"tags":  []any{"a", "b", "c"},
		"nested": map[string]any{
			"list": []any{1, 2, 3, 4, 5},
			"deep": map[string]any{"leaf": "value"},
		},
	}
}

func BenchmarkStore_Set(b *testing.B) {
	s := New()
	doc := benchDoc()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Set(int64(i), doc)
	}
}

func BenchmarkStore_SetOverwrite(b *testing.B) {
	s := New()
	doc := benchDoc()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Set(1, doc)
	}
}

func BenchmarkStore_Get(b *testing.B) {
	s := New()
	s.Set(1, benchDoc())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := s.Get(1); !ok {
			b.Fatal("unexpected miss")
		}
	}
}

func BenchmarkStore_GetMiss(b *testing.B) {
	s := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Get(1)
	}
}

func BenchmarkStore_List(b *testing.B) {
	s := New()
	for i := int64(0); i < 1000; i++ {
		s.Set(i, "v")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.List()
	}
}

func BenchmarkGuarded_Get(b *testing.B) {
	g := NewGuarded(New())
	g.Set(1, benchDoc())

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g.Get(1)
		}
	})
}
