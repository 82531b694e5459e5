package store_test

import (
	"fmt"

	"github.com/jonwraymond/bypass/store"
)

func Example() {
	s := store.New()

	s.Set(5, map[string]any{
		"a": []any{1, 2, 3},
		"b": "hi",
	})

	doc, ok := s.Get(5)
	if !ok {
		fmt.Println("missing")
		return
	}
	m := doc.(map[string]any)
	fmt.Println(m["b"])

	s.Del(5)
	_, ok = s.Get(5)
	fmt.Println(ok)

	// Output:
	// hi
	// false
}

func ExampleStore_List() {
	s := store.New()
	s.Set(10, "x")
	s.Set(-2, "y")
	s.Set(4, "z")
	s.Del(4)

	fmt.Println(s.List())
	// Output:
	// [-2 10]
}

func ExampleCoerceKey() {
	s := store.New()

	// Keys coerce with truncation toward zero, so 2.7 and 2 collide.
	s.Set(store.CoerceKey(2.7), "first")
	s.Set(store.CoerceKey(2), "second")

	v, _ := s.Get(2)
	fmt.Println(v)
	// Output:
	// second
}
