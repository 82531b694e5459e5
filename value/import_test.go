package value

import (
	"math"
	"testing"
)

func TestImport_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Type
	}{
		{"nil", nil, UndefinedType},
		{"bool", true, UndefinedType},
		{"chan", make(chan int), UndefinedType},
		{"struct", struct{ X int }{1}, UndefinedType},
		{"string", "hi", StringType},
		{"empty string", "", StringType},
		{"int", 7, Int32Type},
		{"float", 2.5, NumberType},
		{"array", []any{1, 2}, ArrayType},
		{"object", map[string]any{"a": 1}, ObjectType},
		{"typed slice", []int{1, 2}, UndefinedType},
		{"typed map", map[string]int{"a": 1}, UndefinedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Import(tt.in)
			if got.Type() != tt.want {
				t.Errorf("Import(%v) type = %v, want %v", tt.in, got.Type(), tt.want)
			}
		})
	}
}

func TestImport_NumericClassification(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Type
	}{
		{"small int", 42, Int32Type},
		{"negative int", -42, Int32Type},
		{"int32 max", int64(math.MaxInt32), Int32Type},
		{"int32 min", int64(math.MinInt32), Int32Type},
		{"above int32", int64(math.MaxInt32) + 1, NumberType},
		{"below int32", int64(math.MinInt32) - 1, NumberType},
		{"uint above int32", uint64(math.MaxInt32) + 1, NumberType},
		{"whole float", 3.0, Int32Type},
		{"fractional float", 3.5, NumberType},
		{"whole float above int32", float64(math.MaxInt32) + 1, NumberType},
		{"negative zero", math.Copysign(0, -1), NumberType},
		{"NaN", math.NaN(), NumberType},
		{"positive infinity", math.Inf(1), NumberType},
		{"negative infinity", math.Inf(-1), NumberType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Import(tt.in)
			if got.Type() != tt.want {
				t.Errorf("Import(%v) type = %v, want %v", tt.in, got.Type(), tt.want)
			}
		})
	}
}

func TestImport_Int32Value(t *testing.T) {
	n, ok := Import(7).(Int32)
	if !ok {
		t.Fatalf("Import(7) = %T, want Int32", Import(7))
	}
	if int32(n) != 7 {
		t.Errorf("Int32 value = %d, want 7", int32(n))
	}
}

func TestImport_StringOwnsBytes(t *testing.T) {
	s := Import("hello").(String)
	if s.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", s.Text(), "hello")
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
}

func TestImport_NonASCIIKeysPreserved(t *testing.T) {
	obj := Import(map[string]any{"ключ": "v"}).(Object)
	if _, ok := obj.Member("ключ"); !ok {
		t.Errorf("non-ASCII key not preserved; keys = %v", obj.Keys())
	}
}

func TestImport_ArrayOrderAndHoles(t *testing.T) {
	arr := Import([]any{1, nil, "x"}).(Array)
	if arr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", arr.Len())
	}
	if arr.Index(0).Type() != Int32Type {
		t.Errorf("elem 0 type = %v, want Int32", arr.Index(0).Type())
	}
	if arr.Index(1).Type() != UndefinedType {
		t.Errorf("hole type = %v, want Undefined", arr.Index(1).Type())
	}
	if arr.Index(2).Type() != StringType {
		t.Errorf("elem 2 type = %v, want String", arr.Index(2).Type())
	}
}

func TestImport_IsolatedFromInput(t *testing.T) {
	in := map[string]any{
		"a": []any{1, 2, 3},
		"b": "hi",
	}
	n := Import(in)

	// Mutate the original after import.
	in["a"].([]any)[0] = 99
	in["b"] = "changed"
	delete(in, "a")

	obj := n.(Object)
	a, ok := obj.Member("a")
	if !ok {
		t.Fatal("member a lost after input mutation")
	}
	if got := a.(Array).Index(0).(Int32); int32(got) != 1 {
		t.Errorf("a[0] = %d, want 1", int32(got))
	}
	b, _ := obj.Member("b")
	if b.(String).Text() != "hi" {
		t.Errorf("b = %q, want %q", b.(String).Text(), "hi")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"leaf", 1, 1},
		{"empty array", []any{}, 1},
		{"flat array", []any{1, 2, 3}, 4},
		{"nested", map[string]any{"a": []any{1, 2}, "b": "x"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(Import(tt.in)); got != tt.want {
				t.Errorf("Count = %d, want %d", got, tt.want)
			}
		})
	}
}
