package value

import "math"

// Import deep-copies v into a freshly built Node tree. The tree holds no
// reference to v: mutating or discarding v afterwards has no effect on it.
//
// Dispatch precedence is numeric, string, array, object; anything else
// (including nil and bool) becomes Undefined. Numeric inputs that are
// exact integers within signed 32-bit range become Int32, all others
// Number. Import has no error path; allocation failure aborts the process.
func Import(v any) Node {
	switch x := v.(type) {
	case float64:
		return importFloat(x)
	case float32:
		return importFloat(float64(x))
	case int:
		return importInt(int64(x))
	case int8:
		return importInt(int64(x))
	case int16:
		return importInt(int64(x))
	case int32:
		return Int32(x)
	case int64:
		return importInt(x)
	case uint:
		return importUint(uint64(x))
	case uint8:
		return Int32(x)
	case uint16:
		return Int32(x)
	case uint32:
		return importUint(uint64(x))
	case uint64:
		return importUint(x)
	case string:
		return NewString(x)
	case []any:
		elems := make([]Node, len(x))
		for i, e := range x {
			elems[i] = Import(e)
		}
		return Array{elems: elems}
	case map[string]any:
		members := make(map[string]Node, len(x))
		for k, e := range x {
			members[k] = Import(e)
		}
		return Object{members: members}
	default:
		return Undefined{}
	}
}

func importInt(i int64) Node {
	if i >= math.MinInt32 && i <= math.MaxInt32 {
		return Int32(i)
	}
	// Outside signed 32-bit range the value degrades to a double,
	// with the usual precision limits above 2^53.
	return Number(float64(i))
}

func importUint(u uint64) Node {
	if u <= math.MaxInt32 {
		return Int32(u)
	}
	return Number(float64(u))
}

func importFloat(f float64) Node {
	// Negative zero stays a double; NaN and the infinities fail the
	// range comparisons and stay doubles too.
	if f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 &&
		!(f == 0 && math.Signbit(f)) {
		return Int32(int32(f))
	}
	return Number(f)
}
