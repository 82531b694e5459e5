package store

import "math"

// CoerceKey converts an integer-like value to the store's int64 key type,
// using truncate-toward-zero semantics for floating input. Non-finite
// values coerce to zero, as does anything that is not numeric. Intended
// for call boundaries that receive dynamically-typed keys; note that it
// makes 2.7 and 2 collide.
func CoerceKey(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return coerceFloat(float64(x))
	case float64:
		return coerceFloat(x)
	default:
		return 0
	}
}

func coerceFloat(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	// Clamp rather than rely on the undefined out-of-range conversion.
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	if f <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(f)
}
