package evaluator

import "math"

func expectReal(v Value, message string) (float64, error) {
	if n, ok := v.(*Number); ok && n.IsReal() {
		return n.Real(), nil
	}
	return 0, newError(TypeMismatch, "%s", message)
}

func expectComplex(v Value, message string) (complex128, error) {
	if n, ok := v.(*Number); ok {
		return n.Value, nil
	}
	return 0, newError(TypeMismatch, "%s", message)
}

func expectVector(v Value, message string) (*Vector, error) {
	if vec, ok := v.(*Vector); ok {
		return vec, nil
	}
	return nil, newError(TypeMismatch, "%s", message)
}

func expectArray(v Value, message string) (*Array, error) {
	if arr, ok := v.(*Array); ok {
		return arr, nil
	}
	return nil, newError(TypeMismatch, "%s", message)
}

// validIndex reports whether f is an integer in [0, length).
func validIndex(f float64, length int) bool {
	return f == math.Trunc(f) && f >= 0 && f < float64(length)
}
