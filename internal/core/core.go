package core

// IfElse returns `whenTrue` if `b` is true, and `whenFalse` otherwise.
func IfElse[T any](b bool, whenTrue T, whenFalse T) T {
	if b {
		return whenTrue
	}
	return whenFalse
}

func AppendIfUnique[T comparable](slice []T, element T) []T {
	for _, existing := range slice {
		if existing == element {
			return slice
		}
	}
	return append(slice, element)
}

func Map[T, U any](slice []T, f func(T) U) []U {
	if slice == nil {
		return nil
	}
	result := make([]U, len(slice))
	for i, value := range slice {
		result[i] = f(value)
	}
	return result
}

func Filter[T any](slice []T, f func(T) bool) []T {
	for i, value := range slice {
		if !f(value) {
			result := slice[:i:i]
			for _, value := range slice[i+1:] {
				if f(value) {
					result = append(result, value)
				}
			}
			return result
		}
	}
	return slice
}
