package helper

import "reflect"

func isNilFunc(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && rv.IsNil()
}

// IsComparable reports whether v can be used as a map key without panicking.
// Interface-typed fields and elements are judged by the values they hold.
func IsComparable(v any) bool {
	return reflect.ValueOf(v).Comparable()
}
