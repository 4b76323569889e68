package nativemem

import (
	"reflect"
)

// isBlittable reports whether values of t may be stored outside of the Go
// heap, i.e. whether t contains no pointers the GC would need to see.
func isBlittable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isBlittable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isBlittable(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}
