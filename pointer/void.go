package pointer

import (
	"reflect"
)

// Void is the pointee type of untyped handles (Fixed[Void] is "void *").
type Void struct{}

var voidType = reflect.TypeFor[Void]()

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t == voidType {
		return "void"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
