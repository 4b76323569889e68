// pointer.go extracts the C pointers wrapped by go-astiav objects.

package avnative

import (
	"reflect"

	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avnative/pointer"
	"github.com/xaionaro-go/unsafetools"
)

// every wrapper in go-astiav keeps the C pointer in this field
const cPointerFieldName = "c"

// cPointerField returns a pointer to the field of obj holding the C pointer.
func cPointerField(obj any) (reflect.Value, bool) {
	v := reflect.ValueOf(obj)
	if !v.IsValid() || v.IsNil() {
		return reflect.Value{}, false
	}
	return unsafetools.FieldByNameInValue(v, cPointerFieldName), true
}

func fixedOf[T any](obj any) pointer.Fixed[T] {
	field, ok := cPointerField(obj)
	if !ok {
		return pointer.Null[T]()
	}
	return pointer.FixedFromAddress[T](field.Elem().Pointer())
}

// movableOf points at the Go field itself, so anything that replaces or
// clears the C pointer (e.g. Free) is visible through the slot.
func movableOf[T any](obj any) pointer.Movable[T] {
	field, ok := cPointerField(obj)
	if !ok {
		return pointer.Movable[T]{}
	}
	return pointer.MovableFromAddress[T](field.Pointer())
}

func FramePointer(f *astiav.Frame) pointer.Fixed[Frame] {
	return fixedOf[Frame](f)
}

// FrameSlot is the AVFrame** of f. The slot lives inside f: keep f
// reachable while using it.
func FrameSlot(f *astiav.Frame) pointer.Movable[Frame] {
	return movableOf[Frame](f)
}

func PacketPointer(p *astiav.Packet) pointer.Fixed[Packet] {
	return fixedOf[Packet](p)
}

func PacketSlot(p *astiav.Packet) pointer.Movable[Packet] {
	return movableOf[Packet](p)
}

func CodecParametersPointer(cp *astiav.CodecParameters) pointer.Fixed[CodecParameters] {
	return fixedOf[CodecParameters](cp)
}

func CodecParametersSlot(cp *astiav.CodecParameters) pointer.Movable[CodecParameters] {
	return movableOf[CodecParameters](cp)
}

func CodecContextPointer(cc *astiav.CodecContext) pointer.Fixed[CodecContext] {
	return fixedOf[CodecContext](cc)
}

func FormatContextPointer(fc *astiav.FormatContext) pointer.Fixed[FormatContext] {
	return fixedOf[FormatContext](fc)
}

func FormatContextSlot(fc *astiav.FormatContext) pointer.Movable[FormatContext] {
	return movableOf[FormatContext](fc)
}
