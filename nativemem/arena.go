// arena.go implements Arena, a small allocator of native (non-GC) memory.

// Package nativemem provides an arena of native memory for values and
// pointer slots that must not live in the Go heap: on unix the backing store
// is an anonymous mmap region, so addresses handed out are stable and
// invisible to the GC, the same as memory owned by a C library.
package nativemem

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"unsafe"

	"github.com/asticode/go-astikit"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/xaionaro-go/avnative/logger"
	"github.com/xaionaro-go/avnative/pointer"
	"github.com/xaionaro-go/avnative/result"
	"github.com/xaionaro-go/avnative/types"
	"github.com/xaionaro-go/xsync"
)

const (
	cellSize = 8
)

// Arena hands out 8-byte aligned blocks of native memory. Bookkeeping is
// thread-safe; accesses to the memory itself are not synchronized.
type Arena struct {
	Counters Counters

	locker   xsync.Mutex
	name     string
	memory   []byte
	base     uintptr
	used     []bool
	lengths  map[int]int
	closer   *astikit.Closer
	isClosed bool
}

var _ types.Closer = (*Arena)(nil)

func NewArena(
	ctx context.Context,
	opts ...Option,
) (_ret result.Result[*Arena]) {
	cfg := Options(opts).config()
	logger.Debugf(ctx, "NewArena(%#+v)", cfg)
	defer func() { logger.Debugf(ctx, "/NewArena(%#+v): %s", cfg, _ret) }()

	if cfg.Cells == 0 {
		return result.Fail[*Arena](ErrInvalidConfig{Reason: "the arena must have at least one cell"})
	}

	size := roundUp(int(cfg.Cells)*cellSize, os.Getpagesize())
	memory, unmap, err := mapMemory(size)
	if err != nil {
		return result.Fail[*Arena](fmt.Errorf("unable to allocate the backing memory: %w", err))
	}

	a := &Arena{
		name:    cfg.Name,
		memory:  memory,
		base:    uintptr(unsafe.Pointer(&memory[0])),
		used:    make([]bool, cfg.Cells),
		lengths: map[int]int{},
		closer:  astikit.NewCloser(),
	}
	a.closer.Add(func() {
		if err := unmap(); err != nil {
			logger.Errorf(ctx, "unable to release the memory of arena %q: %v", a.name, err)
		}
	})
	return result.Ok(a)
}

func roundUp(v, multiple int) int {
	return (v + multiple - 1) / multiple * multiple
}

// Alloc reserves zeroed memory for a T. T must be blittable: it may not
// contain Go pointers, strings, slices, maps, channels, funcs or interfaces.
func Alloc[T any](
	ctx context.Context,
	a *Arena,
) result.Result[pointer.Fixed[T]] {
	t := reflect.TypeFor[T]()
	if !isBlittable(t) {
		a.Counters.Failed.Increment(t.Size())
		return result.Fail[pointer.Fixed[T]](ErrNotBlittable{TypeName: t.String()})
	}
	return result.AndThen(a.alloc(ctx, t.Size()), pointer.FixedFromAddress[T])
}

// AllocWord reserves a zeroed machine word.
func (a *Arena) AllocWord(
	ctx context.Context,
) result.Result[pointer.Fixed[uintptr]] {
	return Alloc[uintptr](ctx, a)
}

// NewSlot reserves a pointer slot initialized with target.
func NewSlot[T any](
	ctx context.Context,
	a *Arena,
	target pointer.Fixed[T],
) result.Result[pointer.Movable[T]] {
	return result.AndThen(a.alloc(ctx, cellSize), func(address uintptr) pointer.Movable[T] {
		m := pointer.MovableFromAddress[T](address)
		m.SetTarget(target)
		return m
	})
}

// FreeSlot releases a slot previously returned by NewSlot.
func FreeSlot[T any](
	ctx context.Context,
	a *Arena,
	m pointer.Movable[T],
) error {
	return a.Free(ctx, pointer.FixedFromAddress[pointer.Void](m.SlotAddress()))
}

func (a *Arena) alloc(
	ctx context.Context,
	size uintptr,
) result.Result[uintptr] {
	address, err := xsync.DoA2R2(ctx, &a.locker, a.allocLocked, ctx, size)
	if err != nil {
		a.Counters.Failed.Increment(size)
		return result.Fail[uintptr](fmt.Errorf("unable to allocate %d bytes in arena %q: %w", size, a.name, err))
	}
	return result.Ok(address)
}

func (a *Arena) allocLocked(
	ctx context.Context,
	size uintptr,
) (uintptr, error) {
	if a.isClosed {
		return 0, ErrClosed{}
	}

	cells := int((size + cellSize - 1) / cellSize)
	if cells == 0 {
		cells = 1
	}
	start := a.findFreeRunLocked(cells)
	if start < 0 {
		return 0, ErrOutOfMemory{Requested: size}
	}

	for idx := start; idx < start+cells; idx++ {
		a.used[idx] = true
	}
	a.lengths[start] = cells
	clear(a.memory[start*cellSize : (start+cells)*cellSize])
	a.Counters.Allocated.Increment(uintptr(cells * cellSize))

	address := a.base + uintptr(start*cellSize)
	logger.Tracef(ctx, "arena %q: allocated %d cells at 0x%016X", a.name, cells, uint64(address))
	return address, nil
}

// findFreeRunLocked is a first-fit search for cells consecutive free cells.
func (a *Arena) findFreeRunLocked(cells int) int {
	run := 0
	for idx, isUsed := range a.used {
		if isUsed {
			run = 0
			continue
		}
		run++
		if run == cells {
			return idx - cells + 1
		}
	}
	return -1
}

// Free releases a block returned by Alloc, AllocWord or NewSlot. Freeing
// the null pointer is a no-op.
func (a *Arena) Free(
	ctx context.Context,
	p pointer.Fixed[pointer.Void],
) error {
	if p.IsNull() {
		return nil
	}
	return xsync.DoA2R1(ctx, &a.locker, a.freeLocked, ctx, p.Address())
}

func (a *Arena) freeLocked(
	ctx context.Context,
	address uintptr,
) error {
	if a.isClosed {
		return ErrClosed{}
	}
	if !a.containsLocked(address) || (address-a.base)%cellSize != 0 {
		return ErrForeignAddress{Address: address}
	}

	start := int((address - a.base) / cellSize)
	cells, ok := a.lengths[start]
	if !ok {
		return ErrForeignAddress{Address: address}
	}
	delete(a.lengths, start)
	for idx := start; idx < start+cells; idx++ {
		a.used[idx] = false
	}
	a.Counters.Freed.Increment(uintptr(cells * cellSize))
	logger.Tracef(ctx, "arena %q: freed %d cells at 0x%016X", a.name, cells, uint64(address))
	return nil
}

// Contains reports whether address points into the memory of the arena.
func (a *Arena) Contains(
	ctx context.Context,
	address uintptr,
) bool {
	return xsync.DoA1R1(ctx, &a.locker, a.containsLocked, address)
}

func (a *Arena) containsLocked(address uintptr) bool {
	if a.isClosed {
		return false
	}
	return address >= a.base && address < a.base+uintptr(len(a.used)*cellSize)
}

// Capacity is the size of the arena in bytes.
func (a *Arena) Capacity() uintptr {
	return uintptr(len(a.used) * cellSize)
}

func (a *Arena) Stats() Statistics {
	return a.Counters.ToStats()
}

// LogStats dumps the counters at the debug level.
func (a *Arena) LogStats(ctx context.Context) {
	logger.Debugf(ctx, "arena %q statistics: %s", a.name, spew.Sdump(a.Stats()))
}

// Close releases the memory. Any pointer into the arena is dangling
// afterwards.
func (a *Arena) Close(ctx context.Context) error {
	return xsync.DoA1R1(ctx, &a.locker, a.closeLocked, ctx)
}

func (a *Arena) closeLocked(ctx context.Context) error {
	if a.isClosed {
		return ErrClosed{}
	}
	if inUse := a.Stats().InUse(); inUse.Count > 0 {
		logger.Warnf(ctx, "closing arena %q with %d blocks (%s) still allocated", a.name, inUse.Count, humanize.IBytes(inUse.Bytes))
	}
	a.isClosed = true
	a.memory = nil
	return a.closer.Close()
}

func (a *Arena) String() string {
	return fmt.Sprintf(
		"Arena<%s>(%s of %s in use)",
		a.name,
		humanize.IBytes(a.Stats().InUse().Bytes),
		humanize.IBytes(uint64(a.Capacity())),
	)
}
