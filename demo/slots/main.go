// Command slots keeps an AVFrame pointer in a slot of native memory and
// shows how the handles behave around it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/experimental/errmon"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/avnative/avnative"
	"github.com/xaionaro-go/avnative/logger"
	"github.com/xaionaro-go/avnative/nativemem"
	"github.com/xaionaro-go/avnative/pointer"
	"github.com/xaionaro-go/avnative/result"
)

func main() {
	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	cells := pflag.Uint("cells", 64, "the size of the native arena, in 8-byte cells")
	pflag.Parse()

	ctx := withLogger(context.Background(), loggerLevel)
	defer belt.Flush(ctx)
	defer func() { errmon.ObserveRecoverCtx(ctx, recover()) }()

	if err := run(ctx, *cells); err != nil {
		logger.Errorf(ctx, "%v", err)
		belt.Flush(ctx)
		os.Exit(1)
	}
}

func run(ctx context.Context, cells uint) error {
	arena, err := nativemem.NewArena(ctx, nativemem.OptionCells(cells), nativemem.OptionName("demo")).Unwrap()
	if err != nil {
		return fmt.Errorf("unable to create the arena: %w", err)
	}
	defer func() {
		if err := arena.Close(ctx); err != nil {
			logger.Errorf(ctx, "unable to close the arena: %v", err)
		}
	}()

	frame, err := avnative.AllocFrame(ctx).Unwrap()
	if err != nil {
		return err
	}
	framePtr := avnative.FramePointer(frame)
	fmt.Println("frame:      ", framePtr)
	fmt.Println("untyped:    ", framePtr.Erase())

	slot, err := nativemem.NewSlot(ctx, arena, framePtr).Unwrap()
	if err != nil {
		return fmt.Errorf("unable to allocate a slot: %w", err)
	}
	fmt.Println("slot:       ", slot)
	fmt.Println("slot target:", slot.Target())

	// the slot does not own the frame: clearing it leaves the frame alone
	slot.SetTarget(pointer.Null[avnative.Frame]())
	fmt.Println("after clear:", slot.TargetOr(framePtr), "present:", slot.IsPresent())

	goSlot := avnative.FrameSlot(frame)
	fmt.Println("go slot:    ", goSlot, "present:", goSlot.IsPresent())
	frame.Free()
	fmt.Println("after free: ", goSlot.TargetOr(pointer.Null[avnative.Frame]()), "present:", goSlot.IsPresent())

	words := result.Collect(arena.AllocWord(ctx), arena.AllocWord(ctx))
	words.IfSuccess(func(ptrs []pointer.Fixed[uintptr]) {
		for _, p := range ptrs {
			fmt.Println("word:       ", p)
			if err := arena.Free(ctx, p.Erase()); err != nil {
				logger.Errorf(ctx, "unable to free %s: %v", p, err)
			}
		}
	})
	if err := words.Err(); err != nil {
		return fmt.Errorf("unable to allocate words: %w", err)
	}

	if err := nativemem.FreeSlot(ctx, arena, slot); err != nil {
		return fmt.Errorf("unable to free the slot: %w", err)
	}
	arena.LogStats(ctx)
	fmt.Println(arena)
	return nil
}
