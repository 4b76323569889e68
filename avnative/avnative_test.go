package avnative

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/asticode/go-astiav"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avnative/pointer"
	"github.com/xaionaro-go/avnative/result"
)

func TestFrameSlotObservesFree(t *testing.T) {
	ctx := context.Background()
	f := astiav.AllocFrame()
	require.NotNil(t, f)

	p := FramePointer(f)
	require.False(t, p.IsNull())

	slot := FrameSlot(f)
	require.True(t, slot.IsPresent())
	require.Equal(t, p, slot.Target())
	TraceNative(ctx, f)

	f.Free()
	require.False(t, slot.IsPresent())
	require.True(t, FramePointer(f).IsNull())
	require.Equal(t, p, slot.TargetOr(p))
	runtime.KeepAlive(f)
}

func TestAllocPacket(t *testing.T) {
	ctx := context.Background()
	pkt := AllocPacket(ctx).Value()
	require.False(t, PacketPointer(pkt).IsNull())
	require.True(t, PacketSlot(pkt).IsPresent())
	require.False(t, pointer.SameAddress(PacketPointer(pkt), FramePointer(AllocFrame(ctx).Value())))
}

func TestAllocCodecParameters(t *testing.T) {
	ctx := context.Background()
	cp := AllocCodecParameters(ctx).Value()
	require.Equal(t, CodecParametersPointer(cp), CodecParametersSlot(cp).Target())
}

func TestNilObjects(t *testing.T) {
	require.True(t, FramePointer(nil).IsNull())
	require.True(t, FrameSlot(nil).IsNull())
	require.True(t, PacketSlot(nil).IsNull())
	require.True(t, CodecContextPointer(nil).IsNull())
	require.True(t, FormatContextPointer(nil).IsNull())
	require.True(t, FormatContextSlot(nil).IsNull())
	TraceNative(context.Background(), (*astiav.Frame)(nil))
}

func TestCall(t *testing.T) {
	ctx := context.Background()

	r := Call(ctx, "av_something", func() (int, error) { return 3, nil })
	require.Equal(t, 3, r.Value())

	r = Call(ctx, "av_read_frame", func() (int, error) { return 0, astiav.ErrEof })
	require.True(t, IsEOF(r.Err()))
	require.False(t, IsAgain(r.Err()))
	require.EqualError(t, r.Err(), fmt.Sprintf("av_read_frame failed: %v", astiav.ErrEof))

	e := CallErr(ctx, "avcodec_receive_frame", func() error { return astiav.ErrEagain })
	require.True(t, IsAgain(e.Err()))

	require.True(t, CallErr(ctx, "noop", func() error { return nil }).IsSuccess())

	chained := result.AndThen(Call(ctx, "first", func() (int, error) { return 0, astiav.ErrEagain }), func(v int) string {
		return fmt.Sprint(v)
	})
	require.True(t, IsAgain(chained.Err()))
}
