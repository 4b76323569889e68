// types.go declares the pointee types of handles to FFmpeg structures.

// Package avnative exposes go-astiav objects through the pointer and result
// layers: typed handles to the underlying C structures, and Result-returning
// wrappers around allocations and calls.
package avnative

// Frame is AVFrame.
type Frame struct{}

// Packet is AVPacket.
type Packet struct{}

// CodecParameters is AVCodecParameters.
type CodecParameters struct{}

// CodecContext is AVCodecContext.
type CodecContext struct{}

// FormatContext is AVFormatContext.
type FormatContext struct{}
