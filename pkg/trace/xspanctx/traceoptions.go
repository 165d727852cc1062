package xspanctx

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// TraceOptionsSize TraceOptions 的字节长度（小端序 uint32 视角）。
const TraceOptionsSize = 4

// sampledMask 采样位掩码（最低有效字节的 bit 0）。
const sampledMask = 0x01

// TraceOptions 伴随标识传播的标志位集合。
//
// 按小端序 uint32 解读：下标 0 是最低有效字节，目前唯一定义的标志是
// bit 0 = 采样（sampled）。下标 1..3 为保留字节，当前无语义，但二进制
// 编解码必须原样往返，不得清零或丢弃。
//
// 全零值即 [DefaultTraceOptions]（未采样），与标识类型不同，
// 零值 TraceOptions 是合法的默认值而非无效哨兵。
type TraceOptions [TraceOptionsSize]byte

// NewTraceOptions 从字节数组创建 TraceOptions。
func NewTraceOptions(b [TraceOptionsSize]byte) TraceOptions {
	return TraceOptions(b)
}

// DefaultTraceOptions 返回默认 TraceOptions（全零，未采样）。
func DefaultTraceOptions() TraceOptions {
	return TraceOptions{}
}

// TraceOptionsFromUint32 从 uint32 创建 TraceOptions（小端序）。
func TraceOptionsFromUint32(v uint32) TraceOptions {
	var opts TraceOptions
	binary.LittleEndian.PutUint32(opts[:], v)
	return opts
}

// TraceOptionsFromBytes 从 buf 的 offset 位置起读取恰好 [TraceOptionsSize] 字节。
// 偏移量为负或剩余字节不足时返回 [ErrBufferTooShort]。
func TraceOptionsFromBytes(buf []byte, offset int) (TraceOptions, error) {
	var opts TraceOptions
	if offset < 0 || offset > len(buf)-TraceOptionsSize {
		return opts, fmt.Errorf("%w: trace options needs %d bytes at offset %d, buffer has %d",
			ErrBufferTooShort, TraceOptionsSize, offset, len(buf))
	}
	copy(opts[:], buf[offset:])
	return opts, nil
}

// CopyBytesTo 将 TraceOptions 写入 dst 的 offset 位置起的恰好 [TraceOptionsSize] 字节。
// 偏移量为负或剩余空间不足时返回 [ErrBufferTooShort]，此时 dst 不被修改。
func (t TraceOptions) CopyBytesTo(dst []byte, offset int) error {
	if offset < 0 || offset > len(dst)-TraceOptionsSize {
		return fmt.Errorf("%w: trace options needs %d bytes at offset %d, buffer has %d",
			ErrBufferTooShort, TraceOptionsSize, offset, len(dst))
	}
	copy(dst[offset:], t[:])
	return nil
}

// Bytes 返回 TraceOptions 的字节数组副本。
func (t TraceOptions) Bytes() [TraceOptionsSize]byte {
	return t
}

// Uint32 返回 TraceOptions 的小端序 uint32 视角。
func (t TraceOptions) Uint32() uint32 {
	return binary.LittleEndian.Uint32(t[:])
}

// IsSampled 报告采样位（bit 0）是否置位。
func (t TraceOptions) IsSampled() bool {
	return t[0]&sampledMask != 0
}

// WithSampled 返回设置了采样位的 TraceOptions 副本，保留字节不受影响。
// 值类型写时复制，接收者本身不被修改。
func (t TraceOptions) WithSampled(sampled bool) TraceOptions {
	if sampled {
		t[0] |= sampledMask
	} else {
		t[0] &^= sampledMask
	}
	return t
}

// String 返回 8 位小写十六进制表示（字节序即线上顺序）。
func (t TraceOptions) String() string {
	return hex.EncodeToString(t[:])
}
