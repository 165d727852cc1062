package xpropagation

import (
	"fmt"

	"github.com/omeyang/xwire/pkg/trace/xspanctx"
)

// =============================================================================
// 版本 0 二进制线格式
//
// 布局（定长 32 字节，标签按固定位置顺序识别）：
//
//	偏移  内容
//	 0    版本字节（0）
//	 1    字段标签 0（TraceID）
//	 2    TraceID 载荷（16 字节）
//	18    字段标签 1（SpanID）
//	19    SpanID 载荷（8 字节）
//	27    字段标签 2（TraceOptions）
//	28    TraceOptions 载荷（4 字节，小端序）
// =============================================================================

// versionID 当前唯一支持的线格式版本。
const versionID = 0

// 字段标签值。标签只在各自的固定偏移处被识别，不支持乱序或跳过。
const (
	traceIDFieldID      = 0
	spanIDFieldID       = 1
	traceOptionsFieldID = 2
)

// 布局偏移由各字段长度推导，保证编解码两侧永不失配。
const (
	versionSize = 1
	fieldIDSize = 1

	versionOffset           = 0
	traceIDFieldOffset      = versionOffset + versionSize
	traceIDOffset           = traceIDFieldOffset + fieldIDSize
	spanIDFieldOffset       = traceIDOffset + xspanctx.TraceIDSize
	spanIDOffset            = spanIDFieldOffset + fieldIDSize
	traceOptionsFieldOffset = spanIDOffset + xspanctx.SpanIDSize
	traceOptionsOffset      = traceOptionsFieldOffset + fieldIDSize

	// binaryFormatLength 版本 0 编码输出的固定总长（32 字节）。
	binaryFormatLength = traceOptionsOffset + xspanctx.TraceOptionsSize
)

// DefaultHandler 版本 0 线格式的内置编解码器。
//
// 无状态零值类型，可并发共享。进程启动时即为活跃处理器，
// 除非通过 [SetHandler] 被显式替换。
type DefaultHandler struct{}

// 编译期接口实现检查
var _ Handler = DefaultHandler{}

// ToBinaryFormat 将 sc 编码为 32 字节的版本 0 线格式。
//
// 编码是全量且确定性的：三个字段无论有效与否都会写出
// （无效标识编码为全零载荷），相同输入产生字节级相同的输出。
func (DefaultHandler) ToBinaryFormat(sc xspanctx.SpanContext) []byte {
	buf := make([]byte, binaryFormatLength)
	buf[versionOffset] = versionID
	buf[traceIDFieldOffset] = traceIDFieldID
	buf[spanIDFieldOffset] = spanIDFieldID
	buf[traceOptionsFieldOffset] = traceOptionsFieldID
	// 缓冲区按固定布局分配，CopyBytesTo 不会越界
	_ = sc.TraceID.CopyBytesTo(buf, traceIDOffset)
	_ = sc.SpanID.CopyBytesTo(buf, spanIDOffset)
	_ = sc.TraceOptions.CopyBytesTo(buf, traceOptionsOffset)
	return buf
}

// FromBinaryFormat 将版本 0 线格式解析回关联记录。
//
// 解码是链式门控的：版本字节必须严格为 0，随后每个字段只有在
// 前一字段完整解码后才会被识别。标签缺失或失配属于优雅降级，
// 解析在该点静默停止并返回已解出的前缀（缺失字段保持默认值）；
// 标签匹配但载荷不完整才是硬错误（[ErrMalformedField]），
// 此时返回无效记录而非半成品。超出固定布局的尾部字节被忽略。
func (DefaultHandler) FromBinaryFormat(b []byte) (xspanctx.SpanContext, error) {
	sc := xspanctx.InvalidSpanContext()

	if b == nil {
		return sc, ErrNilBuffer
	}
	if len(b) == 0 {
		return sc, fmt.Errorf("%w: empty buffer has no version byte", ErrUnsupportedVersion)
	}
	if b[versionOffset] != versionID {
		return sc, fmt.Errorf("%w: got version %d, want %d", ErrUnsupportedVersion, b[versionOffset], versionID)
	}

	if traceIDFieldOffset >= len(b) || b[traceIDFieldOffset] != traceIDFieldID {
		return sc, nil
	}
	traceID, err := xspanctx.TraceIDFromBytes(b, traceIDOffset)
	if err != nil {
		return xspanctx.InvalidSpanContext(), fmt.Errorf("%w: trace id: %w", ErrMalformedField, err)
	}
	sc.TraceID = traceID

	if spanIDFieldOffset >= len(b) || b[spanIDFieldOffset] != spanIDFieldID {
		return sc, nil
	}
	spanID, err := xspanctx.SpanIDFromBytes(b, spanIDOffset)
	if err != nil {
		return xspanctx.InvalidSpanContext(), fmt.Errorf("%w: span id: %w", ErrMalformedField, err)
	}
	sc.SpanID = spanID

	if traceOptionsFieldOffset >= len(b) || b[traceOptionsFieldOffset] != traceOptionsFieldID {
		return sc, nil
	}
	opts, err := traceOptionsFromPayload(b[traceOptionsOffset:])
	if err != nil {
		return xspanctx.InvalidSpanContext(), err
	}
	sc.TraceOptions = opts

	return sc, nil
}

// traceOptionsFromPayload 从标签后的剩余载荷解析 TraceOptions。
//
// 完整 4 字节按原样读取（保留字节原样往返，多余尾部忽略）；
// 1..3 字节视为只写出了低位的截断编码，高位补零；
// 0 字节说明标签后没有任何载荷，按损坏字段处理。
func traceOptionsFromPayload(payload []byte) (xspanctx.TraceOptions, error) {
	if len(payload) == 0 {
		return xspanctx.DefaultTraceOptions(),
			fmt.Errorf("%w: trace options: no payload after field id", ErrMalformedField)
	}
	var b [xspanctx.TraceOptionsSize]byte
	copy(b[:], payload)
	return xspanctx.NewTraceOptions(b), nil
}

// =============================================================================
// 包级门面（委托给活跃处理器）
// =============================================================================

// ToBinary 用当前活跃处理器将 sc 编码为二进制线格式。
//
// 并发安全：处理器通过 atomic.Pointer 读取。
func ToBinary(sc xspanctx.SpanContext) []byte {
	return ActiveHandler().ToBinaryFormat(sc)
}

// FromBinary 用当前活跃处理器将二进制线格式解析回关联记录。
//
// nil 缓冲区返回 [ErrNilBuffer]，在委托给处理器之前拦截，
// 保证该检查不随处理器替换而失效。
func FromBinary(b []byte) (xspanctx.SpanContext, error) {
	if b == nil {
		return xspanctx.InvalidSpanContext(), ErrNilBuffer
	}
	return ActiveHandler().FromBinaryFormat(b)
}
