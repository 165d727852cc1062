// Package xspanctx 提供分布式追踪的关联记录（correlation record）值类型。
//
// 关联记录 [SpanContext] 是跨进程传播的三元组 (TraceID, SpanID, TraceOptions)：
//   - [TraceID]      : 16 字节，标识整条分布式链路
//   - [SpanID]       : 8 字节，标识链路中的单个操作
//   - [TraceOptions] : 4 字节标志位（小端序 uint32 视角，目前仅定义 bit 0 = 采样）
//
// 三个标识类型均为定长字节数组值类型：赋值即拷贝、天然不可变、可比较
// （可直接作为 map key）。全零值是保留的无效哨兵，由 [TraceID.IsValid] /
// [SpanID.IsValid] 识别；除全零外不对内容做任何校验，任何字节模式都是合法标识。
//
// # 功能概览
//
// 字节缓冲区构造与序列化（偏移量语义，供二进制编解码器使用）：
//   - TraceIDFromBytes / SpanIDFromBytes / TraceOptionsFromBytes
//   - TraceID.CopyBytesTo / SpanID.CopyBytesTo / TraceOptions.CopyBytesTo
//
// 十六进制与 JSON：
//   - TraceIDFromHex / SpanIDFromHex（解析端大小写不敏感）
//   - String 输出 32/16/8 位小写十六进制；TraceID/SpanID 支持 JSON 往返
//
// 随机生成（W3C 规范，全零值重新生成）：
//   - GenerateTraceID / GenerateSpanID
//
// context 存取（存量沿用、缺失生成）：
//   - WithSpanContext / SpanContextFromContext / EnsureSpanContext
//
// 生态互操作：
//   - ToOTel / FromOTel（OpenTelemetry trace.SpanContext 桥接）
//   - TraceIDFromUUID / TraceID.UUID（与 128-bit UUID 同构）
//
// # 哨兵错误
//
//	ErrNilContext     - context 为 nil
//	ErrBufferTooShort - 缓冲区长度不满足定长读写要求
//	ErrInvalidHex     - 十六进制字符串解析失败
//
// # 校验策略
//
// 本包是纯粹的值类型层，只校验长度和全零哨兵，不校验标识内容。
// 版本字节、字段标签等线格式语义属于 xpropagation 包。
package xspanctx
