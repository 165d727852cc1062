// Package xpropagation 提供关联记录的跨进程线格式编解码。
//
// 线格式是追踪实现之间的互操作边界：任何遵循同一格式的实现，无论语言，
// 都能交换 [xspanctx.SpanContext]。本包实现带版本号、字段标签的紧凑二进制
// 格式（version 0，定长 32 字节）及其十六进制文本形式（HTTP Header 值）。
//
// # 功能概览
//
// 编解码门面（委托给进程级活跃 Handler）：
//   - ToBinary / FromBinary                : 二进制缓冲区形式
//   - ToHTTPHeaderValue / FromHTTPHeaderValue : 大写十六进制文本形式
//   - HTTPHeaderName                       : 标准 Header 名 "Trace-Context"
//
// 版本处理器（格式演进的唯一扩展点）：
//   - [Handler]        : 单一线格式版本的编解码接口
//   - [DefaultHandler] : version 0 的具体实现，进程默认
//   - SetHandler / ActiveHandler / ResetHandler : 进程级活跃处理器槽位
//
// 传输层便捷封装（遵循各传输层惯例，缺失作为正常结果返回 ok=false）：
//   - http.go  : [SpanContextFromRequest] / [SpanContextToRequest] 等
//   - grpc.go  : gRPC metadata 的 -bin 二进制携带
//   - otel.go  : OpenTelemetry TextMapPropagator 实现 [Propagator]
//   - traceparent.go : W3C traceparent 文本格式（与二进制格式并行的互操作途径）
//
// # version 0 二进制布局
//
// 固定升序字段标签，编码端恒定 32 字节：
//
//	偏移  长度  内容
//	0     1     version_id = 0
//	1     1     field_id = 0 (TraceID 标记)
//	2     16    TraceID 字节
//	18    1     field_id = 1 (SpanID 标记)
//	19    8     SpanID 字节
//	27    1     field_id = 2 (TraceOptions 标记)
//	28    4     TraceOptions 字节（小端序 uint32）
//
// 解码端是按位置顺序门控的三步状态机：每个字段仅在游标处的标签字节匹配时
// 才被识别；标签缺失或不匹配时该字段与所有后续字段保持默认值，这不是错误
// （前向/后向兼容策略：未知或缺失的尾部字段优雅降级）。版本字节不匹配则是
// 硬失败，绝不静默容忍。32 字节之外的尾部数据被静默忽略。
//
// # 哨兵错误
//
//	ErrNilBuffer            - 字节缓冲区为 nil
//	ErrUnsupportedVersion   - 缓冲区为空或版本字节不被识别（硬失败）
//	ErrMalformedField       - 已识别字段的载荷被截断（区别于版本错误）
//	ErrMalformedHeaderValue - 十六进制文本在进入处理器前解码失败
//
// # 并发模型
//
// 所有编解码调用无状态、同步、有界。唯一的共享可变状态是活跃处理器槽位，
// 使用 atomic.Pointer 实现单次原子发布：并发读取方观察到旧处理器或新
// 处理器之一，绝无中间状态。Handler 实例构造后不可变。
// 本包不重试、不记日志、不吞错误：失败同步返回调用方。
package xpropagation
