package xspanctx

import "go.opentelemetry.io/otel/trace"

// =============================================================================
// OpenTelemetry 桥接
//
// OTel 的 trace.TraceFlags 只有单字节，对应本包 TraceOptions 的最低有效
// 字节；保留字节 1..3 无法在 OTel 侧表达，跨桥接会被丢弃。需要完整保留
// TraceOptions 的场景应使用 xpropagation 的二进制格式传播。
// =============================================================================

// ToOTel 将 SpanContext 转换为 OpenTelemetry 的 trace.SpanContext。
//
// 设计决策: 转换结果始终标记为 remote，因为本包的关联记录语义上来自
// 跨进程传播；OTel SDK 据此区分本地父 span 与远端父 span。
func ToOTel(sc SpanContext) trace.SpanContext {
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID(sc.TraceID),
		SpanID:     trace.SpanID(sc.SpanID),
		TraceFlags: trace.TraceFlags(sc.TraceOptions[0]),
		Remote:     true,
	})
}

// FromOTel 将 OpenTelemetry 的 trace.SpanContext 转换为本包的 SpanContext。
// 单字节 TraceFlags 落入 TraceOptions 的最低有效字节，保留字节为零。
func FromOTel(osc trace.SpanContext) SpanContext {
	var opts TraceOptions
	opts[0] = byte(osc.TraceFlags())
	return SpanContext{
		TraceID:      TraceID(osc.TraceID()),
		SpanID:       SpanID(osc.SpanID()),
		TraceOptions: opts,
	}
}
