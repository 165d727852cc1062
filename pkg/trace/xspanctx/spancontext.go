package xspanctx

// SpanContext 跨进程传播的关联记录三元组。
//
// 纯值类型：字段均为定长字节数组，赋值即拷贝、可比较（可直接作为 map key）、
// 天然不可变。零值即 [InvalidSpanContext]。
type SpanContext struct {
	TraceID      TraceID
	SpanID       SpanID
	TraceOptions TraceOptions
}

// NewSpanContext 从三个字段创建 SpanContext。
func NewSpanContext(traceID TraceID, spanID SpanID, opts TraceOptions) SpanContext {
	return SpanContext{
		TraceID:      traceID,
		SpanID:       spanID,
		TraceOptions: opts,
	}
}

// InvalidSpanContext 返回无效的 SpanContext
// （INVALID TraceID、INVALID SpanID、DEFAULT TraceOptions）。
func InvalidSpanContext() SpanContext {
	return SpanContext{}
}

// IsValid 报告两个标识是否均有效。
// TraceOptions 不参与有效性判断（全零是合法默认值）。
func (sc SpanContext) IsValid() bool {
	return sc.TraceID.IsValid() && sc.SpanID.IsValid()
}

// IsSampled 报告采样位是否置位。
func (sc SpanContext) IsSampled() bool {
	return sc.TraceOptions.IsSampled()
}

// String 返回 "trace_id-span_id-options" 形式的十六进制表示，便于日志输出。
func (sc SpanContext) String() string {
	return sc.TraceID.String() + "-" + sc.SpanID.String() + "-" + sc.TraceOptions.String()
}
