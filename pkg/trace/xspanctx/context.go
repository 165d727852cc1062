package xspanctx

import "context"

// =============================================================================
// SpanContext 的 context 存取
// =============================================================================

const keySpanContext = contextKey("xspanctx:span_context")

// WithSpanContext 将 SpanContext 注入 context。
//
// 不校验 sc 的有效性：无效记录也允许注入，由读取方按需判断。
// 如果 ctx 为 nil，返回 ErrNilContext。
func WithSpanContext(ctx context.Context, sc SpanContext) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return context.WithValue(ctx, keySpanContext, sc), nil
}

// SpanContextFromContext 从 context 提取 SpanContext。
// 不存在时返回零值与 false；nil context 同样返回零值与 false。
func SpanContextFromContext(ctx context.Context) (SpanContext, bool) {
	if ctx == nil {
		return SpanContext{}, false
	}
	sc, ok := ctx.Value(keySpanContext).(SpanContext)
	return sc, ok
}

// EnsureSpanContext 确保 context 中存在 SpanContext。
//
// 语义：确保存在。如果 context 中已有记录，原样返回（不验证/不纠正）；
// 否则生成新的标识（默认 TraceOptions，未采样）并注入。
// 适用于请求入口，使当前服务成为分布式链路的起点。
// 如果 ctx 为 nil，返回 ErrNilContext。
//
// 注意：采样决策应从上游传播而非本地生成，因此新记录始终使用
// [DefaultTraceOptions]。如需置位采样，请显式构造后用 [WithSpanContext] 注入。
func EnsureSpanContext(ctx context.Context) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if _, ok := SpanContextFromContext(ctx); ok {
		return ctx, nil
	}
	sc := NewSpanContext(GenerateTraceID(), GenerateSpanID(), DefaultTraceOptions())
	return WithSpanContext(ctx, sc)
}
