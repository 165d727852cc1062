package xpropagation

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xwire/pkg/trace/xspanctx"
)

// =============================================================================
// OpenTelemetry TextMapPropagator 适配
// =============================================================================

// Propagator 以 OpenTelemetry TextMapPropagator 形态承载 Trace-Context 头。
//
// 可与标准传播器组合使用（propagation.NewCompositeTextMapPropagator），
// 让同一服务在 W3C traceparent 之外兼容本格式的上下游。
// 无状态零值类型，可并发共享。
type Propagator struct{}

// 编译期接口实现检查
var _ propagation.TextMapPropagator = Propagator{}

// Inject 将 ctx 中的关联记录以十六进制文本写入载体的 Trace-Context 字段。
//
// 取值顺序：优先 OpenTelemetry 的活跃 SpanContext，其次本包 context 存储。
// 两者都无有效记录时不写入（OTel 传播器契约：Inject 静默跳过）。
func (Propagator) Inject(ctx context.Context, carrier propagation.TextMapCarrier) {
	if carrier == nil {
		return
	}

	sc := spanContextForInject(ctx)
	if !sc.IsValid() {
		return
	}
	carrier.Set(HTTPHeaderName, ToHTTPHeaderValue(sc))
}

// Extract 从载体的 Trace-Context 字段提取关联记录并装入返回的 context。
//
// 成功时记录同时进入两处：OpenTelemetry 的远端 SpanContext（Remote 标记，
// 供 OTel SDK 建立父子关系）与本包的 context 存储（xspanctx 调用方不依赖
// OTel API 也能取到）。字段缺失、解码失败或记录无效时返回原 context，
// 不报错（OTel 传播器契约）。
func (Propagator) Extract(ctx context.Context, carrier propagation.TextMapCarrier) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if carrier == nil {
		return ctx
	}

	value := strings.TrimSpace(carrier.Get(HTTPHeaderName))
	if value == "" {
		return ctx
	}

	sc, err := FromHTTPHeaderValue(value)
	if err != nil || !sc.IsValid() {
		return ctx
	}

	ctx = trace.ContextWithRemoteSpanContext(ctx, xspanctx.ToOTel(sc))
	if newCtx, scErr := xspanctx.WithSpanContext(ctx, sc); scErr == nil {
		ctx = newCtx
	}
	return ctx
}

// Fields 返回本传播器读写的载体字段名。
func (Propagator) Fields() []string {
	return []string{HTTPHeaderName}
}

// spanContextForInject 决定注入时使用的关联记录。
//
// 设计决策: OpenTelemetry 的活跃 SpanContext 优先于本包存储。同一进程
// 同时使用两套 API 时，OTel SDK 管理的当前 span 代表最新的调用位置，
// 本包存储的多半是入口处提取的上游记录。
func spanContextForInject(ctx context.Context) xspanctx.SpanContext {
	if osc := trace.SpanContextFromContext(ctx); osc.IsValid() {
		return xspanctx.FromOTel(osc)
	}
	if sc, ok := xspanctx.SpanContextFromContext(ctx); ok {
		return sc
	}
	return xspanctx.InvalidSpanContext()
}
