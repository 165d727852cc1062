package xpropagation

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/omeyang/xwire/pkg/trace/xspanctx"
)

// =============================================================================
// gRPC Metadata 载体（跨服务传播）
// =============================================================================

// MetaTraceContext 承载关联记录的 gRPC metadata key。
//
// 遵循 gRPC 的 "-bin" 后缀惯例：值是原始二进制线格式（非十六进制转写），
// 传输层会自动做 base64 编解码，调用方无需关心。
const MetaTraceContext = "trace-context-bin"

// SpanContextFromMetadata 从 gRPC Metadata 提取关联记录。
//
// key 缺失、解码失败或记录无效时返回 ok = false。
// 多值时取第一个；"-bin" 值是原始字节，不做空白修剪。
func SpanContextFromMetadata(md metadata.MD) (xspanctx.SpanContext, bool) {
	if md == nil {
		return xspanctx.InvalidSpanContext(), false
	}

	values := md.Get(MetaTraceContext)
	if len(values) == 0 {
		return xspanctx.InvalidSpanContext(), false
	}

	sc, err := FromBinary([]byte(values[0]))
	if err != nil || !sc.IsValid() {
		return xspanctx.InvalidSpanContext(), false
	}
	return sc, true
}

// SpanContextToMetadata 将关联记录注入 gRPC Metadata。
//
// 无效记录不注入，nil Metadata 时为空操作。
// 使用 Set 覆盖（而非追加），避免多次调用产生重复值。
func SpanContextToMetadata(sc xspanctx.SpanContext, md metadata.MD) {
	if md == nil || !sc.IsValid() {
		return
	}
	md.Set(MetaTraceContext, string(ToBinary(sc)))
}

// SpanContextFromIncomingContext 从 incoming context 的 Metadata 提取关联记录。
func SpanContextFromIncomingContext(ctx context.Context) (xspanctx.SpanContext, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return xspanctx.InvalidSpanContext(), false
	}
	return SpanContextFromMetadata(md)
}

// SpanContextToOutgoingContext 将关联记录注入 outgoing context 的 Metadata，
// 用于跨服务调用时传播。无效记录时返回原 context。
func SpanContextToOutgoingContext(ctx context.Context, sc xspanctx.SpanContext) context.Context {
	if !sc.IsValid() {
		return ctx
	}

	// 获取现有 metadata 并复制，避免修改原 metadata
	md, ok := metadata.FromOutgoingContext(ctx)
	if ok {
		md = md.Copy()
	} else {
		md = metadata.New(nil)
	}

	SpanContextToMetadata(sc, md)
	return metadata.NewOutgoingContext(ctx, md)
}
