package xpropagation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	"github.com/omeyang/xwire/pkg/trace/xpropagation"
	"github.com/omeyang/xwire/pkg/trace/xspanctx"
)

func TestSpanContextMetadataRoundTrip(t *testing.T) {
	md := metadata.New(nil)
	xpropagation.SpanContextToMetadata(exampleSpanContext(), md)

	values := md.Get(xpropagation.MetaTraceContext)
	require.Len(t, values, 1)
	// "-bin" key 承载原始二进制，不是十六进制文本
	assert.Len(t, values[0], 32)

	sc, ok := xpropagation.SpanContextFromMetadata(md)
	require.True(t, ok)
	assert.Equal(t, exampleSpanContext(), sc)
}

func TestSpanContextToMetadataOverwrites(t *testing.T) {
	md := metadata.New(nil)
	xpropagation.SpanContextToMetadata(exampleSpanContext(), md)
	xpropagation.SpanContextToMetadata(exampleSpanContext(), md)

	// Set 覆盖而非追加，重复注入不会产生多值
	assert.Len(t, md.Get(xpropagation.MetaTraceContext), 1)
}

func TestSpanContextFromMetadataMissing(t *testing.T) {
	sc, ok := xpropagation.SpanContextFromMetadata(metadata.New(nil))
	assert.False(t, ok)
	assert.Equal(t, xspanctx.InvalidSpanContext(), sc)

	_, ok = xpropagation.SpanContextFromMetadata(nil)
	assert.False(t, ok)
}

func TestSpanContextFromMetadataRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"载荷截断", string([]byte{0, 0, 1, 2})},
		{"版本失配", string(append([]byte{9}, make([]byte, 31)...))},
		{"全零记录", string(xpropagation.ToBinary(xspanctx.InvalidSpanContext()))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := metadata.New(nil)
			md.Set(xpropagation.MetaTraceContext, tt.value)

			_, ok := xpropagation.SpanContextFromMetadata(md)
			assert.False(t, ok)
		})
	}
}

func TestSpanContextToMetadataSkipsInvalid(t *testing.T) {
	md := metadata.New(nil)
	xpropagation.SpanContextToMetadata(xspanctx.InvalidSpanContext(), md)

	assert.Empty(t, md.Get(xpropagation.MetaTraceContext))
}

func TestSpanContextIncomingContext(t *testing.T) {
	md := metadata.New(nil)
	xpropagation.SpanContextToMetadata(exampleSpanContext(), md)
	ctx := metadata.NewIncomingContext(context.Background(), md)

	sc, ok := xpropagation.SpanContextFromIncomingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, exampleSpanContext(), sc)

	_, ok = xpropagation.SpanContextFromIncomingContext(context.Background())
	assert.False(t, ok)
}

func TestSpanContextToOutgoingContext(t *testing.T) {
	ctx := xpropagation.SpanContextToOutgoingContext(context.Background(), exampleSpanContext())

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)

	sc, ok := xpropagation.SpanContextFromMetadata(md)
	require.True(t, ok)
	assert.Equal(t, exampleSpanContext(), sc)
}

func TestSpanContextToOutgoingContextCopiesMetadata(t *testing.T) {
	original := metadata.Pairs("tenant", "acme")
	ctx := metadata.NewOutgoingContext(context.Background(), original)

	outCtx := xpropagation.SpanContextToOutgoingContext(ctx, exampleSpanContext())

	// 原 metadata 不被修改
	assert.Empty(t, original.Get(xpropagation.MetaTraceContext))

	// 新 metadata 同时保留既有键与注入的记录
	md, ok := metadata.FromOutgoingContext(outCtx)
	require.True(t, ok)
	assert.Equal(t, []string{"acme"}, md.Get("tenant"))
	_, ok = xpropagation.SpanContextFromMetadata(md)
	assert.True(t, ok)
}

func TestSpanContextToOutgoingContextSkipsInvalid(t *testing.T) {
	ctx := context.Background()
	got := xpropagation.SpanContextToOutgoingContext(ctx, xspanctx.InvalidSpanContext())

	// 无效记录：返回原 context，不创建 outgoing metadata
	assert.Equal(t, ctx, got)
	_, ok := metadata.FromOutgoingContext(got)
	assert.False(t, ok)
}
