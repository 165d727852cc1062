package xpropagation

import (
	"net/http"
	"strings"

	"github.com/omeyang/xwire/pkg/trace/xspanctx"
)

// =============================================================================
// HTTP 载体（跨服务传播）
//
// 头缺失是常态而非异常，提取统一用 (SpanContext, bool) 而不是 error：
// ok 为 true 表示头存在、解码成功且记录有效（两个标识均非全零）。
// =============================================================================

// SpanContextFromHeader 从 HTTP Header 提取关联记录。
//
// 头缺失、解码失败或记录无效（全零标识）时返回 ok = false。
// 取值前会去除首尾空白，容忍代理层附加的空格。
func SpanContextFromHeader(h http.Header) (xspanctx.SpanContext, bool) {
	if h == nil {
		return xspanctx.InvalidSpanContext(), false
	}

	value := strings.TrimSpace(h.Get(HTTPHeaderName))
	if value == "" {
		return xspanctx.InvalidSpanContext(), false
	}

	sc, err := FromHTTPHeaderValue(value)
	if err != nil || !sc.IsValid() {
		return xspanctx.InvalidSpanContext(), false
	}
	return sc, true
}

// SpanContextToHeader 将关联记录注入 HTTP Header。
//
// 无效记录不注入（避免向下游传播全零标识），nil Header 时为空操作。
func SpanContextToHeader(sc xspanctx.SpanContext, h http.Header) {
	if h == nil || !sc.IsValid() {
		return
	}
	h.Set(HTTPHeaderName, ToHTTPHeaderValue(sc))
}

// SpanContextFromRequest 从 HTTP 请求提取关联记录。
func SpanContextFromRequest(r *http.Request) (xspanctx.SpanContext, bool) {
	if r == nil {
		return xspanctx.InvalidSpanContext(), false
	}
	return SpanContextFromHeader(r.Header)
}

// SpanContextToRequest 将关联记录注入 HTTP 请求，用于跨服务调用时传播。
func SpanContextToRequest(sc xspanctx.SpanContext, r *http.Request) {
	if r == nil || !sc.IsValid() {
		return
	}

	// 防止调用方构造 &http.Request{} 导致 nil Header panic
	if r.Header == nil {
		r.Header = make(http.Header)
	}

	r.Header.Set(HTTPHeaderName, ToHTTPHeaderValue(sc))
}
