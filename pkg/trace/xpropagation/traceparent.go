package xpropagation

import (
	"encoding/hex"
	"strings"

	"github.com/omeyang/xwire/pkg/trace/xspanctx"
)

// =============================================================================
// W3C Traceparent 文本格式
//
// 与本包私有的 Trace-Context 头互补：traceparent 面向 W3C 生态互操作，
// 但只承载单字节 trace-flags，TraceOptions 的保留字节 1..3 不经由此格式传播。
// =============================================================================

// traceparentLen W3C traceparent 固定长度：00-{32}-{16}-{2} = 55 字符
const traceparentLen = 55

// FormatTraceparent 将关联记录格式化为 W3C traceparent（版本 00）。
//
// 记录无效（任一标识全零）时返回空字符串。
// trace-flags 取 TraceOptions 的最低有效字节，保留字节不参与。
//
// W3C Trace Context 规范要求 trace-id、parent-id、trace-flags 必须是
// 小写十六进制。本函数使用固定大小的字节数组减少内存分配。
func FormatTraceparent(sc xspanctx.SpanContext) string {
	if !sc.IsValid() {
		return ""
	}

	tid := sc.TraceID.Bytes()
	sid := sc.SpanID.Bytes()
	opts := sc.TraceOptions.Bytes()

	// traceparent 格式：00-{trace-id}-{span-id}-{trace-flags}
	var buf [traceparentLen]byte
	copy(buf[0:3], "00-")
	hex.Encode(buf[3:35], tid[:])
	buf[35] = '-'
	hex.Encode(buf[36:52], sid[:])
	buf[52] = '-'
	hex.Encode(buf[53:55], opts[:1])
	return string(buf[:])
}

// ParseTraceparent 解析 W3C traceparent 格式。
// 格式：{version}-{trace-id}-{parent-id}-{trace-flags}
// 示例：00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01
//
// W3C 前向兼容性：
//   - 版本 "ff" 保留，始终无效（大小写不敏感）
//   - 未知版本（> "00"）按 version-00 格式解析前 4 个字段
//   - 未来版本可能包含额外字段（用 "-" 分隔），应忽略
//
// 解析端容错：十六进制同时接受大写和小写。全零的 trace-id 或
// parent-id 按 W3C 规范视为无效。
func ParseTraceparent(s string) (xspanctx.SpanContext, bool) {
	if !validateTraceparentStructure(s) {
		return xspanctx.InvalidSpanContext(), false
	}

	traceID, err := xspanctx.TraceIDFromHex(s[3:35])
	if err != nil || !traceID.IsValid() {
		return xspanctx.InvalidSpanContext(), false
	}

	spanID, err := xspanctx.SpanIDFromHex(s[36:52])
	if err != nil || !spanID.IsValid() {
		return xspanctx.InvalidSpanContext(), false
	}

	flags, err := hex.DecodeString(s[53:55])
	if err != nil {
		return xspanctx.InvalidSpanContext(), false
	}

	opts := xspanctx.NewTraceOptions([xspanctx.TraceOptionsSize]byte{flags[0]})
	return xspanctx.NewSpanContext(traceID, spanID, opts), true
}

// hasTraceparentSeparators 验证 traceparent 分隔符位于正确位置。
// 调用方保证 len(s) >= 55。
func hasTraceparentSeparators(s string) bool {
	return s[2] == '-' && s[35] == '-' && s[52] == '-'
}

// validateTraceparentStructure 验证 traceparent 的结构（长度、分隔符、版本、版本长度约束）。
func validateTraceparentStructure(s string) bool {
	// W3C 规范：最小长度 55 字符（{2}-{32}-{16}-{2}）
	if len(s) < traceparentLen || !hasTraceparentSeparators(s) {
		return false
	}
	version := s[0:2]
	if !isValidTraceparentVersion(version) {
		return false
	}
	// W3C 规范：version 00 必须恰好 55 字符，不允许额外字段
	if version == "00" {
		return len(s) == traceparentLen
	}
	// W3C 前向兼容：未知版本如果长度超过 55，第 56 位（索引 55）必须是 '-'
	return len(s) <= traceparentLen || s[traceparentLen] == '-'
}

// isValidTraceparentVersion 验证 traceparent 版本格式（2 个十六进制字符）。
func isValidTraceparentVersion(version string) bool {
	if _, err := hex.DecodeString(version); err != nil {
		return false
	}
	// W3C 规范：版本 "ff" 保留，始终无效（大小写不敏感）
	return !strings.EqualFold(version, "ff")
}
