package xpropagation

import (
	"encoding/hex"
	"fmt"

	"github.com/omeyang/xwire/pkg/trace/xspanctx"
)

// =============================================================================
// HTTP 头文本格式（二进制线格式的十六进制转写）
// =============================================================================

// HTTPHeaderName 承载关联记录的 HTTP 头名称。
const HTTPHeaderName = "Trace-Context"

// hexUpper 大写十六进制字符表。
// 标准库 encoding/hex 只输出小写，而线上已有解析方预期大写，编码侧查表生成。
const hexUpper = "0123456789ABCDEF"

// ToHTTPHeaderValue 将 sc 编码为 HTTP 头文本值。
//
// 文本值是活跃处理器二进制输出的大写十六进制转写，
// 默认处理器下固定为 64 个字符。
func ToHTTPHeaderValue(sc xspanctx.SpanContext) string {
	return encodeHexUpper(ToBinary(sc))
}

// FromHTTPHeaderValue 将 HTTP 头文本值解析回关联记录。
//
// 解析分两层：十六进制转写失败（奇数长度、非十六进制字符）返回
// [ErrMalformedHeaderValue]；转写成功后的字节序列交给 [FromBinary]，
// 版本与字段层面的失败沿用二进制解码的错误分类。
// 空字符串转写为空缓冲区，落在 [ErrUnsupportedVersion] 分类。
//
// 解码侧对大小写宽容：小写与混合大小写的十六进制同样接受。
func FromHTTPHeaderValue(s string) (xspanctx.SpanContext, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return xspanctx.InvalidSpanContext(), fmt.Errorf("%w: %w", ErrMalformedHeaderValue, err)
	}
	return FromBinary(b)
}

// encodeHexUpper 大写十六进制编码（小写版本见标准库 hex.EncodeToString）。
func encodeHexUpper(src []byte) string {
	dst := make([]byte, len(src)*2)
	for i, v := range src {
		dst[i*2] = hexUpper[v>>4]
		dst[i*2+1] = hexUpper[v&0x0f]
	}
	return string(dst)
}
