package xspanctx

import "errors"

// =============================================================================
// Context Key 类型定义
// =============================================================================

// 设计决策: contextKey 使用 string 而非 int+iota，理由如下：
//   - 作为包私有类型，不会与其他包的 context key 冲突（Go context 比较包含类型信息）
//   - 字符串值在调试/日志中可读性高，便于排查 context 传播问题
type contextKey string

// =============================================================================
// 哨兵错误
// =============================================================================

var (
	// ErrNilContext 表示传入的 context 为 nil。
	ErrNilContext = errors.New("xspanctx: nil context")

	// ErrBufferTooShort 表示字节缓冲区长度不满足定长读写要求。
	// FromBytes/CopyBytesTo 系列函数在偏移量为负或剩余字节不足时返回此错误。
	ErrBufferTooShort = errors.New("xspanctx: buffer too short")

	// ErrInvalidHex 表示十六进制字符串解析失败（长度不符或含非法字符）。
	ErrInvalidHex = errors.New("xspanctx: invalid hex string")
)
