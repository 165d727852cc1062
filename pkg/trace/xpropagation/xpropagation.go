package xpropagation

import "errors"

// =============================================================================
// 哨兵错误
//
// 设计决策: 错误族按失败类别而非调用点划分——版本不匹配、字段载荷截断、
// 文本解码失败是三类语义不同的失败，调用方用 errors.Is 区分后可采取
// 不同策略（如：版本错误提示升级，文本错误直接丢弃该 Header）。
// =============================================================================

var (
	// ErrNilBuffer 表示传入的字节缓冲区为 nil。
	// 注意：空的非 nil 缓冲区不属于此类，按 ErrUnsupportedVersion 处理。
	ErrNilBuffer = errors.New("xpropagation: nil buffer")

	// ErrUnsupportedVersion 表示缓冲区为空或首字节不是处理器识别的版本号。
	// 硬失败：版本不匹配绝不静默容忍（与已识别版本内的字段缺失不同，
	// 后者按默认值优雅降级）。
	ErrUnsupportedVersion = errors.New("xpropagation: unsupported version")

	// ErrMalformedField 表示某个字段标签已被识别、但其载荷字节不足。
	// 区别于 ErrUnsupportedVersion：版本有效、字段结构损坏。
	ErrMalformedField = errors.New("xpropagation: malformed field payload")

	// ErrMalformedHeaderValue 表示 Header 文本不是合法的十六进制
	// （含非十六进制字符或奇数长度），在进入处理器逻辑之前失败。
	ErrMalformedHeaderValue = errors.New("xpropagation: malformed header value")
)
