package xpropagation

import (
	"sync/atomic"

	"github.com/omeyang/xwire/pkg/trace/xspanctx"
)

// =============================================================================
// 版本处理器与进程级槽位
//
// 定位：活跃线格式版本是进程级策略，不是逐调用参数。槽位存在的意义是
// 新版本灰度发布与测试替换，常规调用方不应触碰它。
// =============================================================================

// Handler 单一线格式版本的编解码器。
//
// 实现必须满足：
//   - ToBinaryFormat 是纯函数：无共享状态修改，相同输入产生字节级相同的输出
//   - FromBinaryFormat 必须校验前导版本字节，版本失败（ErrUnsupportedVersion）
//     与字段载荷损坏（ErrMalformedField）必须可区分
//   - 实例构造后不可变（会被并发调用方无锁共享）
type Handler interface {
	// ToBinaryFormat 产生版本特定的线格式表示。
	ToBinaryFormat(sc xspanctx.SpanContext) []byte

	// FromBinaryFormat 将线格式表示解析回关联记录。
	FromBinaryFormat(b []byte) (xspanctx.SpanContext, error)
}

// activeHandler 进程级活跃处理器槽位（并发安全）。
// nil 表示未被替换过，读取方回退到 DefaultHandler。
var activeHandler atomic.Pointer[Handler]

// ActiveHandler 返回当前活跃的处理器。
//
// 并发安全：atomic.Pointer 读取，无锁。
//
// 设计决策: 与 xlog 的全局 Logger 不同，这里不需要 sync.Once 惰性构造——
// DefaultHandler 是无状态零值类型，未替换时直接返回新值即可，语义等价
// 且省去一次初始化同步。
func ActiveHandler() Handler {
	if h := activeHandler.Load(); h != nil {
		return *h
	}
	return DefaultHandler{}
}

// SetHandler 替换进程级活跃处理器。
//
// 管理性操作：用于测试或未来线格式版本的灰度发布，不应逐调用使用。
// 单次原子发布：并发的编解码调用观察到旧处理器或新处理器之一，
// 绝无部分构造状态。
//
// 注意：如果传入 nil，操作会被忽略（不会修改当前处理器）。
// 要恢复默认处理器，请使用 ResetHandler()。
func SetHandler(h Handler) {
	if h == nil {
		// 拒绝 nil，避免后续编解码调用 panic
		return
	}
	activeHandler.Store(&h)
}

// ResetHandler 恢复默认处理器（仅用于测试）。
//
// 并发安全：atomic.Pointer 写入。
func ResetHandler() {
	activeHandler.Store(nil)
}
