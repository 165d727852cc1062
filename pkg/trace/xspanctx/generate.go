package xspanctx

import "crypto/rand"

// =============================================================================
// ID 生成函数（遵循 W3C Trace Context 规范）
// 参考: https://www.w3.org/TR/trace-context/
// =============================================================================

// isAllZeros 检查字节切片是否全为零。
// 全零标识是保留的无效哨兵，生成函数必须避开。
//
// 设计决策: 未引入可替换的随机源注入点，因为：
//   - crypto/rand 失败属于系统级故障，测试价值有限
//   - 全零概率极低（2^-128 / 2^-64），不值得为此增加生产复杂度
func isAllZeros(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return false
		}
	}
	return true
}

// GenerateTraceID 生成随机的有效 TraceID（128-bit）。
//
// 使用 crypto/rand 保证随机性，适用于分布式追踪场景。
// 全零是保留的无效哨兵，虽然概率极低（2^-128），出现时会重新生成。
//
// Panic 策略说明：如果底层熵源不可用（极罕见的系统级错误），函数会 panic。
// 这是有意的设计选择，原因如下：
//  1. crypto/rand 失败意味着系统无法提供安全随机数，继续运行会导致安全隐患
//  2. 这与 OpenTelemetry 等标准库采用相同的策略
//  3. 此错误在正常运行环境中几乎不可能发生（需要内核级故障）
//  4. 服务在此状态下应立即终止，而非静默降级
func GenerateTraceID() TraceID {
	var id TraceID
	for {
		if _, err := rand.Read(id[:]); err != nil {
			panic("xspanctx: crypto/rand.Read failed: " + err.Error())
		}
		if !isAllZeros(id[:]) {
			return id
		}
		// 全零情况极其罕见（概率 2^-128），重新生成
	}
}

// GenerateSpanID 生成随机的有效 SpanID（64-bit）。
//
// Panic 策略：与 GenerateTraceID 相同，熵源不可用时会 panic。
// 详见 GenerateTraceID 的文档说明。
func GenerateSpanID() SpanID {
	var id SpanID
	for {
		if _, err := rand.Read(id[:]); err != nil {
			panic("xspanctx: crypto/rand.Read failed: " + err.Error())
		}
		if !isAllZeros(id[:]) {
			return id
		}
		// 全零情况极其罕见（概率 2^-64），重新生成
	}
}
