package xspanctx

import "github.com/google/uuid"

// =============================================================================
// UUID 互操作
//
// TraceID 与 UUID 同为 128-bit，字节布局一一对应。适用于把现有的
// 请求 UUID 复用为链路标识，或反向把链路标识落入以 UUID 建模的系统。
// =============================================================================

// TraceIDFromUUID 从 UUID 创建 TraceID（字节一一对应）。
//
// 注意：uuid.Nil 会转换为 [InvalidTraceID]，调用方按需校验。
func TraceIDFromUUID(u uuid.UUID) TraceID {
	return TraceID(u)
}

// UUID 返回 TraceID 的 UUID 视角（字节一一对应）。
//
// 转换不生成也不校验 RFC 4122 的版本/变体位，仅做字节重解释：
// 随机生成的 TraceID 在 UUID 视角下未必是合法的 v4 UUID。
func (t TraceID) UUID() uuid.UUID {
	return uuid.UUID(t)
}
