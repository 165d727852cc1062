package xspanctx

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SpanIDSize SpanID 的字节长度（64-bit，对应 16 位十六进制字符）。
const SpanIDSize = 8

// SpanID 标识链路中的单个操作。
//
// 与 [TraceID] 同构的定长字节数组值类型，全零值是保留的无效哨兵。
type SpanID [SpanIDSize]byte

// NewSpanID 从字节数组创建 SpanID。
func NewSpanID(b [SpanIDSize]byte) SpanID {
	return SpanID(b)
}

// InvalidSpanID 返回保留的无效 SpanID（全零）。
func InvalidSpanID() SpanID {
	return SpanID{}
}

// SpanIDFromBytes 从 buf 的 offset 位置起读取恰好 [SpanIDSize] 字节。
// 偏移量为负或剩余字节不足时返回 [ErrBufferTooShort]。
func SpanIDFromBytes(buf []byte, offset int) (SpanID, error) {
	var id SpanID
	if offset < 0 || offset > len(buf)-SpanIDSize {
		return id, fmt.Errorf("%w: span id needs %d bytes at offset %d, buffer has %d",
			ErrBufferTooShort, SpanIDSize, offset, len(buf))
	}
	copy(id[:], buf[offset:])
	return id, nil
}

// SpanIDFromHex 解析 16 位十六进制字符串（大小写不敏感）。
// 长度不符或含非法字符时返回 [ErrInvalidHex]。
func SpanIDFromHex(s string) (SpanID, error) {
	var id SpanID
	if len(s) != SpanIDSize*2 {
		return id, fmt.Errorf("%w: span id hex needs %d chars, got %d", ErrInvalidHex, SpanIDSize*2, len(s))
	}
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return SpanID{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return id, nil
}

// CopyBytesTo 将 SpanID 写入 dst 的 offset 位置起的恰好 [SpanIDSize] 字节。
// 偏移量为负或剩余空间不足时返回 [ErrBufferTooShort]，此时 dst 不被修改。
func (s SpanID) CopyBytesTo(dst []byte, offset int) error {
	if offset < 0 || offset > len(dst)-SpanIDSize {
		return fmt.Errorf("%w: span id needs %d bytes at offset %d, buffer has %d",
			ErrBufferTooShort, SpanIDSize, offset, len(dst))
	}
	copy(dst[offset:], s[:])
	return nil
}

// Bytes 返回 SpanID 的字节数组副本。
func (s SpanID) Bytes() [SpanIDSize]byte {
	return s
}

// IsValid 报告 SpanID 是否有效（非全零）。
func (s SpanID) IsValid() bool {
	return s != SpanID{}
}

// String 返回 16 位小写十六进制表示。
func (s SpanID) String() string {
	return hex.EncodeToString(s[:])
}

// MarshalJSON 将 SpanID 序列化为十六进制 JSON 字符串。
func (s SpanID) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON 从十六进制 JSON 字符串反序列化 SpanID。
func (s *SpanID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	id, err := SpanIDFromHex(str)
	if err != nil {
		return err
	}
	*s = id
	return nil
}
