package xspanctx

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// TraceIDSize TraceID 的字节长度（128-bit，对应 32 位十六进制字符）。
const TraceIDSize = 16

// TraceID 标识一条完整的分布式链路。
//
// 定长字节数组值类型：赋值即拷贝、可比较、天然不可变。
// 全零值是保留的无效哨兵（见 [InvalidTraceID] 与 [TraceID.IsValid]），
// 除此之外不对内容做任何校验。
type TraceID [TraceIDSize]byte

// NewTraceID 从字节数组创建 TraceID。
func NewTraceID(b [TraceIDSize]byte) TraceID {
	return TraceID(b)
}

// InvalidTraceID 返回保留的无效 TraceID（全零）。
func InvalidTraceID() TraceID {
	return TraceID{}
}

// TraceIDFromBytes 从 buf 的 offset 位置起读取恰好 [TraceIDSize] 字节。
// 偏移量为负或剩余字节不足时返回 [ErrBufferTooShort]。
func TraceIDFromBytes(buf []byte, offset int) (TraceID, error) {
	var id TraceID
	if offset < 0 || offset > len(buf)-TraceIDSize {
		return id, fmt.Errorf("%w: trace id needs %d bytes at offset %d, buffer has %d",
			ErrBufferTooShort, TraceIDSize, offset, len(buf))
	}
	copy(id[:], buf[offset:])
	return id, nil
}

// TraceIDFromHex 解析 32 位十六进制字符串（大小写不敏感）。
// 长度不符或含非法字符时返回 [ErrInvalidHex]。
//
// 注意：全零字符串解析为 [InvalidTraceID]，本函数不拒绝无效哨兵，
// 由调用方按需通过 [TraceID.IsValid] 判断。
func TraceIDFromHex(s string) (TraceID, error) {
	var id TraceID
	if len(s) != TraceIDSize*2 {
		return id, fmt.Errorf("%w: trace id hex needs %d chars, got %d", ErrInvalidHex, TraceIDSize*2, len(s))
	}
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return TraceID{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return id, nil
}

// CopyBytesTo 将 TraceID 写入 dst 的 offset 位置起的恰好 [TraceIDSize] 字节。
// 偏移量为负或剩余空间不足时返回 [ErrBufferTooShort]，此时 dst 不被修改。
func (t TraceID) CopyBytesTo(dst []byte, offset int) error {
	if offset < 0 || offset > len(dst)-TraceIDSize {
		return fmt.Errorf("%w: trace id needs %d bytes at offset %d, buffer has %d",
			ErrBufferTooShort, TraceIDSize, offset, len(dst))
	}
	copy(dst[offset:], t[:])
	return nil
}

// Bytes 返回 TraceID 的字节数组副本。
func (t TraceID) Bytes() [TraceIDSize]byte {
	return t
}

// IsValid 报告 TraceID 是否有效（非全零）。
func (t TraceID) IsValid() bool {
	return t != TraceID{}
}

// String 返回 32 位小写十六进制表示。
func (t TraceID) String() string {
	return hex.EncodeToString(t[:])
}

// MarshalJSON 将 TraceID 序列化为十六进制 JSON 字符串。
func (t TraceID) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON 从十六进制 JSON 字符串反序列化 TraceID。
func (t *TraceID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	id, err := TraceIDFromHex(s)
	if err != nil {
		return err
	}
	*t = id
	return nil
}
