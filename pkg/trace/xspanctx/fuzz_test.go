package xspanctx_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/omeyang/xwire/pkg/trace/xspanctx"
)

// =============================================================================
// 十六进制解析 Fuzz 测试
// =============================================================================

func FuzzTraceIDFromHex(f *testing.F) {
	f.Add("0af7651916cd43dd8448eb211c80319c")
	f.Add("0AF7651916CD43DD8448EB211C80319C")
	f.Add("00000000000000000000000000000000")
	f.Add("")
	f.Add("zz")
	f.Add("0af7651916cd43dd8448eb211c80319")    // 奇数长度
	f.Add("0af7651916cd43dd8448eb211c80319cff") // 过长

	f.Fuzz(func(t *testing.T, s string) {
		id, err := xspanctx.TraceIDFromHex(s)
		if err != nil {
			// 失败必须落在哨兵错误上，不应该 panic
			if !errors.Is(err, xspanctx.ErrInvalidHex) {
				t.Errorf("TraceIDFromHex(%q) error = %v, want ErrInvalidHex", s, err)
			}
			return
		}
		// 解析成功则 String() 是输入的小写形式
		if got := id.String(); got != strings.ToLower(s) {
			t.Errorf("TraceIDFromHex(%q).String() = %q, want %q", s, got, strings.ToLower(s))
		}
	})
}

func FuzzSpanIDFromHex(f *testing.F) {
	f.Add("b7ad6b7169203331")
	f.Add("B7AD6B7169203331")
	f.Add("0000000000000000")
	f.Add("")
	f.Add("b7ad")

	f.Fuzz(func(t *testing.T, s string) {
		id, err := xspanctx.SpanIDFromHex(s)
		if err != nil {
			if !errors.Is(err, xspanctx.ErrInvalidHex) {
				t.Errorf("SpanIDFromHex(%q) error = %v, want ErrInvalidHex", s, err)
			}
			return
		}
		if got := id.String(); got != strings.ToLower(s) {
			t.Errorf("SpanIDFromHex(%q).String() = %q, want %q", s, got, strings.ToLower(s))
		}
	})
}

// =============================================================================
// 字节缓冲区读写 Fuzz 测试
// =============================================================================

func FuzzTraceIDFromBytes(f *testing.F) {
	f.Add([]byte{}, 0)
	f.Add(make([]byte, xspanctx.TraceIDSize), 0)
	f.Add(make([]byte, xspanctx.TraceIDSize+4), 4)
	f.Add(make([]byte, xspanctx.TraceIDSize), -1)
	f.Add(make([]byte, 3), 100)

	f.Fuzz(func(t *testing.T, buf []byte, offset int) {
		// 任意缓冲区/偏移组合都不应该 panic
		id, err := xspanctx.TraceIDFromBytes(buf, offset)
		if err != nil {
			if !errors.Is(err, xspanctx.ErrBufferTooShort) {
				t.Errorf("TraceIDFromBytes() error = %v, want ErrBufferTooShort", err)
			}
			return
		}
		// 读取成功则写回同一偏移得到相同字节
		out := make([]byte, len(buf))
		copy(out, buf)
		if err := id.CopyBytesTo(out, offset); err != nil {
			t.Fatalf("CopyBytesTo() error = %v after successful read", err)
		}
		back, err := xspanctx.TraceIDFromBytes(out, offset)
		if err != nil || back != id {
			t.Errorf("write-back mismatch: %v vs %v (err=%v)", back, id, err)
		}
	})
}

func FuzzTraceOptionsUint32RoundTrip(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(1))
	f.Add(uint32(0x12345678))
	f.Add(^uint32(0))

	f.Fuzz(func(t *testing.T, v uint32) {
		opts := xspanctx.TraceOptionsFromUint32(v)
		if got := opts.Uint32(); got != v {
			t.Errorf("Uint32 round-trip = %#x, want %#x", got, v)
		}
		// 采样位只由 bit 0 决定
		if opts.IsSampled() != (v&1 == 1) {
			t.Errorf("IsSampled() = %v for %#x", opts.IsSampled(), v)
		}
	})
}
