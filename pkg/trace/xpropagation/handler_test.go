package xpropagation_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xwire/pkg/trace/xpropagation"
	"github.com/omeyang/xwire/pkg/trace/xspanctx"
)

// versionOneHandler 假想的版本 1 处理器：布局与版本 0 相同，仅版本字节不同。
// 用于验证处理器槽位的替换语义。
type versionOneHandler struct{}

func (versionOneHandler) ToBinaryFormat(sc xspanctx.SpanContext) []byte {
	buf := xpropagation.DefaultHandler{}.ToBinaryFormat(sc)
	buf[0] = 1
	return buf
}

func (versionOneHandler) FromBinaryFormat(b []byte) (xspanctx.SpanContext, error) {
	if len(b) == 0 || b[0] != 1 {
		return xspanctx.InvalidSpanContext(), xpropagation.ErrUnsupportedVersion
	}
	rebased := append([]byte{0}, b[1:]...)
	return xpropagation.DefaultHandler{}.FromBinaryFormat(rebased)
}

func TestActiveHandlerDefault(t *testing.T) {
	h := xpropagation.ActiveHandler()
	require.NotNil(t, h)

	wire := h.ToBinaryFormat(exampleSpanContext())
	assert.Equal(t, byte(0), wire[0], "default handler must emit version 0")
	assert.Len(t, wire, 32)
}

func TestSetHandlerSwapsFacade(t *testing.T) {
	t.Cleanup(xpropagation.ResetHandler)

	xpropagation.SetHandler(versionOneHandler{})

	wire := xpropagation.ToBinary(exampleSpanContext())
	require.Equal(t, byte(1), wire[0])

	sc, err := xpropagation.FromBinary(wire)
	require.NoError(t, err)
	assert.Equal(t, exampleSpanContext(), sc)

	// 头文本门面同样经过活跃处理器
	assert.True(t, strings.HasPrefix(xpropagation.ToHTTPHeaderValue(exampleSpanContext()), "01"))
}

func TestSetHandlerNilIgnored(t *testing.T) {
	t.Cleanup(xpropagation.ResetHandler)

	xpropagation.SetHandler(versionOneHandler{})
	xpropagation.SetHandler(nil)

	// nil 被忽略，之前替换的处理器仍然生效
	assert.Equal(t, byte(1), xpropagation.ToBinary(exampleSpanContext())[0])
}

func TestResetHandler(t *testing.T) {
	xpropagation.SetHandler(versionOneHandler{})
	xpropagation.ResetHandler()

	assert.Equal(t, byte(0), xpropagation.ToBinary(exampleSpanContext())[0])
}

// 并发读取方在处理器切换期间观察到的输出必须完整来自某一个处理器，
// 绝无两个版本混合的字节序列。
func TestConcurrentHandlerSwap(t *testing.T) {
	t.Cleanup(xpropagation.ResetHandler)

	sc := exampleSpanContext()
	v0 := xpropagation.DefaultHandler{}.ToBinaryFormat(sc)
	v1 := versionOneHandler{}.ToBinaryFormat(sc)

	stop := make(chan struct{})
	var swapper errgroup.Group
	swapper.Go(func() error {
		for i := 0; ; i++ {
			select {
			case <-stop:
				return nil
			default:
			}
			if i%2 == 0 {
				xpropagation.SetHandler(versionOneHandler{})
			} else {
				xpropagation.SetHandler(xpropagation.DefaultHandler{})
			}
		}
	})

	var readers errgroup.Group
	for r := 0; r < 4; r++ {
		readers.Go(func() error {
			for i := 0; i < 2000; i++ {
				wire := xpropagation.ToBinary(sc)
				if !bytes.Equal(wire, v0) && !bytes.Equal(wire, v1) {
					return fmt.Errorf("mixed wire format observed: %v", wire)
				}

				decoded, err := xpropagation.FromBinary(wire)
				if err != nil {
					// 编码与解码之间发生了切换，版本失配是合法结果
					if !errors.Is(err, xpropagation.ErrUnsupportedVersion) {
						return err
					}
					continue
				}
				if decoded != sc {
					return fmt.Errorf("decoded = %v, want %v", decoded, sc)
				}
			}
			return nil
		})
	}

	require.NoError(t, readers.Wait())
	close(stop)
	require.NoError(t, swapper.Wait())
}
