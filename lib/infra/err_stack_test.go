package infra

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var initPC = caller()

func caller() Frame {
	var PCs [3]uintptr
	n := runtime.Callers(2, PCs[:])
	frames := runtime.CallersFrames(PCs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{initPC, "%s", "err_stack_test.go"},
		{initPC, "%n", "init"},
		{initPC, "%d", "15"},
		{initPC, "%v", "err_stack_test.go:15"},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
	}

	for _, tc := range testcases {
		frameRes := fmt.Sprintf(tc.format, tc.Frame)
		require.Equal(t, tc.want, frameRes)
	}

	full := fmt.Sprintf("%+v", initPC)
	require.True(t, strings.HasPrefix(full, "github.com/benz9527/xtree/lib/infra.init\n\t"))
	require.True(t, strings.HasSuffix(full, "err_stack_test.go:15"))
}

func TestFrameMarshal(t *testing.T) {
	text, err := initPC.MarshalText()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(text), "github.com/benz9527/xtree/lib/infra.init "))

	text, err = Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(text))

	_bytes, err := json.Marshal(Frame(0))
	require.NoError(t, err)
	require.Equal(t, `{"frame":"unknownFrame"}`, string(_bytes))

	_bytes, err = json.Marshal(initPC)
	require.NoError(t, err)
	res := map[string]string{}
	require.NoError(t, json.Unmarshal(_bytes, &res))
	require.Equal(t, "github.com/benz9527/xtree/lib/infra.init", res["func"])
	require.True(t, strings.HasSuffix(res["fileAndLine"], "err_stack_test.go:15"))
}

var errTestSentinel = errors.New("sentinel")

func TestErrorStack(t *testing.T) {
	err := NewErrorStack("plain")
	require.Equal(t, "plain", err.Error())
	require.Nil(t, errors.Unwrap(err))

	es, ok := err.(ErrorStack)
	require.True(t, ok)
	require.NotEmpty(t, es.Frames())
	require.Equal(t, "TestErrorStack", fmt.Sprintf("%n", es.Frames()[0]))

	err = WrapErrorStackWithMessage(errTestSentinel, "wrapped")
	require.Equal(t, "wrapped: sentinel", err.Error())
	require.ErrorIs(t, err, errTestSentinel)
	require.Equal(t, "wrapped: sentinel", fmt.Sprintf("%v", err))
	require.Equal(t, `"wrapped: sentinel"`, fmt.Sprintf("%q", err))
	require.Contains(t, fmt.Sprintf("%+v", err), "err_stack_test.go")

	err = WrapErrorStack(errTestSentinel)
	require.Equal(t, "sentinel", err.Error())
	require.ErrorIs(t, err, errTestSentinel)

	require.Nil(t, WrapErrorStack(nil))
	require.Nil(t, WrapErrorStackWithMessage(nil, "ignored"))
}

func TestErrorStackMarshalLogObject(t *testing.T) {
	err := WrapErrorStackWithMessage(errTestSentinel, "zap")
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, err.(ErrorStack).MarshalLogObject(enc))
	require.Equal(t, "zap: sentinel", enc.Fields["error"])
	frames, ok := enc.Fields["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
}
