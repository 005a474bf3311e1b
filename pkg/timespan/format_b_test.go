package timespan_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/vmihailenco/msgpack.v2"
	"gotest.tools/assert"

	"github.com/mailru/timespan/pkg/timespan"
)

func TestMarshalers(t *testing.T) {
	ts := negated(mustCreate(t, 3, 4, 5, 6, 7))

	text, err := ts.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-3.04:05:06.007", string(text))

	data, err := json.Marshal(struct {
		Span *timespan.Timespan `json:"span"`
	}{Span: ts})
	require.NoError(t, err)
	assert.Equal(t, `{"span":"-3.04:05:06.007"}`, string(data))

	packed, err := msgpack.Marshal(ts)
	require.NoError(t, err)

	var unpacked string
	require.NoError(t, msgpack.Unmarshal(packed, &unpacked))
	assert.Equal(t, "-3.04:05:06.007", unpacked)

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, ts.MarshalLogObject(enc))
	assert.Equal(t, "-3.04:05:06.007", enc.Fields["span"])
	assert.Equal(t, int64(-273906007), enc.Fields["ms"])
}

func TestAppendFormat(t *testing.T) {
	ts, err := timespan.New(61001)
	require.NoError(t, err)

	got := ts.AppendFormat([]byte("took "))
	assert.Equal(t, "took 00:01:01.001", string(got))
}
