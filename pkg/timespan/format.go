package timespan

import (
	"strconv"

	"github.com/gobwas/pool/pbytes"
	"go.uber.org/zap/zapcore"
	"gopkg.in/vmihailenco/msgpack.v2"
)

// Longest form: "-100000000.23:59:59.999".
const maxFormatLen = 24

// Buffers handed out by formatPool; the bucket size must be a power of two.
const formatBufSize = 32

var formatPool = pbytes.New(formatBufSize, formatBufSize)

// AppendFormat appends the canonical form of t, "[-][D.]hh:mm:ss.fff", to b.
// The day prefix is written only when the day component is not zero.
func (t Timespan) AppendFormat(b []byte) []byte {
	if t.ms < 0 {
		b = append(b, '-')
	}

	abs := t.abs()

	if days := abs / MillisecondsPerDay; days != 0 {
		b = strconv.AppendInt(b, days, 10)
		b = append(b, '.')
	}

	b = appendPadded(b, abs/MillisecondsPerHour%24, 2)
	b = append(b, ':')
	b = appendPadded(b, abs/MillisecondsPerMinute%60, 2)
	b = append(b, ':')
	b = appendPadded(b, abs/MillisecondsPerSecond%60, 2)
	b = append(b, '.')
	b = appendPadded(b, abs%MillisecondsPerSecond, 3)

	return b
}

func appendPadded(b []byte, v int64, width int) []byte {
	start := len(b)
	b = strconv.AppendInt(b, v, 10)

	for len(b)-start < width {
		b = append(b, 0)
		copy(b[start+1:], b[start:])
		b[start] = '0'
	}

	return b
}

func (t Timespan) String() string {
	buf := formatPool.GetCap(formatBufSize)
	buf = t.AppendFormat(buf)
	s := string(buf)
	formatPool.Put(buf)

	return s
}

// MarshalText implements encoding.TextMarshaler. There is no matching
// unmarshaler: the canonical form is output only.
func (t Timespan) MarshalText() ([]byte, error) {
	return t.AppendFormat(make([]byte, 0, maxFormatLen)), nil
}

func (t Timespan) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, maxFormatLen+2)
	b = append(b, '"')
	b = t.AppendFormat(b)
	b = append(b, '"')

	return b, nil
}

// EncodeMsgpack writes t as a msgpack string in canonical form.
func (t Timespan) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(t.String())
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (t Timespan) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("span", t.String())
	enc.AddInt64("ms", t.ms)

	return nil
}
