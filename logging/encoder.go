package logging

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var bufferPool = buffer.NewPool()

// encoderConfig is the shared field layout: timestamp, level, logger,
// message, then the structured sub-records as fields.
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    levelNameEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
}

// levelNameEncoder renders levels by their platform name, including the
// custom trace level that zapcore cannot name itself.
func levelNameEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(LevelName(l))
}

// newEncoder selects the output mode: single-line JSON entries, or
// human-readable console lines with an optional pretty field block in
// development.
func newEncoder(jsonMode, development bool) zapcore.Encoder {
	if jsonMode {
		return zapcore.NewJSONEncoder(encoderConfig())
	}
	return consoleEncoder{
		Encoder: zapcore.NewJSONEncoder(encoderConfig()),
		pretty:  development,
	}
}

// consoleEncoder renders entries as
//
//	<marker> [<timestamp>] <service> <LEVEL>: <message>
//
// with accumulated fields appended as an indented JSON block when pretty
// output is enabled. The embedded JSON encoder carries fields added via
// Core.With so Clone keeps them.
type consoleEncoder struct {
	zapcore.Encoder
	pretty bool
}

// Clone implements zapcore.Encoder.
func (c consoleEncoder) Clone() zapcore.Encoder {
	return consoleEncoder{Encoder: c.Encoder.Clone(), pretty: c.pretty}
}

// EncodeEntry implements zapcore.Encoder.
func (c consoleEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := bufferPool.Get()

	line.AppendString(levelMarker(ent.Level))
	line.AppendString(" [")
	line.AppendString(ent.Time.Format("2006-01-02T15:04:05.000Z07:00"))
	line.AppendString("] ")
	if ent.LoggerName != "" {
		line.AppendString(ent.LoggerName)
		line.AppendByte(' ')
	}
	line.AppendString(strings.ToUpper(LevelName(ent.Level)))
	line.AppendString(": ")
	line.AppendString(ent.Message)

	if c.pretty && len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range fields {
			f.AddTo(enc)
		}
		if block, err := json.MarshalIndent(enc.Fields, "", "  "); err == nil {
			line.AppendByte('\n')
			_, _ = line.Write(block)
		}
	}

	line.AppendString(zapcore.DefaultLineEnding)
	return line, nil
}

func levelMarker(l zapcore.Level) string {
	switch {
	case l <= TraceLevel:
		return "·"
	case l == DebugLevel:
		return "⚙"
	case l == InfoLevel:
		return "ℹ"
	case l == WarnLevel:
		return "⚠"
	case l == ErrorLevel:
		return "✗"
	default:
		return "‼"
	}
}
