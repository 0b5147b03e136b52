package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const redacted = "***"

// redactingCore replaces secrets in messages and string or error fields.
type redactingCore struct {
	zapcore.Core
	secrets []string
}

// NewRedactingCore wraps core so that none of secrets reaches the output.
// Empty secrets are ignored.
func NewRedactingCore(core zapcore.Core, secrets ...string) zapcore.Core {
	var keep []string
	for _, s := range secrets {
		if s != "" {
			keep = append(keep, s)
		}
	}
	if len(keep) == 0 {
		return core
	}
	return &redactingCore{Core: core, secrets: keep}
}

func (c *redactingCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactingCore{Core: c.Core.With(c.fields(fields)), secrets: c.secrets}
}

func (c *redactingCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *redactingCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ent.Message = c.scrub(ent.Message)
	return c.Core.Write(ent, c.fields(fields))
}

func (c *redactingCore) scrub(s string) string {
	return Scrub(s, c.secrets...)
}

// Scrub replaces every non-empty secret in s.
func Scrub(s string, secrets ...string) string {
	for _, secret := range secrets {
		if secret != "" {
			s = strings.ReplaceAll(s, secret, redacted)
		}
	}
	return s
}

func (c *redactingCore) fields(fields []zapcore.Field) []zapcore.Field {
	out := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		switch f.Type {
		case zapcore.StringType:
			f.String = c.scrub(f.String)
		case zapcore.ErrorType:
			if err, ok := f.Interface.(error); ok && err != nil {
				f = zap.String(f.Key, c.scrub(err.Error()))
			}
		}
		out[i] = f
	}
	return out
}
