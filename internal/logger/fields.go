package logger

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldJobID is the structured log field key for the job being staffed.
	FieldJobID = "job_id"
	// FieldJobTitle is the structured log field key for the job title.
	FieldJobTitle = "job_title"
	// FieldCommand is the structured log field key for the running CLI command.
	FieldCommand = "command"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// JobFields returns the fields that identify a job in every log entry of a run.
// A zero id and an empty title are omitted.
func JobFields(jobID int64, title string) []zap.Field {
	id := ""
	if jobID != 0 {
		id = strconv.FormatInt(jobID, 10)
	}
	return StringFields(
		StringField{Key: FieldJobID, Value: id},
		StringField{Key: FieldJobTitle, Value: title},
	)
}

// WithJobFields attaches the job fields to the provided logger.
func WithJobFields(logger *zap.Logger, jobID int64, title string) *zap.Logger {
	return WithFields(logger, JobFields(jobID, title)...)
}

// WithCommand tags the logger with the name of the running command.
func WithCommand(logger *zap.Logger, command string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldCommand, Value: command})...)
}
