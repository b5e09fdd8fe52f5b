package logging

import "context"

type logDataKey struct{}

// WithLogData attaches a LogData to the context so handlers can record
// timings and fields for the request log line.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the request's LogData, or nil when none is attached.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}
