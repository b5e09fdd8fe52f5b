package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// HumaMiddleware is the huma counterpart of LoggingWrapper: it creates
// a LogData per request, times the whole operation, and emits one log
// line when the handler completes.
func HumaMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		operationID := ctx.Operation().OperationID

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
