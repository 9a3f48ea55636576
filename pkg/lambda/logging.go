package lambda

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// WithLogging wraps a handler so every invocation emits one structured record
func WithLogging(logger logrus.FieldLogger, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, req *Request) (*Response, error) {
		if req.RequestID == "" {
			req.RequestID = uuid.New().String()
		}

		start := time.Now()
		resp, err := next(ctx, req)
		latency := time.Since(start)

		fields := logrus.Fields{
			"request_id": req.RequestID,
			"method":     req.Method,
			"path":       req.Path,
			"latency_ms": float64(latency.Nanoseconds()) / 1000000,
		}
		if resp != nil {
			fields["status_code"] = resp.StatusCode
			fields["response_size"] = len(resp.Body)
		}

		if err != nil {
			logger.WithFields(fields).WithError(err).Error("Invocation failed")
			return resp, err
		}
		logger.WithFields(fields).Info("Invocation completed")
		return resp, nil
	}
}
