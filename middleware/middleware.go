package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger tags each incoming request with an id and logs it on the way in.
type RequestLogger struct {
	Logger *zap.Logger
}

func NewRequestLogger(logger *zap.Logger) *RequestLogger {
	return &RequestLogger{Logger: logger}
}

// LogIncomingRequest logs the caller, method and path of every request and
// stores a request id in the context locals.
func (m *RequestLogger) LogIncomingRequest(ctx *fiber.Ctx) error {
	requestID := uuid.New().String()
	ctx.Locals("requestID", requestID)
	m.Logger.Info("[middleware][LogIncomingRequest] incoming request",
		zap.String("request_id", requestID),
		zap.String("ip", ctx.IP()),
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
	)
	return ctx.Next()
}
