// Package middleware contains the HTTP middleware of the server.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"noteboard/pkg/logger"
)

// HeaderRequestID is the request id header honored and echoed by the server.
const HeaderRequestID = "X-Request-ID"

// UserContextKey is the Locals key carrying the request-scoped context.
const UserContextKey = "userContext"

// NewRequestIDMiddleware attaches a request id to the request context,
// generating one when the client sent none, and echoes it in the response.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		requestCtx := logger.NewRequestIDContext(ctx.Context(), requestID)
		ctx.Locals(UserContextKey, requestCtx)
		ctx.Set(HeaderRequestID, requestID)

		return ctx.Next()
	}
}
