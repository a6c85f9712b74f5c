package util

import (
	"fmt"
	"math"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends back an error http response to the client. The body
// carries a generic message only; upstream error detail stays in the server logs.
func ErrorResponse(ctx *fiber.Ctx, statusCode int, message string) error {
	return ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// FormatTime returns a playback position in ``m:ss`` format with the seconds
// zero-padded to two digits. Unknown durations (NaN, negative) display as 0:00.
func FormatTime(sec float64) string {
	if math.IsNaN(sec) || sec < 0 {
		return "0:00"
	}
	m := int(sec) / 60
	s := int(sec) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
