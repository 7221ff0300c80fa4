package presenters

import (
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends the failure envelope. The message is the stable,
// user-facing category; err carries the short cause. Internal details stay in
// the server logs.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(status).JSON(res)
}
