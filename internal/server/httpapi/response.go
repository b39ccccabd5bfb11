package httpapi

import "github.com/gofiber/fiber/v2"

// response is the JSON envelope every endpoint returns:
// {success, data?, error?, message?}.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(response{Success: true, Data: data})
}

func okMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(response{Success: true, Message: message})
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(response{Success: false, Error: msg})
}
