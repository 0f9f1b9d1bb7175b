package api

import (
	"github.com/gofiber/fiber/v3"
)

// All JSON API endpoints share a single response envelope. Classification
// and taxonomy payloads are carried under "data" on success; failures carry
// a message under "error". Clients switch on "status".

// jsonSuccess wraps a classification result or taxonomy payload in the
// success envelope: {"status":"ok","data":...}.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError writes the failure envelope {"status":"error","error":message}
// with the given HTTP status, e.g. 400 for rejected input or 404 for an
// unknown taxonomy code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
