package helpers

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// JSONSuccess writes the uniform success envelope: {"success": true, ...}.
func JSONSuccess(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// JSONError writes the uniform failure envelope: {"error": message}.
// Unexpected errors are logged and surfaced as an opaque server error.
func JSONError(c *fiber.Ctx, err error) error {
	if apiErr, ok := err.(*APIError); ok {
		return c.Status(apiErr.Status).JSON(fiber.Map{"error": apiErr.Message})
	}
	logrus.WithError(err).WithField("path", c.Path()).Error("unhandled request error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

func FormatFloat(num float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	return math.Round(num*pow) / pow
}
