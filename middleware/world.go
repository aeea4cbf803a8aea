package middleware

import (
	"world-scribe/world"

	"github.com/gofiber/fiber/v2"
)

// WorldRequired rejects requests with 400 unless a World is open, and makes the
// open World available to handlers through GetWorld. The World stays open
// until the rest of the chain returns.
func WorldRequired(worlds *world.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, release, err := worlds.Acquire()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		defer release()

		c.Locals("world", session)
		c.Locals("worldName", session.Name)
		return c.Next()
	}
}

func GetWorld(c *fiber.Ctx) *world.Session {
	session, ok := c.Locals("world").(*world.Session)
	if !ok {
		return nil
	}
	return session
}
