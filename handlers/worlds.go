package handlers

import (
	"world-scribe/app"
	"world-scribe/middleware"
	"world-scribe/models"

	"github.com/gofiber/fiber/v2"
)

// CreateWorld creates a World folder with the default Categories
func CreateWorld(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateWorldRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		worldsFolderPath := req.WorldsFolderPath
		if worldsFolderPath == "" {
			worldsFolderPath = a.WorldsPath
		}

		if _, err := a.Worlds.Create(c.UserContext(), worldsFolderPath, req.NewWorldName); err != nil {
			return serviceError(c, "Failed to create World", err)
		}

		return success(c, fiber.Map{"message": "Created World and default Categories successfully"})
	}
}

// ListWorlds lists the World folders under ?path (or the configured worlds folder)
func ListWorlds(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		root := c.Query("path", a.WorldsPath)
		page, size := pageParams(c)

		worlds, err := a.Worlds.ListWorlds(root, page, size)
		if err != nil {
			return serviceError(c, "Failed to list Worlds", err)
		}

		return success(c, fiber.Map{"worlds": worlds.Items, "hasMore": worlds.HasMore})
	}
}

// SetWorldAccess opens the World at worldFolderPath, or closes the open World
// when no path is given
func SetWorldAccess(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.WorldAccessRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return badRequest(c, "Invalid request body")
			}
		}

		if req.WorldFolderPath == "" {
			if err := a.Worlds.Close(); err != nil {
				return serviceError(c, "Failed to disconnect from World", err)
			}
			return success(c, fiber.Map{"message": "Disconnected from World successfully"})
		}

		if _, err := a.Worlds.Open(c.UserContext(), req.WorldFolderPath, true); err != nil {
			return serviceError(c, "Failed to connect to World", err)
		}

		return success(c, fiber.Map{"message": "Connected to World successfully"})
	}
}

func GetCurrentWorldName(c *fiber.Ctx) error {
	return success(c, fiber.Map{"name": middleware.GetWorld(c).Name})
}
