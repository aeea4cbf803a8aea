package handlers

import (
	"world-scribe/app"
	"world-scribe/middleware"
	"world-scribe/models"

	"github.com/gofiber/fiber/v2"
)

// CreateConnection connects two Articles with a new or existing description
func CreateConnection(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateConnectionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		connection, err := middleware.GetWorld(c).Connections.Create(c.UserContext(), req)
		if err != nil {
			return serviceError(c, "Failed to create Connection", err)
		}

		return created(c, fiber.Map{"connection": connection})
	}
}

func UpdateConnectionRole(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid Connection ID")
		}

		var req models.UpdateConnectionRoleRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		connection, err := middleware.GetWorld(c).Connections.UpdateRole(c.UserContext(), id, req.OtherArticleRole)
		if err != nil {
			return serviceError(c, "Failed to update Connection", err)
		}

		return success(c, fiber.Map{"connection": connection})
	}
}

// UpdateConnectionDescription rewrites a description shared by one or more Connections
func UpdateConnectionDescription(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ConnectionDescription ID")
	}

	var req models.UpdateConnectionDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	description, err := middleware.GetWorld(c).Connections.UpdateDescription(c.UserContext(), id, req.Content)
	if err != nil {
		return serviceError(c, "Failed to update ConnectionDescription", err)
	}

	return success(c, fiber.Map{"connectionDescription": description})
}

func DeleteConnection(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Connection ID")
	}

	connection, err := middleware.GetWorld(c).Connections.Delete(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to delete Connection", err)
	}

	return success(c, fiber.Map{"connection": connection})
}
