package handlers

import (
	"world-scribe/app"
	"world-scribe/middleware"
	"world-scribe/models"

	"github.com/gofiber/fiber/v2"
)

func CreateSnippet(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateSnippetRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		snippet, err := middleware.GetWorld(c).Snippets.Create(c.UserContext(), req.ArticleID, req.Name, req.Content)
		if err != nil {
			return serviceError(c, "Failed to create Snippet", err)
		}

		return created(c, fiber.Map{"snippet": snippet})
	}
}

func GetSnippet(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Snippet ID")
	}

	snippet, err := middleware.GetWorld(c).Snippets.Get(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to fetch Snippet", err)
	}

	return success(c, fiber.Map{"snippet": snippet})
}

// UpdateSnippet changes the name and/or content of a Snippet
func UpdateSnippet(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid Snippet ID")
		}

		var req models.UpdateSnippetRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		snippet, err := middleware.GetWorld(c).Snippets.Update(c.UserContext(), id, req.Name, req.Content)
		if err != nil {
			return serviceError(c, "Failed to update Snippet", err)
		}

		return success(c, fiber.Map{"snippet": snippet})
	}
}

func DeleteSnippet(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Snippet ID")
	}

	snippet, err := middleware.GetWorld(c).Snippets.Delete(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to delete Snippet", err)
	}

	return success(c, fiber.Map{"snippet": snippet})
}
