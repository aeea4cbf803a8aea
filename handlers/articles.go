package handlers

import (
	"world-scribe/app"
	"world-scribe/middleware"
	"world-scribe/models"

	"github.com/gofiber/fiber/v2"
)

// CreateArticle creates an Article with empty values for its Category's Fields
func CreateArticle(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateArticleRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		article, err := middleware.GetWorld(c).Articles.Create(c.UserContext(), req.Name, req.CategoryID)
		if err != nil {
			return serviceError(c, "Failed to create Article", err)
		}

		return created(c, fiber.Map{"article": article})
	}
}

func GetArticles(c *fiber.Ctx) error {
	page, size := pageParams(c)

	articles, err := middleware.GetWorld(c).Articles.List(c.UserContext(), page, size)
	if err != nil {
		return serviceError(c, "Failed to fetch Articles", err)
	}

	return success(c, fiber.Map{"articles": articles.Items, "hasMore": articles.HasMore})
}

func GetArticle(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Article ID")
	}

	article, err := middleware.GetWorld(c).Articles.Get(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to fetch Article", err)
	}

	return success(c, fiber.Map{"article": article})
}

func GetArticleMetadata(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Article ID")
	}

	meta, err := middleware.GetWorld(c).Articles.GetMetadata(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to fetch Article", err)
	}

	return success(c, fiber.Map{"article": meta})
}

func GetArticleFieldValues(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Article ID")
	}

	values, err := middleware.GetWorld(c).Articles.GetFieldValues(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to fetch field values", err)
	}

	return success(c, fiber.Map{"fieldValues": values})
}

func UpdateArticleName(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid Article ID")
		}

		var req models.UpdateNameRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		article, err := middleware.GetWorld(c).Articles.UpdateName(c.UserContext(), id, req.Name)
		if err != nil {
			return serviceError(c, "Failed to update Article", err)
		}

		return success(c, fiber.Map{"article": article})
	}
}

// SetArticleImage replaces the Article image with the multipart "image" file
func SetArticleImage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid Article ID")
		}

		data, mimeType, err := readImageUpload(c, a.Validator)
		if err != nil {
			return serviceError(c, "Failed to read image", err)
		}

		article, err := middleware.GetWorld(c).Articles.SetImage(c.UserContext(), id, data, mimeType)
		if err != nil {
			return serviceError(c, "Failed to save image", err)
		}

		return success(c, fiber.Map{"article": article})
	}
}

func GetArticleImage(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Article ID")
	}

	image, err := middleware.GetWorld(c).Articles.GetImage(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to fetch image", err)
	}

	return sendImage(c, image)
}

// DeleteArticle deletes an Article with its Connections, field values and Snippets
func DeleteArticle(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Article ID")
	}

	article, err := middleware.GetWorld(c).Articles.Delete(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to delete Article", err)
	}

	return success(c, fiber.Map{"article": article})
}

func GetArticleConnections(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Article ID")
	}

	connections, err := middleware.GetWorld(c).Connections.ListForArticle(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to fetch Connections", err)
	}

	return success(c, fiber.Map{"connections": connections})
}

func GetArticleSnippets(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Article ID")
	}

	snippets, err := middleware.GetWorld(c).Snippets.ListForArticle(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to fetch Snippets", err)
	}

	return success(c, fiber.Map{"snippets": snippets})
}
