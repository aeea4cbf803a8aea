package handlers

import (
	"world-scribe/app"
	"world-scribe/middleware"
	"world-scribe/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory creates a Category in the open World
func CreateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		category, err := middleware.GetWorld(c).Categories.Create(c.UserContext(), req.Name, req.Description)
		if err != nil {
			return serviceError(c, "Failed to create Category", err)
		}

		return created(c, fiber.Map{"category": category})
	}
}

func GetCategories(c *fiber.Ctx) error {
	page, size := pageParams(c)

	categories, err := middleware.GetWorld(c).Categories.List(c.UserContext(), page, size)
	if err != nil {
		return serviceError(c, "Failed to fetch Categories", err)
	}

	return success(c, fiber.Map{"categories": categories.Items, "hasMore": categories.HasMore})
}

func GetCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Category ID")
	}

	category, err := middleware.GetWorld(c).Categories.Get(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to fetch Category", err)
	}

	return success(c, fiber.Map{"category": category})
}

func GetCategoryMetadata(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Category ID")
	}

	meta, err := middleware.GetWorld(c).Categories.GetMetadata(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to fetch Category", err)
	}

	return success(c, fiber.Map{"category": meta})
}

func UpdateCategoryName(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid Category ID")
		}

		var req models.UpdateNameRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		category, err := middleware.GetWorld(c).Categories.UpdateName(c.UserContext(), id, req.Name)
		if err != nil {
			return serviceError(c, "Failed to update Category", err)
		}

		return success(c, fiber.Map{"category": category})
	}
}

func UpdateCategoryDescription(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Category ID")
	}

	var req models.UpdateDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	category, err := middleware.GetWorld(c).Categories.UpdateDescription(c.UserContext(), id, req.Description)
	if err != nil {
		return serviceError(c, "Failed to update Category", err)
	}

	return success(c, fiber.Map{"category": category})
}

// SetCategoryImage replaces the Category image with the multipart "image" file
func SetCategoryImage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid Category ID")
		}

		data, mimeType, err := readImageUpload(c, a.Validator)
		if err != nil {
			return serviceError(c, "Failed to read image", err)
		}

		category, err := middleware.GetWorld(c).Categories.SetImage(c.UserContext(), id, data, mimeType)
		if err != nil {
			return serviceError(c, "Failed to save image", err)
		}

		return success(c, fiber.Map{"category": category})
	}
}

func GetCategoryImage(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Category ID")
	}

	image, err := middleware.GetWorld(c).Categories.GetImage(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to fetch image", err)
	}

	return sendImage(c, image)
}

// DeleteCategory deletes a Category with all of its Articles and Fields
func DeleteCategory(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Category ID")
	}

	category, err := middleware.GetWorld(c).Categories.Delete(c.UserContext(), id)
	if err != nil {
		return serviceError(c, "Failed to delete Category", err)
	}

	return success(c, fiber.Map{"category": category})
}

func GetCategoryArticles(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Category ID")
	}
	page, size := pageParams(c)

	articles, err := middleware.GetWorld(c).Articles.ListByCategory(c.UserContext(), id, page, size)
	if err != nil {
		return serviceError(c, "Failed to fetch Articles", err)
	}

	return success(c, fiber.Map{"articles": articles.Items, "hasMore": articles.HasMore})
}
