package handlers

import (
	"world-scribe/app"
	"world-scribe/middleware"
	"world-scribe/models"

	"github.com/gofiber/fiber/v2"
)

// CreateField adds a Field to a Category
func CreateField(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categoryID, ok := paramID(c, "id")
		if !ok {
			return badRequest(c, "Invalid Category ID")
		}

		var req models.CreateFieldRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		field, err := middleware.GetWorld(c).Fields.Create(c.UserContext(), categoryID, req.Name)
		if err != nil {
			return serviceError(c, "Failed to create Field", err)
		}

		return created(c, fiber.Map{"field": field})
	}
}

func GetCategoryFields(c *fiber.Ctx) error {
	categoryID, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid Category ID")
	}

	fields, err := middleware.GetWorld(c).Fields.ListByCategory(c.UserContext(), categoryID)
	if err != nil {
		return serviceError(c, "Failed to fetch Fields", err)
	}

	return success(c, fiber.Map{"fields": fields})
}

// UpdateFieldValue sets the value an Article holds for one of its Category's Fields
func UpdateFieldValue(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		articleID, ok := paramID(c, "articleId")
		if !ok {
			return badRequest(c, "Invalid Article ID")
		}
		fieldID, ok := paramID(c, "fieldId")
		if !ok {
			return badRequest(c, "Invalid Field ID")
		}

		var req models.UpdateFieldValueRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		fieldValue, err := middleware.GetWorld(c).FieldValues.Update(c.UserContext(), fieldID, articleID, req.Value)
		if err != nil {
			return serviceError(c, "Failed to update field value", err)
		}

		return success(c, fiber.Map{"fieldValue": fieldValue})
	}
}
