package handlers

import (
	"errors"
	"io"
	"log/slog"

	"world-scribe/models"
	"world-scribe/pagination"
	"world-scribe/services"
	"world-scribe/storage"
	"world-scribe/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   errs.Error(),
			"details": errs,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

// serviceError maps the service error taxonomy to a status code. Anything
// untyped is a server error reported as message.
func serviceError(c *fiber.Ctx, message string, err error) error {
	var (
		validationErr   *services.ValidationError
		notFoundErr     *services.NotFoundError
		conflictErr     *services.ConflictError
		notConnectedErr *services.NotConnectedError
	)

	switch {
	case errors.As(err, &validationErr):
		return badRequest(c, validationErr.Message)
	case errors.As(err, &notConnectedErr):
		return badRequest(c, notConnectedErr.Error())
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Message})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": conflictErr.Message})
	default:
		return serverErrorWithDetails(c, message, err)
	}
}

// paramID reads a positive integer route parameter
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// pageParams reads page and size, falling back to the defaults on bad input
func pageParams(c *fiber.Ctx) (int, int) {
	return pagination.Normalize(
		c.QueryInt("page", pagination.DefaultPage),
		c.QueryInt("size", pagination.DefaultSize),
	)
}

// readImageUpload loads the multipart "image" file and validates it is an image
func readImageUpload(c *fiber.Ctx, v *validator.Validator) ([]byte, string, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, "", services.NewValidationError("Image file is required")
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	upload := models.ImageUpload{
		MimeType: storage.DetectMimeType(data, header.Header.Get(fiber.HeaderContentType)),
		Size:     len(data),
	}
	if err := v.Validate(&upload); err != nil {
		return nil, "", services.NewValidationError("%s", err.Error())
	}

	return data, upload.MimeType, nil
}

func sendImage(c *fiber.Ctx, image *services.Image) error {
	c.Set(fiber.HeaderContentType, image.MimeType)
	return c.Send(image.Data)
}
