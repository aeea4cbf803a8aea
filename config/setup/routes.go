package setup

import (
	"world-scribe/app"
	"world-scribe/handlers"
	"world-scribe/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// World management works without an open World
	fiberApp.Post("/api/worlds", handlers.CreateWorld(application))
	fiberApp.Get("/api/worlds", handlers.ListWorlds(application))
	fiberApp.Post("/api/worldAccesses", handlers.SetWorldAccess(application))

	// Everything else needs an open World
	api := fiberApp.Group("/api", middleware.WorldRequired(application.Worlds))

	api.Get("/worlds/current/name", handlers.GetCurrentWorldName)

	api.Post("/categories", handlers.CreateCategory(application))
	api.Get("/categories", handlers.GetCategories)
	api.Get("/categories/:id", handlers.GetCategory)
	api.Get("/categories/:id/metadata", handlers.GetCategoryMetadata)
	api.Patch("/categories/:id/name", handlers.UpdateCategoryName(application))
	api.Patch("/categories/:id/description", handlers.UpdateCategoryDescription)
	api.Put("/categories/:id/image", handlers.SetCategoryImage(application))
	api.Get("/categories/:id/image", handlers.GetCategoryImage)
	api.Delete("/categories/:id", handlers.DeleteCategory)
	api.Get("/categories/:id/articles", handlers.GetCategoryArticles)
	api.Get("/categories/:id/fields", handlers.GetCategoryFields)
	api.Post("/categories/:id/fields", handlers.CreateField(application))

	api.Post("/articles", handlers.CreateArticle(application))
	api.Get("/articles", handlers.GetArticles)
	api.Get("/articles/:id", handlers.GetArticle)
	api.Get("/articles/:id/metadata", handlers.GetArticleMetadata)
	api.Get("/articles/:id/fieldValues", handlers.GetArticleFieldValues)
	api.Patch("/articles/:id/name", handlers.UpdateArticleName(application))
	api.Put("/articles/:id/image", handlers.SetArticleImage(application))
	api.Get("/articles/:id/image", handlers.GetArticleImage)
	api.Delete("/articles/:id", handlers.DeleteArticle)
	api.Put("/articles/:articleId/fields/:fieldId", handlers.UpdateFieldValue(application))
	api.Get("/articles/:id/connections", handlers.GetArticleConnections)
	api.Get("/articles/:id/snippets", handlers.GetArticleSnippets)

	api.Post("/connections", handlers.CreateConnection(application))
	api.Patch("/connections/:id/role", handlers.UpdateConnectionRole(application))
	api.Delete("/connections/:id", handlers.DeleteConnection)
	api.Patch("/connectionDescriptions/:id", handlers.UpdateConnectionDescription)

	api.Post("/snippets", handlers.CreateSnippet(application))
	api.Get("/snippets/:id", handlers.GetSnippet)
	api.Patch("/snippets/:id", handlers.UpdateSnippet(application))
	api.Delete("/snippets/:id", handlers.DeleteSnippet)
}
