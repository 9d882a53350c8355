package routes

import (
	"mimarlik-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler mounted under /api/v1.
type Handlers struct {
	Languages    *handlers.LanguageHandler
	Categories   *handlers.CategoryHandler
	Projects     *handlers.ProjectHandler
	Photos       *handlers.PhotoHandler
	Translations *handlers.TranslationHandler
}

func Setup(app *fiber.App, h Handlers) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Static paths are registered before the /:id routes they would shadow.
	languages := v1.Group("/languages")
	{
		languages.Get("/", h.Languages.GetAll)
		languages.Get("/active", h.Languages.GetActive)
		languages.Get("/default", h.Languages.GetDefault)
		languages.Get("/code/:code", h.Languages.GetByCode)
		languages.Get("/:id", h.Languages.GetByID)
		languages.Get("/:id/can-delete", h.Languages.CanDelete)
		languages.Post("/", h.Languages.Create)
		languages.Post("/:id/default", h.Languages.SetDefault)
		languages.Put("/:id", h.Languages.Update)
		languages.Delete("/:id", h.Languages.Delete)
	}

	categories := v1.Group("/categories")
	{
		categories.Get("/", h.Categories.GetAll)
		categories.Get("/slug/:slug", h.Categories.GetBySlug)
		categories.Get("/with-children", h.Categories.GetTree)
		categories.Get("/:id", h.Categories.GetByID)
		categories.Get("/:id/can-delete", h.Categories.CanDelete)
		categories.Post("/", h.Categories.Create)
		categories.Put("/:id", h.Categories.Update)
		categories.Delete("/:id", h.Categories.Delete)
	}

	projects := v1.Group("/projects")
	{
		projects.Get("/", h.Projects.GetAll)
		projects.Get("/featured", h.Projects.GetFeatured)
		projects.Get("/slug/:slug", h.Projects.GetBySlug)
		projects.Get("/:id", h.Projects.GetByID)
		projects.Get("/:id/can-delete", h.Projects.CanDelete)
		projects.Post("/", h.Projects.Create)
		projects.Post("/generate-slug", h.Projects.GenerateSlug)
		projects.Put("/:id", h.Projects.Update)
		projects.Delete("/:id", h.Projects.Delete)
	}

	photos := v1.Group("/photos")
	{
		photos.Get("/", h.Photos.GetAll)
		photos.Get("/:id", h.Photos.GetByID)
		photos.Get("/:id/can-delete", h.Photos.CanDelete)
		photos.Post("/", h.Photos.Upload)
		photos.Put("/:id", h.Photos.Update)
		photos.Delete("/:id", h.Photos.Delete)
	}

	// Homepage slider
	slider := v1.Group("/slider")
	{
		slider.Get("/", h.Photos.GetSlider)
		slider.Post("/:id", h.Photos.AddToSlider)
		slider.Delete("/:id", h.Photos.RemoveFromSlider)
	}

	translations := v1.Group("/translations")
	{
		translations.Get("/language/:languageId", h.Translations.GetByLanguage)
		translations.Get("/resolve/:entity/:entityId", h.Translations.Resolve)
		translations.Get("/:entity/:entityId", h.Translations.GetByEntity)
		translations.Get("/:entity/:entityId/:field/:languageId", h.Translations.Get)
		translations.Put("/", h.Translations.Upsert)
		translations.Put("/bulk", h.Translations.BulkUpsert)
		translations.Put("/:id", h.Translations.Update)
		translations.Delete("/:id", h.Translations.Delete)
		translations.Delete("/entity/:entity/:entityId", h.Translations.DeleteByEntity)
	}
}
