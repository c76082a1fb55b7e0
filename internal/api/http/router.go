package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fit-training-service/internal/api/http/handlers"
	"github.com/spec-kit/fit-training-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Session        *handlers.SessionHandler
	Registration   *handlers.RegistrationHandler
	Training       *handlers.TrainingHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Session.Login)

	reg := app.Group("/registration")
	reg.Post("", cfg.Registration.Start)
	reg.Put("/:id/steps/:step", cfg.Registration.SubmitStep)
	reg.Post("/:id/back", cfg.Registration.Back)
	reg.Delete("/:id", cfg.Registration.Cancel)

	me := app.Group("/me", cfg.AuthMiddleware.Handle, auth.RequireTrainee())
	me.Get("/dashboard", cfg.Session.Dashboard)
	me.Post("/video/start", cfg.Training.StartVideo)
	me.Post("/video/progress", cfg.Training.VideoProgress)
	me.Post("/video/complete", cfg.Training.CompleteVideo)
	me.Get("/quiz", cfg.Training.Questions)
	me.Post("/quiz", cfg.Training.SubmitQuiz)
	me.Post("/quiz/retry", cfg.Training.RetryQuiz)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/trainees", cfg.Admin.Search)
	admin.Get("/trainees/export", cfg.Admin.Export)
	admin.Post("/trainees/:id/fit-test", cfg.Admin.RecordFitTest)
}
