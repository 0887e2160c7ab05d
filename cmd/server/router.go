package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tasknest/tasknest-api/internal/api"
	apiMiddleware "github.com/tasknest/tasknest-api/internal/api/middleware"
)

// setupRouter builds the route tree. Session endpoints and task CRUD sit
// behind the authentication middleware; registration, login, public profiles,
// and avatars do not.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	userHandler := api.NewUserHandler(app.userService, app.config.Upload.MaxAvatarBytes, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService, app.userStore)

	r.Route("/users", func(r chi.Router) {
		// Public endpoints
		r.Post("/", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Get("/{id}/avatar", userHandler.GetAvatar)

		// Protected endpoints. Registered before GET /{id} so chi matches
		// /me literally rather than as an ID.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/logout", userHandler.Logout)
			r.Post("/logoutall", userHandler.LogoutAll)
			r.Get("/me", userHandler.GetMe)
			r.Patch("/me", userHandler.UpdateMe)
			r.Delete("/me", userHandler.DeleteMe)
			r.Post("/me/avatar", userHandler.UploadAvatar)
			r.Delete("/me/avatar", userHandler.DeleteAvatar)
		})

		r.Get("/{id}", userHandler.GetUserByID)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/", taskHandler.ListTasks)
		r.Get("/{id}", taskHandler.GetTask)
		r.Patch("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
