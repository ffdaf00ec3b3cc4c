package routers

import (
	"glucolog-service/internal/app/delivery/http/middlewares"
	"glucolog-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.RequestIDMiddleware).Post("/register", userController.RegisterUser)
	router.With(middlewares.RequestIDMiddleware).Get("/{userID}", userController.GetUser)
}
