package routers

import (
	"fmt"
	"glucolog-service/internal/app/config"
	"glucolog-service/internal/app/delivery/http/middlewares"
	"glucolog-service/internal/app/services/fhir"
	"glucolog-service/internal/app/services/measurements"
	"glucolog-service/internal/app/services/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	measurementController *measurements.MeasurementController,
	fhirController *fhir.FhirController,
	userController *users.UserController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/measurements", func(r chi.Router) {
				attachMeasurementRoutes(r, middlewares, measurementController)
				attachFhirMeasurementRoutes(r, middlewares, fhirController)
			})

			r.Route("/fhir", func(r chi.Router) {
				attachFhirStatusRoutes(r, middlewares, fhirController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})
		})
	})
}
