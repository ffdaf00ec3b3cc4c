package routers

import (
	"glucolog-service/internal/app/delivery/http/middlewares"
	"glucolog-service/internal/app/services/measurements"

	"github.com/go-chi/chi/v5"
)

func attachMeasurementRoutes(router chi.Router, middlewares *middlewares.Middlewares, measurementController *measurements.MeasurementController) {
	router.With(middlewares.RequestIDMiddleware).Post("/", measurementController.CreateMeasurement)
	router.With(middlewares.RequestIDMiddleware).Get("/", measurementController.ListMeasurements)
	router.With(middlewares.RequestIDMiddleware).Get("/{measurementID}", measurementController.GetMeasurementRecord)
}
