package routers

import (
	"glucolog-service/internal/app/delivery/http/middlewares"
	"glucolog-service/internal/app/services/fhir"

	"github.com/go-chi/chi/v5"
)

func attachFhirMeasurementRoutes(router chi.Router, middlewares *middlewares.Middlewares, fhirController *fhir.FhirController) {
	router.With(middlewares.RequestIDMiddleware).Post("/{measurementID}/fhir", fhirController.SendMeasurement)
	router.With(middlewares.RequestIDMiddleware).Post("/fhir", fhirController.SendMeasurements)
}

func attachFhirStatusRoutes(router chi.Router, middlewares *middlewares.Middlewares, fhirController *fhir.FhirController) {
	router.Get("/status", fhirController.CheckConnection)
}
