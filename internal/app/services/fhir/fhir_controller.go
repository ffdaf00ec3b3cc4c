package fhir

import (
	"context"
	"encoding/json"
	"glucolog-service/internal/app/contracts"
	"glucolog-service/internal/pkg/constvars"
	"glucolog-service/internal/pkg/dto/requests"
	"glucolog-service/internal/pkg/exceptions"
	"glucolog-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FhirController struct {
	Log         *zap.Logger
	FhirUsecase contracts.FhirUsecase
}

var (
	fhirControllerInstance *FhirController
	onceFhirController     sync.Once
)

func NewFhirController(logger *zap.Logger, fhirUsecase contracts.FhirUsecase) *FhirController {
	onceFhirController.Do(func() {
		fhirControllerInstance = &FhirController{
			Log:         logger,
			FhirUsecase: fhirUsecase,
		}
	})
	return fhirControllerInstance
}

func (ctrl *FhirController) SendMeasurement(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("FhirController.SendMeasurement requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	measurementID := chi.URLParam(r, "measurementID")
	if measurementID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "measurementID"))
		return
	}

	request := new(requests.SendMeasurement)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("FhirController.SendMeasurement error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.FhirUsecase.SendMeasurement(ctx, request.PatientID, measurementID)
	if err != nil {
		ctrl.Log.Error("FhirController.SendMeasurement error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMeasurementIDKey, measurementID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessSendMeasurement, response)
}

func (ctrl *FhirController) SendMeasurements(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("FhirController.SendMeasurements requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.BulkSendMeasurements)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("FhirController.SendMeasurements error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// One network call per record, so the deadline scales with batch size.
	timeout := time.Duration(15*len(request.MeasurementIDs)) * time.Second
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	response, err := ctrl.FhirUsecase.SendMeasurements(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessBulkSendProcessed, response)
}

func (ctrl *FhirController) CheckConnection(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.FhirUsecase.CheckConnection(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessFHIRServerReachable, response)
}
