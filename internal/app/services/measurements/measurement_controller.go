package measurements

import (
	"context"
	"encoding/json"
	"glucolog-service/internal/app/contracts"
	"glucolog-service/internal/pkg/constvars"
	"glucolog-service/internal/pkg/dto/requests"
	"glucolog-service/internal/pkg/exceptions"
	"glucolog-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MeasurementController struct {
	Log                *zap.Logger
	MeasurementUsecase contracts.MeasurementUsecase
}

var (
	measurementControllerInstance *MeasurementController
	onceMeasurementController     sync.Once
)

func NewMeasurementController(logger *zap.Logger, measurementUsecase contracts.MeasurementUsecase) *MeasurementController {
	onceMeasurementController.Do(func() {
		measurementControllerInstance = &MeasurementController{
			Log:                logger,
			MeasurementUsecase: measurementUsecase,
		}
	})
	return measurementControllerInstance
}

func (ctrl *MeasurementController) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MeasurementController.CreateMeasurement requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.CreateMeasurement)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("MeasurementController.CreateMeasurement error decoding JSON",
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

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	measurementID, err := ctrl.MeasurementUsecase.CreateMeasurement(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SuccessCreateMeasurement, map[string]string{
		"measurement_id": measurementID,
	})
}

func (ctrl *MeasurementController) ListMeasurements(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MeasurementController.ListMeasurements requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	request := &requests.ListMeasurements{
		PatientID: r.URL.Query().Get("patient_id"),
		Page:      page,
		PageSize:  pageSize,
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	measurements, total, err := ctrl.MeasurementUsecase.FindMeasurements(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if request.Page < 1 {
		request.Page = 1
	}
	if request.PageSize < 1 {
		request.PageSize = constvars.AppDefaultPageSize
	}
	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.SuccessGetMeasurements, pagination, measurements)
}

func (ctrl *MeasurementController) GetMeasurementRecord(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("MeasurementController.GetMeasurementRecord requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	measurementID := chi.URLParam(r, "measurementID")
	if measurementID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "measurementID"))
		return
	}

	patientID := r.URL.Query().Get("patient_id")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "patient_id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	record, err := ctrl.MeasurementUsecase.FindMeasurementRecord(ctx, patientID, measurementID)
	if err != nil {
		ctrl.Log.Error("MeasurementController.GetMeasurementRecord error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMeasurementIDKey, measurementID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetMeasurement, record)
}
