package appointmenttype

import (
	"appointly/infras/otel"
	"appointly/internal/domains/appointmenttype/model/dto"
	"appointly/internal/domains/appointmenttype/service"
	"appointly/shared"
	"appointly/shared/constant"
	gDto "appointly/shared/dto"
	"appointly/shared/validator"
	"appointly/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.AppointmentType
	otel    otel.Otel
}

func New(service service.AppointmentType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointment-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAppointmentType)
		routerGroup.Get("/", handler.GetAppointmentTypes)
		routerGroup.Get("/{id}", handler.GetAppointmentTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateAppointmentType)
		routerGroup.Delete("/{id}", handler.DeleteAppointmentType)
	})
}

// CreateAppointmentType handles the creation of a new appointment type.
// @Summary Create an appointment type
// @Description Create a bookable service with a default duration and price.
// @Tags AppointmentType
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentTypeRequest true "Create Appointment Type Request"
// @Success 201 {object} response.Data[dto.AppointmentTypeResponse] "Appointment type created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointment-types [post]
// @Security BearerAuth
func (handler *Handler) CreateAppointmentType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAppointmentType")
	defer scope.End()

	req := dto.CreateAppointmentTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	appointmentType, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create appointment type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment type created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, appointmentType)
}

// GetAppointmentTypes lists the appointment types of the signed in owner.
// @Summary Get appointment types
// @Tags AppointmentType
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetAppointmentTypesResponse] "List of appointment types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointment-types [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	active := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamActive))

	appointmentTypes, err := handler.service.GetAll(ctx, queryParams, active)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment types")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment types retrieved successfully")

	response.WithJSON(w, http.StatusOK, appointmentTypes)
}

// GetAppointmentTypeByID retrieves an appointment type by its ID.
// @Summary Get an appointment type by ID
// @Tags AppointmentType
// @Produce json
// @Param id path string true "Appointment type ID"
// @Success 200 {object} response.Data[dto.AppointmentTypeResponse] "Appointment type details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointment-types/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentTypeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	appointmentType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment type by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointmentType)
}

// UpdateAppointmentType updates an existing appointment type by its ID.
// @Summary Update an appointment type
// @Tags AppointmentType
// @Accept json
// @Produce json
// @Param id path string true "Appointment type ID"
// @Param request body dto.UpdateAppointmentTypeRequest true "Update Appointment Type Request"
// @Success 200 {object} response.Message "Appointment type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointment-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAppointmentType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointmentType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateAppointmentTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update appointment type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment type updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Appointment type updated successfully")
}

// DeleteAppointmentType deactivates an appointment type. Existing appointments keep their reference.
// @Summary Deactivate an appointment type
// @Tags AppointmentType
// @Produce json
// @Param id path string true "Appointment type ID"
// @Success 200 {object} response.Message "Appointment type deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointment-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAppointmentType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAppointmentType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete appointment type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment type deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Appointment type deleted successfully")
}
