package appointment

import (
	"appointly/infras/otel"
	"appointly/internal/domains/appointment/model"
	"appointly/internal/domains/appointment/model/dto"
	"appointly/internal/domains/appointment/service"
	"appointly/shared"
	"appointly/shared/constant"
	gDto "appointly/shared/dto"
	"appointly/shared/failure"
	"appointly/shared/validator"
	"appointly/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const calendarFileName = "appointments.ics"

type Handler struct {
	service service.Appointment
	otel    otel.Otel
}

func New(service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Get("/available/{businessIdentifier}", handler.GetAvailableTimes)

		routerGroup.Post("/", handler.CreateAppointment)
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Post("/blocks", handler.CreateBlock)
		routerGroup.Post("/recurring", handler.CreateRecurring)
		routerGroup.Delete("/recurring/{groupId}", handler.CancelRecurring)
		routerGroup.Get("/calendar.ics", handler.ExportCalendar)
		routerGroup.Post("/calendar/publish", handler.PublishCalendar)
		routerGroup.Get("/{id}", handler.GetAppointmentByID)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Delete("/{id}", handler.CancelAppointment)
	})

	router.Post("/public/{businessIdentifier}/appointments", handler.CreatePublicAppointment)
}

// GetAvailableTimes lists the start times a business can still accept on a date.
// @Summary Get available times
// @Description Compute the free start times of a business for a date and duration. Either duration or appointment_type_id is required.
// @Tags Public
// @Produce json
// @Param businessIdentifier path string true "Business slug or owner id"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param duration query integer false "Duration in minutes"
// @Param staffId query string false "Staff member"
// @Param appointment_type_id query string false "Appointment type supplying the duration"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Available times"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/available/{businessIdentifier} [get]
func (handler *Handler) GetAvailableTimes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableTimes")
	defer scope.End()

	query := r.URL.Query()
	req := dto.AvailabilityRequest{
		Date:              query.Get(constant.RequestParamDate),
		StaffID:           query.Get(constant.RequestParamStaffID),
		AppointmentTypeID: query.Get(constant.RequestParamAppointmentTypeID),
	}

	if duration := query.Get(constant.RequestParamDuration); duration != "" {
		value, err := shared.ConvertStringToInt(duration)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequestFromString("duration must be a number of minutes"))

			return
		}

		req.DurationMinutes = value
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability request")

		response.WithError(w, err)

		return
	}

	available, err := handler.service.Available(ctx, chi.URLParam(r, constant.RequestParamBusinessIdentifier), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available times")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, available)
}

// CreatePublicAppointment books a pending appointment on behalf of a customer.
// @Summary Book an appointment
// @Description Book a future appointment with a business. The booking is always created as pending.
// @Tags Public
// @Accept json
// @Produce json
// @Param businessIdentifier path string true "Business slug or owner id"
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Data[dto.AppointmentResponse] "Appointment booked"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/{businessIdentifier}/appointments [post]
func (handler *Handler) CreatePublicAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePublicAppointment")
	defer scope.End()

	req := dto.CreateAppointmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	appointment, err := handler.service.CreatePublic(ctx, chi.URLParam(r, constant.RequestParamBusinessIdentifier), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment booked by guest")

	response.WithJSON(w, http.StatusCreated, appointment)
}

// CreateAppointment handles the creation of a new appointment by the owner.
// @Summary Create an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Data[dto.AppointmentResponse] "Appointment created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
// @Security BearerAuth
func (handler *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAppointment")
	defer scope.End()

	req := dto.CreateAppointmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	appointment, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create appointment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, appointment)
}

// CreateBlock reserves a time range so that it cannot be booked.
// @Summary Block a time range
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockRequest true "Create Block Request"
// @Success 201 {object} response.Data[dto.AppointmentResponse] "Time range blocked"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/blocks [post]
// @Security BearerAuth
func (handler *Handler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlock")
	defer scope.End()

	req := dto.CreateBlockRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	block, err := handler.service.Block(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block time range")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, block)
}

// CreateRecurring books a weekly, biweekly or monthly series. Occurrences that do not fit are skipped.
// @Summary Create a recurring series
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.CreateRecurringRequest true "Create Recurring Request"
// @Success 201 {object} response.Data[dto.RecurringResponse] "Recurring series created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/recurring [post]
// @Security BearerAuth
func (handler *Handler) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRecurring")
	defer scope.End()

	req := dto.CreateRecurringRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	series, err := handler.service.CreateRecurring(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create recurring appointments")

		response.WithError(w, err)

		return
	}

	scope.SetAttributes(map[string]any{
		"recurrence.group_id": series.RecurrenceGroupID,
		"recurrence.count":    series.Count,
		"recurrence.skipped":  series.Skipped,
	})

	response.WithJSON(w, http.StatusCreated, series)
}

// CancelRecurring cancels the remaining occurrences of a series.
// @Summary Cancel a recurring series
// @Tags Appointment
// @Produce json
// @Param groupId path string true "Recurrence group ID"
// @Param as_of query string false "First date to cancel (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.CancelRecurringResponse] "Cancelled occurrences"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/recurring/{groupId} [delete]
// @Security BearerAuth
func (handler *Handler) CancelRecurring(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelRecurring")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamGroupID)

	cancelled, err := handler.service.CancelRecurring(ctx, groupID, r.URL.Query().Get(constant.RequestParamAsOf))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("recurrenceGroupID", groupID).Msg("failed to cancel recurring appointments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cancelled)
}

// GetAppointments lists the appointments of the signed in owner.
// @Summary Get appointments
// @Tags Appointment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param status query string false "Status"
// @Param staffId query string false "Staff member"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse] "List of appointments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filter := dto.Filter{
		Date:    query.Get(constant.RequestParamDate),
		From:    query.Get(constant.RequestParamFrom),
		To:      query.Get(constant.RequestParamTo),
		Status:  query.Get(model.FieldStatus),
		StaffID: query.Get(constant.RequestParamStaffID),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	appointments, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointments retrieved successfully")

	response.WithJSON(w, http.StatusOK, appointments)
}

// GetAppointmentByID retrieves an appointment by its ID.
// @Summary Get an appointment by ID
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Data[dto.AppointmentResponse] "Appointment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	appointment, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointment)
}

// UpdateStatus moves an appointment along its status lifecycle.
// @Summary Update appointment status
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.AppointmentResponse] "Updated appointment"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	appointment, err := handler.service.UpdateStatus(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update appointment status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment status changed to " + appointment.Status + " by user " + user)

	response.WithJSON(w, http.StatusOK, appointment)
}

// CancelAppointment cancels an appointment, subject to the cancellation policy.
// @Summary Cancel an appointment
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Appointment cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	if err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel appointment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Appointment cancelled successfully")
}

// ExportCalendar downloads the owner's appointments as an iCalendar file.
// @Summary Export calendar
// @Tags Appointment
// @Produce text/calendar
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {file} file "iCalendar file"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/calendar.ics [get]
// @Security BearerAuth
func (handler *Handler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportCalendar")
	defer scope.End()

	query := r.URL.Query()

	body, err := handler.service.ExportCalendar(ctx, query.Get(constant.RequestParamFrom), query.Get(constant.RequestParamTo))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export calendar")

		response.WithError(w, err)

		return
	}

	response.WithAttachment(w, constant.ContentTypeCalendar, calendarFileName, body)
}

// PublishCalendar uploads the owner's calendar to object storage so calendar apps can subscribe to it.
// @Summary Publish calendar
// @Tags Appointment
// @Produce json
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param rotate query boolean false "Issue a new calendar URL and remove the old file"
// @Success 200 {object} response.Data[dto.CalendarResponse] "Published calendar"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/calendar/publish [post]
// @Security BearerAuth
func (handler *Handler) PublishCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PublishCalendar")
	defer scope.End()

	query := r.URL.Query()

	rotate := shared.ConvertStringToBool(query.Get(constant.RequestParamRotate))

	published, err := handler.service.PublishCalendar(
		ctx,
		query.Get(constant.RequestParamFrom),
		query.Get(constant.RequestParamTo),
		rotate != nil && *rotate,
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to publish calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, published)
}
