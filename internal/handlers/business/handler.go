package business

import (
	"appointly/infras/otel"
	"appointly/internal/domains/business/model/dto"
	"appointly/internal/domains/business/service"
	"appointly/shared/constant"
	"appointly/shared/validator"
	"appointly/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Business
	otel    otel.Otel
}

func New(service service.Business, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/business", func(routerGroup chi.Router) {
		routerGroup.Get("/profile", handler.GetProfile)
		routerGroup.Put("/profile", handler.UpsertProfile)
	})

	router.Get("/public/{businessIdentifier}", handler.GetPublicProfile)
}

// GetProfile returns the business profile of the signed in owner.
// @Summary Get business profile
// @Description Retrieve the working hours, break and cancellation policy of the signed in owner. Unconfigured owners receive the defaults.
// @Tags Business
// @Produce json
// @Success 200 {object} response.Data[dto.BusinessProfileResponse] "Business profile"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/business/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	profile, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get business profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}

// UpsertProfile creates or replaces the business profile of the signed in owner.
// @Summary Save business profile
// @Description Create or replace working hours, slot interval, break, minimum gap and cancellation policy.
// @Tags Business
// @Accept json
// @Produce json
// @Param request body dto.UpsertBusinessProfileRequest true "Business profile"
// @Success 200 {object} response.Data[dto.BusinessProfileResponse] "Saved business profile"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/business/profile [put]
// @Security BearerAuth
func (handler *Handler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertProfile")
	defer scope.End()

	req := dto.UpsertBusinessProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	profile, err := handler.service.Upsert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save business profile")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Business profile saved by user " + user)

	response.WithJSON(w, http.StatusOK, profile)
}

// GetPublicProfile returns the public view of a business.
// @Summary Get public business profile
// @Description Retrieve a configured business by slug or owner id.
// @Tags Public
// @Produce json
// @Param businessIdentifier path string true "Business slug or owner id"
// @Success 200 {object} response.Data[dto.PublicBusinessProfileResponse] "Business profile"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/{businessIdentifier} [get]
func (handler *Handler) GetPublicProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPublicProfile")
	defer scope.End()

	identifier := chi.URLParam(r, constant.RequestParamBusinessIdentifier)

	profile, err := handler.service.GetPublic(ctx, identifier)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("businessIdentifier", identifier).Msg("failed to get public business profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}
