package business_test

import (
	"appointly/infras/otel/mocks"
	businessMocks "appointly/internal/domains/business/mocks"
	"appointly/internal/domains/business/model/dto"
	"appointly/internal/handlers/business"
	"appointly/shared/constant"
	"appointly/shared/failure"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func serve(t *testing.T, setupMock func(svc *businessMocks.MockBusinessService), method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := businessMocks.NewMockBusinessService(ctrl)
	setupMock(svc)

	handler := business.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request = request.WithContext(context.WithValue(request.Context(), constant.ContextKeyUserID, "owner-1"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_GetProfile(t *testing.T) {
	recorder := serve(t, func(svc *businessMocks.MockBusinessService) {
		svc.EXPECT().Get(gomock.Any()).Return(dto.BusinessProfileResponse{
			OwnerID:      "owner-1",
			StartHour:    9,
			EndHour:      17,
			WorkingDays:  []int{0, 1, 2, 3, 4},
			SlotInterval: 30,
		}, nil)
	}, http.MethodGet, "/v1/business/profile", "")

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data dto.BusinessProfileResponse `json:"data"`
	}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "owner-1", body.Data.OwnerID)
	assert.False(t, body.Data.Configured)
}

func TestHandler_UpsertProfile(t *testing.T) {
	valid := `{"name":"Studio Noa","start_hour":9,"end_hour":17,"working_days":[0,1,2,3,4],"slot_interval":30,
		"break_time":{"enabled":true,"start_hour":12,"end_hour":13},"cancellation_policy":{"enabled":true,"hours_before":24}}`

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *businessMocks.MockBusinessService)
		wantCode  int
	}{
		{
			name: "saved",
			body: valid,
			setupMock: func(svc *businessMocks.MockBusinessService) {
				svc.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.UpsertBusinessProfileRequest) (dto.BusinessProfileResponse, error) {
						assert.True(t, req.BreakTime.Enabled)
						assert.Equal(t, 24, req.CancellationPolicy.HoursBefore)

						return dto.BusinessProfileResponse{OwnerID: "owner-1", Slug: "studio-noa", Configured: true}, nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "working day out of range",
			body:      `{"name":"Studio Noa","start_hour":9,"end_hour":17,"working_days":[7],"slot_interval":30}`,
			setupMock: func(_ *businessMocks.MockBusinessService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "zero slot interval",
			body:      `{"name":"Studio Noa","start_hour":9,"end_hour":17,"working_days":[1],"slot_interval":0}`,
			setupMock: func(_ *businessMocks.MockBusinessService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "slug taken",
			body: valid,
			setupMock: func(svc *businessMocks.MockBusinessService) {
				svc.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(dto.BusinessProfileResponse{}, failure.Conflict("slug is already taken"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, tt.setupMock, http.MethodPut, "/v1/business/profile", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestHandler_GetPublicProfile(t *testing.T) {
	recorder := serve(t, func(svc *businessMocks.MockBusinessService) {
		svc.EXPECT().GetPublic(gomock.Any(), "studio-noa").Return(dto.PublicBusinessProfileResponse{Slug: "studio-noa", Name: "Studio Noa"}, nil)
	}, http.MethodGet, "/v1/public/studio-noa", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "owner_id")
	assert.NotContains(t, recorder.Body.String(), "created_by")

	recorder = serve(t, func(svc *businessMocks.MockBusinessService) {
		svc.EXPECT().GetPublic(gomock.Any(), "ghost").Return(dto.PublicBusinessProfileResponse{}, failure.NotFound("business_profile"))
	}, http.MethodGet, "/v1/public/ghost", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
