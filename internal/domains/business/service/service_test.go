package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"appointly/config"
	"appointly/infras/otel/mocks"
	businessMocks "appointly/internal/domains/business/mocks"
	"appointly/internal/domains/business/model"
	"appointly/internal/domains/business/model/dto"
	"appointly/internal/domains/business/service"
	cacheMocks "appointly/shared/cache/mocks"
	"appointly/shared/constant"
	gDto "appointly/shared/dto"
	"appointly/shared/failure"
)

func setup(t *testing.T) (*businessMocks.MockBusiness, *cacheMocks.MockRedisCache, service.Business) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := businessMocks.NewMockBusiness(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func ownerContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-123456789")
}

func validRequest() dto.UpsertBusinessProfileRequest {
	return dto.UpsertBusinessProfileRequest{
		Name:         "Studio Noa",
		StartHour:    9,
		EndHour:      17,
		WorkingDays:  []int{0, 1, 2, 3, 4},
		SlotInterval: 30,
		BreakTime: dto.BreakTime{
			Enabled:   true,
			StartHour: 12,
			EndHour:   13,
		},
		CancellationPolicy: dto.CancellationPolicy{Enabled: true, HoursBefore: 24},
	}
}

func TestBusinessService_Profile(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantStart int
		wantSlug  string
	}{
		{
			name: "unconfigured owner gets defaults",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BusinessProfile{}, nil)
			},
			wantStart: model.DefaultStartHour,
		},
		{
			name: "stored profile",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BusinessProfile{
					OwnerID:   "owner-123456789",
					Slug:      "studio-noa",
					StartHour: 8,
					EndHour:   20,
				}, nil)
			},
			wantStart: 8,
			wantSlug:  "studio-noa",
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BusinessProfile{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			profile, err := svc.Profile(context.Background(), "owner-123456789")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "owner-123456789", profile.OwnerID)
			assert.Equal(t, tt.wantStart, profile.StartHour)
			assert.Equal(t, tt.wantSlug, profile.Slug)
		})
	}
}

func TestBusinessService_Resolve(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BusinessProfile{}, nil)
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BusinessProfile{OwnerID: "owner-1", Slug: "studio-noa"}, nil)

	_, err := svc.Resolve(context.Background(), "unknown")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	profile, err := svc.Resolve(context.Background(), "studio-noa")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", profile.OwnerID)

	_, err = svc.Resolve(context.Background(), "  ")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBusinessService_Upsert(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	expireAvailability := func() {
		mockCache.EXPECT().Bump(gomock.Any(), "appointment:generation:owner-123456789").Return(int64(1), nil)
	}

	tests := []struct {
		name      string
		req       func() dto.UpsertBusinessProfileRequest
		setupMock func()
		wantCode  int
		wantSlug  string
	}{
		{
			name: "derived slug",
			req:  validRequest,
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p model.BusinessProfile) error {
					assert.Equal(t, "owner-123456789", p.OwnerID)
					assert.True(t, p.BreakEnabled)
					assert.Empty(t, p.CalendarToken)

					return nil
				})
				expireAvailability()
			},
			wantSlug: "studio-noa",
		},
		{
			name: "derived slug taken by another owner",
			req:  validRequest,
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
				expireAvailability()
			},
			wantSlug: "studio-noa-owner1",
		},
		{
			name: "requested slug taken",
			req: func() dto.UpsertBusinessProfileRequest {
				req := validRequest()
				req.Slug = "noa"

				return req
			},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "requested slug malformed",
			req: func() dto.UpsertBusinessProfileRequest {
				req := validRequest()
				req.Slug = "Studio Noa"

				return req
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "break outside opening hours",
			req: func() dto.UpsertBusinessProfileRequest {
				req := validRequest()
				req.BreakTime.StartHour = 7

				return req
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "closing before opening",
			req: func() dto.UpsertBusinessProfileRequest {
				req := validRequest()
				req.StartHour = 18

				return req
			},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unique violation from the database",
			req:  validRequest,
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "database error",
			req:  validRequest,
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Upsert(ownerContext(), tt.req())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSlug, res.Slug)
			assert.True(t, res.Configured)
			assert.Equal(t, []int{0, 1, 2, 3, 4}, res.WorkingDays)
		})
	}
}

func TestBusinessService_UpsertRequiresOwner(t *testing.T) {
	_, _, svc := setup(t)

	_, err := svc.Upsert(context.Background(), validRequest())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestBusinessService_GetPublic(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BusinessProfile{
		OwnerID:       "owner-1",
		Slug:          "studio-noa",
		Name:          "Studio Noa",
		StartHour:     9,
		EndHour:       17,
		WorkingDays:   pq.Int64Array{1, 2},
		SlotInterval:  30,
		CalendarToken: "secret",
	}, nil)

	res, err := svc.GetPublic(context.Background(), "studio-noa")
	require.NoError(t, err)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"slug":"studio-noa"`)
	assert.NotContains(t, string(body), "owner-1")
	assert.NotContains(t, string(body), "secret")
}

func TestBusinessService_CalendarToken(t *testing.T) {
	saved := model.BusinessProfile{OwnerID: "owner-123456789", Slug: "studio-noa"}

	tests := []struct {
		name         string
		rotate       bool
		stored       model.BusinessProfile
		wantIssued   bool
		wantToken    string
		wantPrevious string
		wantCode     int
	}{
		{
			name:       "first publish issues a token",
			stored:     saved,
			wantIssued: true,
		},
		{
			name: "existing token is reused",
			stored: func() model.BusinessProfile {
				p := saved
				p.CalendarToken = "current"

				return p
			}(),
			wantToken: "current",
		},
		{
			name:   "rotation replaces the token",
			rotate: true,
			stored: func() model.BusinessProfile {
				p := saved
				p.CalendarToken = "current"

				return p
			}(),
			wantIssued:   true,
			wantPrevious: "current",
		},
		{
			name:     "profile not saved",
			stored:   model.BusinessProfile{},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, _, svc := setup(t)

			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.stored, nil)

			var stored string

			if tt.wantIssued {
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mod map[string]any, _ gDto.FilterGroup) error {
						stored, _ = mod[model.FieldCalendarToken].(string)

						return nil
					})
			}

			token, previous, err := svc.CalendarToken(ownerContext(), "owner-123456789", tt.rotate)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrevious, previous)
			assert.NotContains(t, token, "owner")

			if tt.wantIssued {
				assert.Len(t, token, 32)
				assert.Equal(t, stored, token)
				assert.NotEqual(t, previous, token)

				return
			}

			assert.Equal(t, tt.wantToken, token)
		})
	}
}
