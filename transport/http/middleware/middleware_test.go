package middleware_test

import (
	"appointly/config"
	"appointly/infras/jwt"
	"appointly/infras/otel/mocks"
	"appointly/permissions"
	"appointly/shared/cache"
	cacheMocks "appointly/shared/cache/mocks"
	"appointly/shared/constant"
	"appointly/transport/http/middleware"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "appointly"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "secret"
	cfg.JWT.AccessExpireMin = 15

	return cfg
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	user, _ := r.Context().Value(constant.ContextKeyUserID).(string)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(user))
}

func protectedRouter(cfg *config.Config) http.Handler {
	auth := middleware.NewAuthRoleMiddleware(jwt.New(cfg), mocks.NewOtel(), permissions.Get(), cfg)

	router := chi.NewRouter()
	router.Use(auth.APIKey, auth.Auth, auth.RBAC)
	router.Get("/v1/business/profile", echoUser)
	router.Get("/v1/public/{businessIdentifier}", echoUser)

	return router
}

func TestAuthRole(t *testing.T) {
	cfg := newConfig()
	tokens := jwt.New(cfg)

	ownerToken, err := tokens.GenerateAccessToken("owner-1", "owner@example.com", constant.RoleOwner)
	require.NoError(t, err)

	customerToken, err := tokens.GenerateAccessToken("customer-1", "customer@example.com", "customer")
	require.NoError(t, err)

	tests := []struct {
		name     string
		target   string
		headers  map[string]string
		wantCode int
		wantBody string
	}{
		{
			name:     "owner token",
			target:   "/v1/business/profile",
			headers:  map[string]string{constant.RequestHeaderAuthorization: "Bearer " + ownerToken},
			wantCode: http.StatusOK,
			wantBody: "owner-1",
		},
		{
			name:     "missing token",
			target:   "/v1/business/profile",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed header",
			target:   "/v1/business/profile",
			headers:  map[string]string{constant.RequestHeaderAuthorization: ownerToken},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "role not allowed",
			target:   "/v1/business/profile",
			headers:  map[string]string{constant.RequestHeaderAuthorization: "Bearer " + customerToken},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "public endpoint",
			target:   "/v1/public/studio-noa",
			wantCode: http.StatusOK,
		},
		{
			name:     "internal api key",
			target:   "/v1/business/profile",
			headers:  map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key",
			target:   "/v1/business/profile",
			headers:  map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantCode: http.StatusForbidden,
		},
	}

	router := protectedRouter(cfg)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for key, value := range tt.headers {
				request.Header.Set(key, value)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := newConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	counts := map[string]int{}

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, key string, value any) error {
		count, ok := counts[key]
		if !ok {
			return fmt.Errorf("cache miss: %w", cache.Nil)
		}

		*value.(*int) = count

		return nil
	}).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).DoAndReturn(func(_ any, key string, value any, _ int) error {
		counts[key], _ = value.(int)

		return nil
	}).AnyTimes()

	limited := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache).RateLimit()(http.HandlerFunc(echoUser))

	codes := make([]int, 0, 3)

	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/v1/appointments/available/studio-noa", nil)
		request.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")

		recorder := httptest.NewRecorder()
		limited.ServeHTTP(recorder, request)

		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_CacheDownLetsRequestsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	cfg := newConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1

	limited := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache).RateLimit()(http.HandlerFunc(echoUser))

	recorder := httptest.NewRecorder()
	limited.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRateLimit_PublicBookingHasItsOwnBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := newConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.BookingMaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	counts := map[string]int{}

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, key string, value any) error {
		count, ok := counts[key]
		if !ok {
			return cache.Nil
		}

		*value.(*int) = count

		return nil
	}).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).DoAndReturn(func(_ any, key string, value any, _ int) error {
		counts[key], _ = value.(int)

		return nil
	}).AnyTimes()

	limited := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache).RateLimit()(http.HandlerFunc(echoUser))

	send := func(method, target string) int {
		request := httptest.NewRequest(method, target, nil)
		request.Header.Set(constant.RequestHeaderRealIP, "198.51.100.4")

		recorder := httptest.NewRecorder()
		limited.ServeHTTP(recorder, request)

		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, send(http.MethodPost, "/v1/public/studio-noa/appointments"))
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, "/v1/public/studio-noa/appointments"))
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/v1/appointments/available/studio-noa"))
	assert.Len(t, counts, 2)
}
