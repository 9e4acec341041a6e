package middleware

import (
	"appointly/shared"
	"appointly/shared/cache"
	"appointly/shared/constant"
	"appointly/transport/http/response"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

const (
	cacheKeyRateLimit = "limiter"

	bucketDefault = "default"
	bucketBooking = "booking"

	publicBookingPrefix = "/v1/public/"
)

// bucket picks the counter a request is charged to. Anonymous booking writes
// get their own, usually smaller, budget so slot squatting cannot drain the
// read budget of the same client.
func (a *appMiddleware) bucket(r *http.Request) (string, int) {
	limits := a.config.App.RateLimiter

	if r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, publicBookingPrefix) && limits.BookingMaxRequests > 0 {
		return bucketBooking, limits.BookingMaxRequests
	}

	return bucketDefault, limits.MaxRequests
}

// hit increments the counter stored under key and returns the new value.
// ok is false when the cache is unavailable.
func (a *appMiddleware) hit(ctx context.Context, key string, window int) (count int, ok bool) {
	err := a.cache.Get(ctx, key, &count)

	switch {
	case err == nil:
		count++
	case errors.Is(err, cache.Nil):
		count = 1
	default:
		return 0, false
	}

	if err := a.cache.Save(ctx, key, count, window); err != nil {
		return count, false
	}

	return count, true
}

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			bucket, maxReqs := a.bucket(r)
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, bucket, a.getClientIP(r), a.getUA(r))

			count, ok := a.hit(r.Context(), cacheKey, windowSecs)
			if !ok {
				// Redis down: serve rather than fail closed.
				next.ServeHTTP(w, r)

				return
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return "unknown"
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// peer address.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
