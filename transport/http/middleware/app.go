package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"hotelsite/config"
	"hotelsite/infras/otel"
	"hotelsite/shared"
	"hotelsite/shared/cache"
	"hotelsite/shared/constant"
	"hotelsite/transport/http/response"
)

const (
	otelHTTPScopeName = "http"

	cacheKeyRateLimit = "limiter"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.UserAgent(),
			"http.host":       r.Host,
			"http.source":     clientIP(r),
		})

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": rec.status,
		})
	})
}

// RateLimit is a fixed-window per-IP limiter backed by redis. Redis being
// unreachable fails open.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	if !a.config.App.RateLimiter.Enable {
		return next
	}

	maxReqs := a.config.App.RateLimiter.MaxRequests
	windowSecs := a.config.App.RateLimiter.WindowSeconds

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r))

		var count int

		err := a.cache.Get(r.Context(), cacheKey, &count)
		if err != nil {
			if errors.Is(err, cache.Nil) {
				count = 1
			} else {
				next.ServeHTTP(w, r)

				return
			}
		} else {
			count++
		}

		if count > maxReqs {
			response.WithRequestLimitExceeded(w)

			return
		}

		if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
			next.ServeHTTP(w, r)

			return
		}

		w.Header().Set(constant.HeaderRateLimit, strconv.Itoa(maxReqs))
		w.Header().Set(constant.HeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
		w.Header().Set(constant.HeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != constant.Empty {
		parts := strings.Split(forwarded, ",")

		return strings.TrimSpace(parts[0])
	}

	if realIP := r.Header.Get(constant.RequestHeaderRealIP); realIP != constant.Empty {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
