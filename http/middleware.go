package http

import (
	"net"
	"net/http"

	"go.uber.org/zap"
)

// RateLimitMiddleware rejects clients that exhausted their token bucket.
func RateLimitMiddleware(limiter *RateLimiter, logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)

		if !limiter.Allow(ip) {
			logger.Warn("rate limit exceeded", zap.String("client", ip))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded", "")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RecoverMiddleware is the outermost boundary: a panic is logged with
// full context and converted to a generic 500, never leaked to the
// caller.
func RecoverMiddleware(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic while handling request",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"),
				)
				writeError(w, http.StatusInternalServerError, "Internal server error", codeInternal)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
