package httpserver

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/avolkhin/worldforge/internal/errs"
	"github.com/avolkhin/worldforge/internal/token"
)

// RequestID attaches a generated id to the request context and response
// headers for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if v, err := uuid.NewV4(); err == nil {
			id = v.String()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}

// statusRecorder captures the response status for the logging middleware.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Logging returns middleware that logs one line per request; metadata only,
// never payloads.
func Logging(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("dur", time.Since(start)),
				zap.String("request_id", RequestIDFromCtx(r.Context())),
				zap.String("remote", r.RemoteAddr),
			)
		})
	}
}

// Recover returns middleware that recovers from handler panics and responds
// with a generic internal error.
func Recover(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					log.Error("panic",
						zap.Any("reason", v),
						zap.ByteString("stack", debug.Stack()),
						zap.String("path", r.URL.Path),
						zap.String("request_id", RequestIDFromCtx(r.Context())),
					)
					writeError(w, errors.New("internal"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth verifies the bearer token and stores the caller identity in the
// request context. Missing, malformed, badly signed and expired tokens are
// all rejected with 401.
func RequireAuth(signKey []byte, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r)
			if err != nil {
				writeError(w, errs.ErrUnauthorized)
				return
			}
			claims, err := token.Parse(signKey, raw)
			if err != nil {
				log.Warn("rejected token",
					zap.Error(err),
					zap.String("request_id", RequestIDFromCtx(r.Context())),
				)
				writeError(w, errs.ErrUnauthorized)
				return
			}
			ctx := WithIdentity(r.Context(), Identity{
				UserID:   claims.UserID,
				Username: claims.Username,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, error) {
	v := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
		if t := strings.TrimSpace(v[7:]); t != "" {
			return t, nil
		}
	}
	return "", errors.New("no bearer token")
}
