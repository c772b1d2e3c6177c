package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"codequest/pkg/session"

	"go.uber.org/zap"
)

var openRoutes = map[string]string{
	"/api/auth/register": http.MethodPost,
	"/api/auth/login":    http.MethodPost,
}

// authRequired: everything except the open auth routes and anonymous
// GETs. The feed and /api/auth/me are personal, they need a session
// even for reads.
func authRequired(r *http.Request) bool {
	if m, ok := openRoutes[r.URL.Path]; ok && m == r.Method {
		return false
	}

	if r.Method != http.MethodGet {
		return true
	}

	return r.URL.Path == "/api/auth/me" || r.URL.Path == "/api/feed" ||
		strings.HasPrefix(r.URL.Path, "/api/feed/")
}

func Auth(logger *zap.SugaredLogger, sm session.SessionManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !authRequired(r) {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sess, err := sm.Check(ctx, r)
		if err != nil {
			logger.Error(err.Error())
			w.Header().Set("Content-type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			errorBody, _ := json.Marshal(map[string]string{"message": "unauthorized"})
			w.Write(errorBody)

			return
		}

		ctx = context.WithValue(r.Context(), session.SessionKey, sess)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
