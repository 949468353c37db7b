package basic_auth

import (
	"crypto/subtle"
	"net/http"

	"service/internal/pkg/httperr"
	"service/pkg/logger"
)

// Middleware gates the API behind HTTP basic auth. Comparison is constant
// time so credential length and prefix never leak through timing.
func Middleware(log handlerLogger, username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()

			usernameMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			passwordMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1

			if !ok || !usernameMatch || !passwordMatch {
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("remote_addr", r.RemoteAddr),
				).Warn("unauthorized request")

				w.Header().Set("WWW-Authenticate", `Basic realm="orders"`)
				httperr.WriteUnauthorized(w, log)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
