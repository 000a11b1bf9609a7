package middleware

import (
	"errors"
	"net/http"

	"favkart/internal/auth"
	"favkart/internal/model"

	"github.com/rs/zerolog"
)

// BearerAuth rejects requests without a valid bearer token with 401 and
// otherwise stores the token's user id in the request context.
func BearerAuth(verifier auth.Verifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := LoggerFromContext(r.Context(), logger)

			token, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				log.Warn().Str("path", r.URL.Path).Msg("missing bearer token")
				writeError(w, r, http.StatusUnauthorized, model.ErrCodeUnauthorised, err.Error())
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				log.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected bearer token")

				message := auth.ErrInvalidToken.Error()
				if errors.Is(err, auth.ErrTokenExpired) {
					message = auth.ErrTokenExpired.Error()
				}
				writeError(w, r, http.StatusUnauthorized, model.ErrCodeUnauthorised, message)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}
