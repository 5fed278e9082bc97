package middleware

import (
	"net/http"
	"strconv"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
)

// UserIDHeader заголовок, который выставляет API gateway
const UserIDHeader = "X-User-ID"

const msgMissingUserID = "saknar eller ogiltigt X-User-ID"

// Auth требует заголовок X-User-ID и кладет ID пользователя в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}
