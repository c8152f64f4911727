package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lakbayhr/hr-portal-go/internal/handler/http/response"
)

type contextKey string

const employeeIDKey contextKey = "employee_id"

// AuthRequired rejects requests without a valid access token and
// stores the employee_id claim in the request context. The identity
// service is the collaborator that issued the token; everything
// downstream is keyed by the employee it names.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid token")
				return
			}

			employeeID, ok := claims["employee_id"].(string)
			if !ok || employeeID == "" {
				response.Unauthorized(w, "Token carries no employee identity")
				return
			}

			ctx := context.WithValue(r.Context(), employeeIDKey, employeeID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// EmployeeIDFromContext returns the authenticated employee identity
// stored by AuthRequired.
func EmployeeIDFromContext(ctx context.Context) (string, bool) {
	employeeID, ok := ctx.Value(employeeIDKey).(string)
	return employeeID, ok
}
