package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sinarkarya/leave-backend-go/internal/domain/employee"
	"github.com/sinarkarya/leave-backend-go/internal/handler/http/response"
)

func roleFromClaims(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return employee.Role(roleStr), true
}

// RequireHRD restricts a route to the hrd role.
func RequireHRD(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || role != employee.RoleHRD {
			response.Forbidden(w, "HRD access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireApprover restricts a route to roles that review leave requests.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || !role.IsApprover() {
			response.Forbidden(w, "Approver access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
