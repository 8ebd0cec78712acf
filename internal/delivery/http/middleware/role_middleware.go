package middleware

import (
	"net/http"

	"hospital-management/internal/domain/entity"
	"hospital-management/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, a := range allowed {
				if role == a {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleHospitalAdmin)(next)
}

// RequireAdminOrDoctor is a convenience middleware for admin or doctor endpoints
func RequireAdminOrDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleHospitalAdmin, entity.RoleDoctor)(next)
}

// RequireAdminOrPatient is a convenience middleware for admin or patient endpoints
func RequireAdminOrPatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleHospitalAdmin, entity.RolePatient)(next)
}

// RequireSelfOrAdmin lets admins through and otherwise requires the route
// variable param to equal the caller's own user ID.
func RequireSelfOrAdmin(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			switch role {
			case entity.RoleHospitalAdmin:
				next.ServeHTTP(w, r)
				return
			case entity.RoleDoctor, entity.RolePatient:
				userID, _ := GetUserIDFromContext(r.Context())
				target, err := uuid.Parse(mux.Vars(r)[param])
				if err == nil && target == userID {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You can only access your own account")
		})
	}
}
