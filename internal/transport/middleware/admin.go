package middleware

import (
	"context"

	"github.com/heartmarshall/tripmatch-backend/internal/domain"
	"github.com/heartmarshall/tripmatch-backend/pkg/ctxutil"
)

// RequireAdmin guards operator endpoints. A caller with neither a user ID
// nor a role never authenticated; anyone else without the admin role is
// forbidden.
func RequireAdmin(ctx context.Context) error {
	if ctxutil.IsAdminCtx(ctx) {
		return nil
	}
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok && ctxutil.UserRoleFromCtx(ctx) == "" {
		return domain.ErrUnauthorized
	}
	return domain.ErrForbidden
}
