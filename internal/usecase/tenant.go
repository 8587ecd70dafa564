package usecase

import (
	"context"

	"cinema-control/pkg/utils"

	"github.com/google/uuid"
)

const (
	RoleCompany  = "company"
	RoleCustomer = "customer"
)

// TenantProvider answers who is making the current request. Token issuance
// lives with the identity provider; services only consume the resolved
// identity.
type TenantProvider interface {
	CurrentUserID(ctx context.Context) (uuid.UUID, bool)
	IsInRole(ctx context.Context, role string) bool
}

type contextTenantProvider struct{}

// NewContextTenantProvider reads the identity placed on the request context
// by the auth middleware.
func NewContextTenantProvider() TenantProvider {
	return contextTenantProvider{}
}

func (contextTenantProvider) CurrentUserID(ctx context.Context) (uuid.UUID, bool) {
	return utils.GetUserIDFromContext(ctx)
}

func (contextTenantProvider) IsInRole(ctx context.Context, role string) bool {
	current, ok := utils.GetRoleFromContext(ctx)
	return ok && current == role
}
