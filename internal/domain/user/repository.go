package user

import (
	"context"

	vo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email *vo.Email) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	ListByCompany(ctx context.Context, companyID uint, limit, offset int) ([]*User, int64, error)
	ListByCompanyAndRoles(ctx context.Context, companyID uint, roles []vo.Role) ([]*User, error)
}
