package user

import (
	"fmt"
	"time"

	vo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
)

// User belongs to exactly one company. Its role plus assigned site/plant IDs
// define what tenant data it can see.
type User struct {
	id           uint
	companyID    uint
	email        *vo.Email
	passwordHash string
	displayName  string
	role         vo.Role
	siteIDs      []uint
	plantIDs     []uint
	status       string
	createdAt    time.Time
	updatedAt    time.Time
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

func NewUser(companyID uint, email *vo.Email, passwordHash, displayName string, role vo.Role) (*User, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	now := time.Now()
	return &User{
		companyID:    companyID,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	companyID uint,
	email *vo.Email,
	passwordHash string,
	displayName string,
	role vo.Role,
	siteIDs, plantIDs []uint,
	status string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	return &User{
		id:           id,
		companyID:    companyID,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		siteIDs:      siteIDs,
		plantIDs:     plantIDs,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint              { return u.id }
func (u *User) CompanyID() uint       { return u.companyID }
func (u *User) Email() *vo.Email      { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) DisplayName() string   { return u.displayName }
func (u *User) Role() vo.Role         { return u.role }
func (u *User) SiteIDs() []uint       { return u.siteIDs }
func (u *User) PlantIDs() []uint      { return u.plantIDs }
func (u *User) Status() string        { return u.status }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) ChangeRole(role vo.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role")
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

// AssignScope replaces the user's site and plant assignments.
func (u *User) AssignScope(siteIDs, plantIDs []uint) {
	u.siteIDs = siteIDs
	u.plantIDs = plantIDs
	u.updatedAt = time.Now()
}

func (u *User) Deactivate() {
	u.status = StatusInactive
	u.updatedAt = time.Now()
}

func (u *User) IsActive() bool {
	return u.status == StatusActive
}
