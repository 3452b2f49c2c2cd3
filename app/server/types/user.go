package types

import (
	"habit-tracker/app/server/models"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type ProfileInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
}

func (r ProfileInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Bio, validation.Required),
	)
}

type RegisterRequest struct {
	UserName         string        `json:"userName"`
	Email            string        `json:"email"`
	Password         string        `json:"password"`
	Role             models.Role   `json:"role"`
	Profile          *ProfileInput `json:"profile"`
	Enabled          *bool         `json:"enabled"`
	AccountNonLocked *bool         `json:"accountNonLocked"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(3, 0)),
		validation.Field(&r.Role, validation.Required, validation.In(models.RoleUser, models.RoleAdmin)),
		validation.Field(&r.Profile, validation.Required),
	)
}

type LoginRequest struct {
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmailAddress, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type StatusRequest struct {
	Enabled          *bool `json:"enabled"`
	AccountNonLocked *bool `json:"accountNonLocked"`
}

func (r StatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Enabled, validation.NotNil),
		validation.Field(&r.AccountNonLocked, validation.NotNil),
	)
}

type RoleRequest struct {
	Role models.Role `json:"role"`
}

func (r RoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.Required, validation.In(models.RoleUser, models.RoleAdmin)),
	)
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
}

type StatusResponse struct {
	Enabled          bool `json:"enabled"`
	AccountNonLocked bool `json:"accountNonLocked"`
}

// UserResponse 对外展示的身份，不包含密码 hash
type UserResponse struct {
	ID               uint            `json:"id"`
	UserName         string          `json:"userName"`
	Email            string          `json:"email"`
	Role             models.Role     `json:"role"`
	Enabled          bool            `json:"enabled"`
	AccountNonLocked bool            `json:"accountNonLocked"`
	Profile          ProfileResponse `json:"profile"`
}

type UserListResponse struct {
	Limit   int            `json:"limit"`
	PageMax int64          `json:"pageMax"`
	List    []UserResponse `json:"list"`
}

func NewProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Bio:       p.Bio,
	}
}

func NewStatusResponse(u *models.User) StatusResponse {
	return StatusResponse{
		Enabled:          u.Enabled,
		AccountNonLocked: !u.AccountLocked,
	}
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		UserName:         u.Username,
		Email:            u.Email,
		Role:             u.Role,
		Enabled:          u.Enabled,
		AccountNonLocked: !u.AccountLocked,
		Profile:          NewProfileResponse(&u.Profile),
	}
}
