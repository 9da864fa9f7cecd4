package dto

import (
	"time"

	"lbm/infras/jwt"
	adminModel "lbm/internal/domains/admin/model"
	"lbm/shared/constant"
	gDto "lbm/shared/dto"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminResponse struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (a *AdminResponse) FromModel(model adminModel.Admin) {
	a.Name = model.Name
	a.Username = model.Username
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	Admin        AdminResponse `json:"admin"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ProfileResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	LastLogin string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (p *ProfileResponse) FromModel(model adminModel.Admin) {
	p.ID = model.ID
	p.Username = model.Username
	p.Name = model.Name
	p.Email = model.Email

	if model.LastLogin.Valid {
		p.LastLogin = model.LastLogin.Time.Format(constant.DateFormat)
	}

	p.Metadata.FromModel(model.Metadata)
}

type UpdateProfileRequest struct {
	Name  string `db:"name"  json:"name"  validate:"required,max=100"`
	Email string `db:"email" json:"email" validate:"omitempty,email,max=100"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=6"`
}
