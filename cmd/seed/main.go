package main

import (
	"context"

	"lbm/config"
	"lbm/infras/otel"
	"lbm/infras/postgres"
	adminModel "lbm/internal/domains/admin/model"
	adminRepo "lbm/internal/domains/admin/repository"
	"lbm/shared/constant"
	gDto "lbm/shared/dto"
	"lbm/shared/logger"
	gModel "lbm/shared/model"
	"lbm/shared/password"
	"lbm/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultUsername = "admin"
	defaultPassword = "admin123"
	defaultName     = "Administrator"
)

// Seeds the default admin account. Safe to run repeatedly: an existing
// account with the default username is left untouched.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx := context.Background()

	db := postgres.New(cfg)
	repo := adminRepo.New(db, otel.New(cfg))

	usernameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    adminModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    defaultUsername,
				Table:    adminModel.TableName,
			},
		},
	}

	exists, err := repo.Exist(ctx, usernameFilter)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check for existing admin")
	}

	if exists {
		log.Info().Str("username", defaultUsername).Msg("Admin account already exists, nothing to do")

		return
	}

	hashedPassword, err := password.Hash(defaultPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash default password")
	}

	admin := adminModel.Admin{
		ID:       uuid.NewString(),
		Username: defaultUsername,
		Password: hashedPassword,
		Name:     defaultName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemActor,
			ModifiedBy: constant.SystemActor,
		},
	}

	if err := repo.Insert(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("Failed to insert default admin")
	}

	log.Info().
		Str("username", defaultUsername).
		Msg("Default admin account created, change the password after first login")
}
