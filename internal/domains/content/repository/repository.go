package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lbm/infras/otel"
	"lbm/infras/postgres"
	"lbm/internal/domains/content/model"
	gDto "lbm/shared/dto"
	gRepo "lbm/shared/repository"
)

type Content interface {
	Insert(ctx context.Context, model model.PageContent) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PageContent, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PageContent]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Content {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PageContent](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
