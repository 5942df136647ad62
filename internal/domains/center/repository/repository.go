package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"crowd/infras/database"
	"crowd/infras/otel"
	"crowd/internal/domains/center/model"
	gDto "crowd/shared/dto"
	gRepo "crowd/shared/repository"
)

type Center interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Center, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Center, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Center]
	db   *database.Connection
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Center {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Center](model.EntityName, model.TableName, model.FieldCenterID, db, otel),
		db:         db,
		otel:       otel,
	}
}
