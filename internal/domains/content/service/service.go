package service

import (
	"context"
	"fmt"

	"lbm/config"
	"lbm/infras/otel"
	"lbm/internal/domains/content/model"
	"lbm/internal/domains/content/model/dto"
	"lbm/internal/domains/content/repository"
	"lbm/shared"
	"lbm/shared/cache"
	"lbm/shared/constant"
	gDto "lbm/shared/dto"
	"lbm/shared/failure"
	"lbm/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetContent = "content:get"
)

type Content interface {
	Get(ctx context.Context, page string) (dto.ContentResponse, error)
	Update(ctx context.Context, req dto.UpdateContentRequest, page string) (dto.ContentResponse, error)
}

type serviceImpl struct {
	repo  repository.Content
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Content, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Content {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get returns the stored content for a page key. Keys are caller-defined, so
// an unsaved key is simply not found.
func (s *serviceImpl) Get(ctx context.Context, page string) (res dto.ContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetContent, page)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for page content")

		return res, nil
	}

	content, err := s.repo.Get(ctx, pageFilter(page))
	if err != nil {
		log.Error().Err(err).Msg("failed to get page content")

		return res, fmt.Errorf("failed to get page content: %w", err)
	}

	if content.ID == constant.Empty {
		return res, failure.NotFound("page content not found") // nolint:wrapcheck
	}

	res.FromModel(content)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save page content to cache")
		}
	}()

	return res, nil
}

// Update replaces the whole field map of a page. Partial merges are not
// supported: the request payload becomes the page content.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateContentRequest, page string) (res dto.ContentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, _ := ctx.Value(constant.ContextKeyAdminUsername).(string)
	filter := pageFilter(page)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if page content exists")

		return res, fmt.Errorf("failed to check if page content exists: %w", err)
	}

	if exist {
		updatedFields := map[string]any{
			model.FieldFields:        model.FieldMap(req.Fields),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: admin,
		}

		if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update page content")

			return res, fmt.Errorf("failed to update page content: %w", err)
		}
	} else {
		if err = s.repo.Insert(ctx, req.ToModel(page, admin)); err != nil {
			log.Error().Err(err).Msg("failed to insert page content")

			return res, fmt.Errorf("failed to insert page content: %w", err)
		}
	}

	content, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated page content")

		return res, fmt.Errorf("failed to get updated page content: %w", err)
	}

	res.FromModel(content)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetContent, page)); err != nil {
			log.Error().Err(err).Msg("failed to delete page content from cache")
		}
	}()

	return res, nil
}

func pageFilter(page string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPageKey,
				Operator: gDto.FilterOperatorEq,
				Value:    page,
				Table:    model.TableName,
			},
		},
	}
}
