package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lbm/config"
	"lbm/infras/otel/mocks"
	contentMocks "lbm/internal/domains/content/mocks"
	"lbm/internal/domains/content/model"
	"lbm/internal/domains/content/model/dto"
	"lbm/internal/domains/content/service"
	"lbm/shared/cache"
	"lbm/shared/constant"
	"lbm/shared/failure"
)

func newTestCache(t *testing.T) cache.RedisCache {
	t.Helper()

	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})

	return cache.NewRedisCache(client, mocks.NewOtel())
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return cfg
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyAdminUsername, "admin")
}

func TestContentService_Get(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		setupMock func(mockRepo *contentMocks.MockContent)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			page: model.PageHome,
			setupMock: func(mockRepo *contentMocks.MockContent) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PageContent{
						ID:      "content-id",
						PageKey: model.PageHome,
						Fields:  model.FieldMap{"hero_title": "Welcome"},
					}, nil)
			},
		},
		{
			name: "caller-defined key outside the editor pages",
			page: "blog",
			setupMock: func(mockRepo *contentMocks.MockContent) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PageContent{
						ID:      "content-id",
						PageKey: "blog",
						Fields:  model.FieldMap{"hero_title": "Welcome"},
					}, nil)
			},
		},
		{
			name: "not found",
			page: model.PageAbout,
			setupMock: func(mockRepo *contentMocks.MockContent) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PageContent{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "unsaved caller-defined key",
			page: "pricing",
			setupMock: func(mockRepo *contentMocks.MockContent) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PageContent{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			page: model.PageContact,
			setupMock: func(mockRepo *contentMocks.MockContent) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PageContent{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := contentMocks.NewMockContent(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, newTestConfig(), newTestCache(t), mocks.NewOtel())

			res, err := svc.Get(context.Background(), tt.page)

			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.page, res.Page)
			assert.Equal(t, "Welcome", res.Fields["hero_title"])
		})
	}
}

func TestContentService_Update(t *testing.T) {
	req := dto.UpdateContentRequest{
		Fields: map[string]string{"hero_title": "New Title"},
	}

	tests := []struct {
		name      string
		page      string
		setupMock func(mockRepo *contentMocks.MockContent)
		wantErr   bool
	}{
		{
			name: "updates existing page",
			page: model.PageHome,
			setupMock: func(mockRepo *contentMocks.MockContent) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						assert.Equal(t, model.FieldMap(req.Fields), fields[model.FieldFields])
						assert.Equal(t, "admin", fields[constant.FieldModifiedBy])

						return nil
					})
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PageContent{
						ID:      "content-id",
						PageKey: model.PageHome,
						Fields:  model.FieldMap(req.Fields),
					}, nil)
			},
		},
		{
			name: "inserts missing page",
			page: model.PageServices,
			setupMock: func(mockRepo *contentMocks.MockContent) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, content model.PageContent) error {
						assert.Equal(t, model.PageServices, content.PageKey)
						assert.NotEmpty(t, content.ID)

						return nil
					})
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PageContent{
						ID:      "content-id",
						PageKey: model.PageServices,
						Fields:  model.FieldMap(req.Fields),
					}, nil)
			},
		},
		{
			name: "inserts caller-defined key outside the editor pages",
			page: "blog",
			setupMock: func(mockRepo *contentMocks.MockContent) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, content model.PageContent) error {
						assert.Equal(t, "blog", content.PageKey)

						return nil
					})
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PageContent{
						ID:      "content-id",
						PageKey: "blog",
						Fields:  model.FieldMap(req.Fields),
					}, nil)
			},
		},
		{
			name: "repository error",
			page: model.PageAbout,
			setupMock: func(mockRepo *contentMocks.MockContent) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := contentMocks.NewMockContent(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, newTestConfig(), newTestCache(t), mocks.NewOtel())

			res, err := svc.Update(adminContext(), req, tt.page)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.page, res.Page)
			assert.Equal(t, "New Title", res.Fields["hero_title"])
		})
	}
}
