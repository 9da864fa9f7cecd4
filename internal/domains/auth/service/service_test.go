package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lbm/config"
	"lbm/infras/jwt"
	"lbm/infras/otel/mocks"
	adminMocks "lbm/internal/domains/admin/mocks"
	adminModel "lbm/internal/domains/admin/model"
	"lbm/internal/domains/auth/model/dto"
	"lbm/internal/domains/auth/service"
	"lbm/shared/failure"
	"lbm/shared/password"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "lbm-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 1440

	return cfg
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()

	hashed, err := password.Hash(plain)
	require.NoError(t, err)

	return hashed
}

func TestAuthService_Login(t *testing.T) {
	cfg := newTestConfig()
	hashed := hashedPassword(t, "admin123")

	admin := adminModel.Admin{
		ID:       "admin-id",
		Username: "admin",
		Password: hashed,
		Name:     "Administrator",
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(mockRepo *adminMocks.MockAdmin)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Username: "admin", Password: "admin123"},
			setupMock: func(mockRepo *adminMocks.MockAdmin) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown username",
			req:  dto.LoginRequest{Username: "ghost", Password: "admin123"},
			setupMock: func(mockRepo *adminMocks.MockAdmin) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "admin", Password: "nope"},
			setupMock: func(mockRepo *adminMocks.MockAdmin) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Username: "admin", Password: "admin123"},
			setupMock: func(mockRepo *adminMocks.MockAdmin) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := adminMocks.NewMockAdmin(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, cfg, mocks.NewOtel(), jwt.New(cfg))

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
					assert.Contains(t, err.Error(), "invalid username or password")
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.AccessToken)
			assert.NotEmpty(t, res.RefreshToken)
			assert.Equal(t, "admin", res.Admin.Username)
			assert.Equal(t, "Administrator", res.Admin.Name)
		})
	}
}

func TestAuthService_LoginFailuresShareOneMessage(t *testing.T) {
	cfg := newTestConfig()
	ctrl := gomock.NewController(t)

	mockRepo := adminMocks.NewMockAdmin(ctrl)
	svc := service.New(mockRepo, cfg, mocks.NewOtel(), jwt.New(cfg))

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(adminModel.Admin{}, nil)
	_, unknownUserErr := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "x"})

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(adminModel.Admin{ID: "admin-id", Username: "admin", Password: hashedPassword(t, "right")}, nil)
	_, wrongPasswordErr := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "wrong"})

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}

func TestAuthService_RefreshToken(t *testing.T) {
	cfg := newTestConfig()
	ctrl := gomock.NewController(t)

	mockRepo := adminMocks.NewMockAdmin(ctrl)
	jwtService := jwt.New(cfg)
	svc := service.New(mockRepo, cfg, mocks.NewOtel(), jwtService)

	pair, err := jwtService.GenerateTokenPair("admin-id", "admin")
	require.NoError(t, err)

	res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)

	_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: pair.AccessToken})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_GetProfile(t *testing.T) {
	cfg := newTestConfig()

	tests := []struct {
		name      string
		setupMock func(mockRepo *adminMocks.MockAdmin)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(mockRepo *adminMocks.MockAdmin) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{
						ID:       "admin-id",
						Username: "admin",
						Name:     "Administrator",
						Email:    "admin@example.com",
					}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func(mockRepo *adminMocks.MockAdmin) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := adminMocks.NewMockAdmin(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, cfg, mocks.NewOtel(), jwt.New(cfg))

			res, err := svc.GetProfile(context.Background(), "admin-id")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "admin", res.Username)
			assert.Equal(t, "admin@example.com", res.Email)
		})
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	cfg := newTestConfig()
	ctrl := gomock.NewController(t)

	mockRepo := adminMocks.NewMockAdmin(ctrl)
	svc := service.New(mockRepo, cfg, mocks.NewOtel(), jwt.New(cfg))

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(adminModel.Admin{ID: "admin-id", Username: "admin", Name: "Old Name"}, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
			assert.Equal(t, "New Name", fields[adminModel.FieldName])

			return nil
		})
	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(adminModel.Admin{ID: "admin-id", Username: "admin", Name: "New Name"}, nil)

	res, err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{Name: "New Name"}, "admin-id")

	require.NoError(t, err)
	assert.Equal(t, "New Name", res.Name)
}

func TestAuthService_ChangePassword(t *testing.T) {
	cfg := newTestConfig()
	hashed := hashedPassword(t, "admin123")

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(mockRepo *adminMocks.MockAdmin)
		wantErr   bool
	}{
		{
			name: "successful change",
			req:  dto.ChangePasswordRequest{CurrentPassword: "admin123", NewPassword: "newpass"},
			setupMock: func(mockRepo *adminMocks.MockAdmin) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{ID: "admin-id", Username: "admin", Password: hashed}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						newHash, ok := fields[adminModel.FieldPassword].(string)
						require.True(t, ok)
						assert.NoError(t, password.Verify("newpass", newHash))

						return nil
					})
			},
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newpass"},
			setupMock: func(mockRepo *adminMocks.MockAdmin) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{ID: "admin-id", Username: "admin", Password: hashed}, nil)
			},
			wantErr: true,
		},
		{
			name: "admin not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "admin123", NewPassword: "newpass"},
			setupMock: func(mockRepo *adminMocks.MockAdmin) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(adminModel.Admin{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := adminMocks.NewMockAdmin(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, cfg, mocks.NewOtel(), jwt.New(cfg))

			err := svc.ChangePassword(context.Background(), tt.req, "admin-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
