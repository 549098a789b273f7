package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/pkg/apperror"
	"github.com/eximdesk/eximdesk-api/pkg/utils"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func newAuthServiceForTest(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, jwtManager), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo) *entity.User {
	t.Helper()
	hashed, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	user := &entity.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: hashed,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLoginWithUsername(t *testing.T) {
	svc, repo := newAuthServiceForTest(t)
	seedUser(t, repo)

	output, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "admin", output.User.Username)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
}

func TestLoginFallsBackToEmail(t *testing.T) {
	svc, repo := newAuthServiceForTest(t)
	seedUser(t, repo)

	output, err := svc.Login(context.Background(), &LoginInput{Username: "admin@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "admin", output.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo := newAuthServiceForTest(t)
	seedUser(t, repo)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "wrong"})

	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "nobody", Password: "secret123"})

	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc, repo := newAuthServiceForTest(t)
	seedUser(t, repo)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Username: "admin",
		Email:    "other@example.com",
		Password: "secret123",
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc, repo := newAuthServiceForTest(t)
	seedUser(t, repo)

	login, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)

	require.NoError(t, err)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
