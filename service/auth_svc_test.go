package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/weaversoft/snapwatch/config"
	"github.com/weaversoft/snapwatch/domain"
	"github.com/weaversoft/snapwatch/errs"
	"github.com/weaversoft/snapwatch/pkg/util"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newAuthService(t *testing.T, repo domain.Repository) *Service {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	svc := newTestService(repo, domain.NewMockTriggerDispatcher(t), func(ctx context.Context, conn domain.ClusterConnection) (domain.EventSource, error) {
		return domain.NewMockEventSource(t), nil
	})
	svc.jwtPrivateKey = key
	return svc
}

func storedUser(t *testing.T, username, password string) *domain.User {
	hash, err := util.CreateArgon2Hash(password)
	require.NoError(t, err)
	return &domain.User{
		BaseEntity: domain.BaseEntity{ID: bson.NewObjectID()},
		UserName:   username,
		Password:   domain.EncryptedPassword(hash),
		Status:     domain.UserStatusActive,
	}
}

func expectUserQuery(repo *domain.MockRepository, result ...*domain.User) {
	repo.EXPECT().
		QueryUsers(mock.Anything, mock.Anything).
		Run(func(_ context.Context, opt *domain.QueryUserOptions) {
			opt.Result = result
		}).
		Return(nil)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	ctx := context.Background()
	user := storedUser(t, "admin", "s3cret")
	repo := domain.NewMockRepository(t)
	expectUserQuery(repo, user)

	svc := newAuthService(t, repo)

	token, err := svc.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyJWTToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UID)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectUserQuery(repo, storedUser(t, "admin", "s3cret"))

	svc := newAuthService(t, repo)

	_, err := svc.Login(ctx, "admin", "wrong")
	require.Error(t, err)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestLoginUnknownUser(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectUserQuery(repo)

	svc := newAuthService(t, repo)

	_, err := svc.Login(ctx, "ghost", "whatever")
	require.Error(t, err)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestVerifyJWTTokenRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, domain.NewMockRepository(t))

	_, err := svc.VerifyJWTToken(ctx, "not-a-token")
	require.Error(t, err)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestVerifyJWTTokenRejectsForeignKey(t *testing.T) {
	ctx := context.Background()
	user := storedUser(t, "admin", "s3cret")
	repo := domain.NewMockRepository(t)
	expectUserQuery(repo, user)

	issuer := newAuthService(t, repo)
	token, err := issuer.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)

	verifier := newAuthService(t, domain.NewMockRepository(t))
	_, err = verifier.VerifyJWTToken(ctx, token)
	require.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	user := storedUser(t, "admin", "old-pass")
	repo := domain.NewMockRepository(t)
	expectUserQuery(repo, user)

	var updated *domain.User
	repo.EXPECT().
		UpdateUser(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) {
			updated = u
		}).
		Return(nil).
		Once()

	svc := newAuthService(t, repo)

	operator := &domain.Claims{UID: user.ID.Hex()}
	err := svc.ChangePassword(ctx, operator, "old-pass", "new-pass")
	require.NoError(t, err)
	require.NotNil(t, updated)
	// The repository receives the plaintext; hashing happens on the way
	// into MongoDB.
	assert.Equal(t, domain.EncryptedPassword("new-pass"), updated.Password)
	assert.Equal(t, domain.UserStatusActive, updated.Status)
	assert.Equal(t, user.ID, updated.UpdaterID)
}

func TestChangePasswordRejectsWrongOldPassword(t *testing.T) {
	ctx := context.Background()
	user := storedUser(t, "admin", "old-pass")
	repo := domain.NewMockRepository(t)
	expectUserQuery(repo, user)

	svc := newAuthService(t, repo)

	err := svc.ChangePassword(ctx, &domain.Claims{UID: user.ID.Hex()}, "wrong", "new-pass")
	require.Error(t, err)
	httpErr, ok := errs.IsHTTPStatusError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}

func TestCreateAdminUserIfNotExists(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectUserQuery(repo)

	var created *domain.User
	repo.EXPECT().
		CreateUser(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) {
			created = u
		}).
		Return(nil).
		Once()

	svc := newAuthService(t, repo)

	require.NoError(t, svc.CreateAdminUserIfNotExists(ctx, "admin", "bootstrap-pass"))
	require.NotNil(t, created)
	assert.Equal(t, "admin", created.UserName)
	assert.Equal(t, domain.UserStatusActive, created.Status)
	assert.Equal(t, created.ID, created.CreatorID)
}

func TestCreateAdminUserSkipsExisting(t *testing.T) {
	ctx := context.Background()
	repo := domain.NewMockRepository(t)
	expectUserQuery(repo, storedUser(t, "admin", "existing"))

	svc := newAuthService(t, repo)

	// No CreateUser expectation; an unexpected insert fails the test.
	require.NoError(t, svc.CreateAdminUserIfNotExists(ctx, "admin", "bootstrap-pass"))
}

func TestNewServiceGeneratesEphemeralKey(t *testing.T) {
	repo := domain.NewMockRepository(t)
	params := Params{
		Repo:       repo,
		Dispatcher: domain.NewMockTriggerDispatcher(t),
		SourceFactory: func(ctx context.Context, conn domain.ClusterConnection) (domain.EventSource, error) {
			return domain.NewMockEventSource(t), nil
		},
		KeyConfig:     config.KeyConfig{RsaPrivateKeyPem: ""},
		AccountConfig: config.AccountConfig{AdminUser: "admin"},
		HookConfig:    config.HookConfig{Endpoint: "http://hook.local/api/snap", TimeoutSeconds: 1},
		WatchConfig:   testWatchConfig(),
	}

	first, err := NewService(params)
	require.NoError(t, err)
	require.NotNil(t, first)

	// A second construction in the same process must tolerate the already
	// registered metric collector.
	second, err := NewService(params)
	require.NoError(t, err)
	require.NotNil(t, second)
}

func TestInitRSAPrivateKeyRejectsBadPEM(t *testing.T) {
	_, err := initRSAPrivateKey("not a pem block")
	require.Error(t, err)
}
