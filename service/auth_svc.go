package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/weaversoft/snapwatch/domain"
	"github.com/weaversoft/snapwatch/errs"
	"github.com/weaversoft/snapwatch/pkg/logger"
	"github.com/weaversoft/snapwatch/pkg/util"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const tokenIssuer = "snapwatch-api-server"

// CreateAdminUserIfNotExists seeds the configured admin account on startup.
// It is a no-op when a user with that name already exists.
func (svc *Service) CreateAdminUserIfNotExists(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}
	opts := &domain.QueryUserOptions{
		UserNames: []string{username},
	}
	err := svc.Repo.QueryUsers(ctx, opts)
	if err != nil {
		return fmt.Errorf("query admin user: %w", err)
	}
	if len(opts.Result) > 0 {
		return nil
	}

	creatorID := bson.NewObjectID()
	user := domain.User{
		BaseEntity: domain.NewBaseEntity(util.Ptr(creatorID), util.Ptr(creatorID)),
		UserName:   username,
		Password:   domain.EncryptedPassword(password),
		Status:     domain.UserStatusActive,
	}
	user.ID = creatorID
	err = svc.Repo.CreateUser(ctx, &user)
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	logger.Logger(ctx).Info().Msgf("created admin user %s", username)
	return nil
}

func (svc *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.getUserByName(ctx, username)
	if err != nil {
		return "", err
	}
	ok, err := user.Password.Cmp(password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errs.NewHTTPStatusError(http.StatusUnauthorized, "invalid username or password", nil)
	}
	token, err := svc.genJWTToken(ctx, user)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (svc *Service) ChangePassword(ctx context.Context, operator *domain.Claims, oldPassword, newPassword string) error {
	operatorID, err := operator.GetBsonObjectUID()
	if err != nil {
		return errs.NewHTTPStatusError(http.StatusUnauthorized, fmt.Sprintf("invalid operator ID %s", operator.UID), err)
	}
	opts := &domain.QueryUserOptions{
		IDs: []bson.ObjectID{operatorID},
	}
	err = svc.Repo.QueryUsers(ctx, opts)
	if err != nil {
		return err
	}
	if len(opts.Result) == 0 {
		return errs.NewHTTPStatusError(http.StatusUnauthorized, "user no longer exists", nil)
	}
	user := opts.Result[0]

	ok, err := user.Password.Cmp(oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewHTTPStatusError(http.StatusUnauthorized, "invalid old password", nil)
	}
	user.Password = domain.EncryptedPassword(newPassword)
	user.Status = domain.UserStatusActive
	user.UpdatedTime = time.Now().UnixMilli()
	user.UpdaterID = operatorID
	err = svc.Repo.UpdateUser(ctx, user)
	if err != nil {
		return err
	}
	return nil
}

func (svc *Service) VerifyJWTToken(ctx context.Context, tokenString string) (domain.Claims, error) {
	claims := domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &svc.jwtPrivateKey.PublicKey, nil
	})
	if err != nil {
		return claims, errs.NewHTTPStatusError(http.StatusUnauthorized, "invalid token", err)
	}
	if !token.Valid {
		return claims, errs.NewHTTPStatusError(http.StatusUnauthorized, "invalid token", nil)
	}
	return claims, nil
}

func (svc *Service) getUserByName(ctx context.Context, username string) (*domain.User, error) {
	opts := &domain.QueryUserOptions{
		UserNames: []string{username},
	}
	err := svc.Repo.QueryUsers(ctx, opts)
	if err != nil {
		return nil, err
	}
	users := opts.Result
	if len(users) == 0 {
		return nil, errs.NewHTTPStatusError(http.StatusUnauthorized, "invalid username or password", domain.ErrNotFound)
	}

	return users[0], nil
}

func (svc *Service) genJWTToken(ctx context.Context, user *domain.User) (string, error) {
	tokenTTL := time.Duration(3) * time.Hour
	uid := user.ID.Hex()

	claims := domain.Claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
			Subject:   uid,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(svc.jwtPrivateKey)
}
