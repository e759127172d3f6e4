package commands

import (
	"context"
	"slices"
	"strings"

	"tastebite/internal/domain/user"
	"tastebite/internal/infra"
	"tastebite/internal/pkg/config"
	"tastebite/internal/pkg/errs"
	"tastebite/internal/pkg/jwt"
	"tastebite/internal/pkg/password"
	"tastebite/internal/usecase/queries"
	"tastebite/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrUserAlreadyExists    = errs.New("user already exists")
	ErrInvalidUserInput     = errs.New("invalid user input")
	ErrInvalidRefreshToken  = errs.New("invalid refresh token")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	User   *queries.AuthorizedUserView
	Tokens TokenPair
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthCommands interface {
	// Register creates the account and logs it in immediately.
	Register(ctx context.Context, input RegisterInput) (*LoginResult, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authUseCaseImpl struct {
	uow         shared.UnitOfWork
	userReads   queries.UserReadStore
	jwtService  *jwt.Service
	adminEmails []string
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	userReads queries.UserReadStore,
	jwtService *jwt.Service,
	adminCfg config.AdminConfig,
) AuthCommands {
	return &authUseCaseImpl{
		uow:         uow,
		userReads:   userReads,
		jwtService:  jwtService,
		adminEmails: adminCfg.Emails,
	}
}

func (uc *authUseCaseImpl) Register(ctx context.Context, input RegisterInput) (*LoginResult, error) {
	creds, err := user.NewCredentials(input.Email, input.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}
	username, err := user.NewUsername(input.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidUserInput)
	}

	role := user.RoleCustomer
	if uc.isAdminEmail(creds.Email().Value()) {
		role = user.RoleAdmin
	}

	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity := user.NewUser(username, creds.Email(), hash, role)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().Create(ctx, tx.DB(), shared.CreateUserParams{
			ID:           entity.ID(),
			Username:     entity.Username().Value(),
			Email:        entity.Email().Value(),
			PasswordHash: entity.PasswordHash(),
			Role:         entity.Role().String(),
		})
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrUserAlreadyExists)
		}
		return nil, err
	}

	tokens, err := uc.issueTokens(entity.ID(), entity.Role())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User: &queries.AuthorizedUserView{
			ID:       entity.ID(),
			Username: entity.Username().Value(),
			Email:    entity.Email().Value(),
			Role:     entity.Role().String(),
			IsActive: true,
		},
		Tokens: *tokens,
	}, nil
}

func (uc *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	view, hash, err := uc.userReads.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAuthenticationFailed)
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrAuthenticationFailed
	}
	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to record login")
	}

	tokens, err := uc.issueTokens(view.ID, role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: view, Tokens: *tokens}, nil
}

func (uc *authUseCaseImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := uc.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRefreshToken)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	return uc.issueTokens(claims.UserID, role)
}

func (uc *authUseCaseImpl) isAdminEmail(email string) bool {
	return slices.ContainsFunc(uc.adminEmails, func(e string) bool {
		return strings.EqualFold(strings.TrimSpace(e), email)
	})
}

func (uc *authUseCaseImpl) issueTokens(id uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := uc.jwtService.GenerateAccessToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}
	refreshToken, err := uc.jwtService.GenerateRefreshToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
