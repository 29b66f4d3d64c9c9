package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/cryptox"
	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/auth"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
)

// dummyPassword is hashed once at startup; Login compares against that hash
// for unknown emails so both failure paths cost one bcrypt comparison.
const dummyPassword = "notekeeper-dummy-password"

type TokenPair struct {
	AccessToken string
	TokenType   string
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenService
	bcryptCost  int
	dummyHash   string
	log         logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) (*UserService, error) {
	tokens, err := auth.NewTokenService(cfg.SecretKey, cfg.AccessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	cost := cryptox.NormalizeCost(cfg.BcryptCost)
	dummyHash, err := cryptox.HashPassword(dummyPassword, cost)
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}

	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		bcryptCost:  cost,
		dummyHash:   dummyHash,
		log:         log.With("module", "users"),
	}, nil
}

func validateSignup(name, email, password string) error {
	if strings.TrimSpace(name) == "" || email == "" || password == "" {
		return common.WithDetail(common.ErrorBadRequest, "Name, email and password are required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return common.WithDetail(common.ErrorBadRequest, "Invalid email address")
	}
	if len(password) > cryptox.MaxPasswordLength {
		return common.WithDetail(common.ErrorBadRequest, fmt.Sprintf("Password must be at most %d bytes", cryptox.MaxPasswordLength))
	}
	return nil
}

// Signup registers a new user. The email check and the insert share one
// transaction; a duplicate that slips past the check still surfaces as
// common.ErrorAlreadyExists through the unique index.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := validateSignup(name, email, password); err != nil {
		return nil, err
	}

	hash, err := cryptox.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.WithDetail(common.ErrorBadRequest, err.Error())
	}

	var user *models.User

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrorAlreadyExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		user, err = repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, errEmailExists
		}
		s.log.Error(ctx, "signup failed", "error", err)
		return nil, common.ErrorInternal
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login checks the credentials and issues an access token whose subject is
// the user id. Unknown email and wrong password are indistinguishable.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.VerifyPassword(password, s.dummyHash)
			return nil, errInvalidCredentials
		}
		s.log.Error(ctx, "login lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		return nil, errInvalidCredentials
	}

	token, err := s.tokens.Issue(map[string]any{auth.ClaimSubject: user.ID})
	if err != nil {
		s.log.Error(ctx, "token issue failed", "error", err)
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: token, TokenType: common.TokenTypeBearer}, nil
}

// Authenticate resolves the user behind an Authorization header value of
// the form "Bearer <token>". Bad or missing credentials yield
// common.ErrorUnauthorized; a valid token whose user no longer exists
// yields common.ErrorNotFound.
func (s *UserService) Authenticate(ctx context.Context, header string) (*models.User, error) {
	if header == "" {
		return nil, common.WithDetail(common.ErrorUnauthorized, "Not authenticated")
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], common.TokenTypeBearer) {
		return nil, common.WithDetail(common.ErrorUnauthorized, "Invalid authorization header")
	}

	claims, ok := s.tokens.Verify(parts[1])
	if !ok {
		return nil, errInvalidToken
	}

	userID, ok := auth.Subject(claims)
	if !ok {
		return nil, errUserNotFound
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, errUserNotFound
		}
		s.log.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	return user, nil
}
