// Package services contains server-side business logic. AccountService
// implements signup, credential login and the two-step password reset on top
// of the users repository.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/cryptox"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/server/config"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// resetTokenBytes is the amount of randomness in a reset token; the token
// itself is hex encoded and twice as long.
const resetTokenBytes = 32

// SignupInput carries the fields accepted by Signup. Telephone is optional.
type SignupInput struct {
	UserName  string
	Password  string
	Email     string
	Telephone string
}

// LoginResult is what a successful login reveals about the account. It never
// carries the password hash or a pending reset token. No session is created;
// a session layer, if any, is expected to consume this value.
type LoginResult struct {
	ID       string
	UserName string
	Email    string
}

// AccountService provides account operations:
// - Signup: create an account with a bcrypt password hash
// - Login: verify credentials
// - RequestReset / ResetPassword: issue and consume a single-use reset token
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *cryptox.PasswordHasher
	logger      logging.Logger

	newID    func() string
	newToken func() (string, error)
	now      func() time.Time
}

// NewAccountService constructs an AccountService using repositories and
// server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      cryptox.NewPasswordHasher(cfg.BcryptCost),
		logger:      logger,
		newID:       uuid.NewString,
		newToken:    func() (string, error) { return common.MakeRandHexString(resetTokenBytes) },
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Signup validates in, hashes the password and stores a new account. It
// returns the generated account id. A taken username or email yields
// common.ErrorAlreadyExists, also when a concurrent signup wins the race.
func (s *AccountService) Signup(ctx context.Context, in SignupInput) (string, error) {
	in.UserName = strings.TrimSpace(in.UserName)
	in.Email = strings.TrimSpace(in.Email)
	in.Telephone = strings.TrimSpace(in.Telephone)

	if in.UserName == "" || in.Password == "" || in.Email == "" {
		return "", ErrSignupFieldsRequired
	}
	if len(in.Password) > cryptox.MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := s.hasher.HashPassword(in.Password)
	if err != nil {
		s.logger.Error(ctx, "signup: hashing failed", "err", err)
		return "", common.ErrorInternal
	}

	user := &models.User{
		ID:           s.newID(),
		UserName:     in.UserName,
		Email:        in.Email,
		Telephone:    in.Telephone,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		s.logger.Error(ctx, "signup: insert failed", "err", err)
		return "", common.ErrorInternal
	}

	s.logger.Info(ctx, "account created", "user_id", u.ID)
	return u.ID, nil
}

// Login checks username and password. An unknown username and a wrong
// password both yield ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrLoginFieldsRequired
	}

	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error(ctx, "login: lookup failed", "err", err)
		return nil, common.ErrorInternal
	}

	if err := s.hasher.ComparePassword(user.PasswordHash, password); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			s.logger.Warn(ctx, "login: stored hash unusable", "user_id", user.ID, "err", err)
		}
		return nil, ErrInvalidCredentials
	}

	return &LoginResult{ID: user.ID, UserName: user.UserName, Email: user.Email}, nil
}

// RequestReset issues a fresh reset token for the account registered under
// email and returns it. Any previously issued token stops working.
func (s *AccountService) RequestReset(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", ErrUserNotFound
		}
		s.logger.Error(ctx, "request-reset: lookup failed", "err", err)
		return "", common.ErrorInternal
	}

	token, err := s.newToken()
	if err != nil {
		s.logger.Error(ctx, "request-reset: token generation failed", "err", err)
		return "", common.ErrorInternal
	}

	if err := repo.SetResetToken(ctx, user.ID, token); err != nil {
		s.logger.Error(ctx, "request-reset: store failed", "user_id", user.ID, "err", err)
		return "", common.ErrorInternal
	}

	s.logger.Info(ctx, "reset token issued", "user_id", user.ID)
	return token, nil
}

// ResetPassword consumes token and replaces the account's password. The
// lookup and the conditional update run in one transaction, and the update
// only matches while the token is still stored, so a token works at most
// once. Unknown, superseded and consumed tokens yield common.ErrInvalidToken.
func (s *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return ErrResetFieldsRequired
	}
	if len(newPassword) > cryptox.MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	hash, err := s.hasher.HashPassword(newPassword)
	if err != nil {
		s.logger.Error(ctx, "reset: hashing failed", "err", err)
		return common.ErrorInternal
	}

	var userID string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByResetToken(ctx, token)
		if err != nil {
			return err
		}
		userID = user.ID
		return repo.UpdatePassword(ctx, user.ID, token, hash)
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		s.logger.Error(ctx, "reset: update failed", "err", err)
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "password reset", "user_id", userID)
	return nil
}
