package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

// queries is the per-dialect statement set used by SQLRepository.
type queries struct {
	create          string
	getByUsername   string
	getByEmail      string
	getByResetToken string
	setResetToken   string
	updatePassword  string
}

// SQLRepository implements Repository over dbx.DBTX (satisfied by *sql.DB
// or *sql.Tx). Dialects differ only in their statements.
type SQLRepository struct {
	db dbx.DBTX
	q  queries
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	_, err := dbx.Execute(ctx, r.db, r.q.create,
		user.ID, user.UserName, user.Email, user.Telephone, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, err
	}

	user.ResetToken = nil
	return user, nil
}

func (r *SQLRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, r.q.getByUsername, username)
}

func (r *SQLRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, r.q.getByEmail, email)
}

func (r *SQLRepository) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	return r.getOne(ctx, r.q.getByResetToken, token)
}

func (r *SQLRepository) SetResetToken(ctx context.Context, userID string, token string) error {
	res, err := dbx.Execute(ctx, r.db, r.q.setResetToken, token, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *SQLRepository) UpdatePassword(ctx context.Context, userID string, token string, passwordHash string) error {
	res, err := dbx.Execute(ctx, r.db, r.q.updatePassword, passwordHash, userID, token)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *SQLRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	var token sql.NullString

	found, err := dbx.FetchOne(ctx, r.db, query, []any{arg},
		&user.ID, &user.UserName, &user.Email, &user.Telephone, &user.PasswordHash, &token, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, common.ErrorNotFound
	}

	if token.Valid {
		user.ResetToken = &token.String
	}
	return user, nil
}

// requireAffected maps "no row changed" to common.ErrorNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
