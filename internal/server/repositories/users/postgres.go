package users

import "github.com/dmitrijs2005/accountkeeper/internal/dbx"

var postgresQueries = queries{
	create: `INSERT INTO users (id, username, email, telephone, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
	getByUsername: `SELECT id, username, email, telephone, password_hash, reset_token, created_at FROM users
		 WHERE username = $1`,
	getByEmail: `SELECT id, username, email, telephone, password_hash, reset_token, created_at FROM users
		 WHERE email = $1`,
	getByResetToken: `SELECT id, username, email, telephone, password_hash, reset_token, created_at FROM users
		 WHERE reset_token = $1`,
	setResetToken: `UPDATE users SET reset_token = $1
		 WHERE id = $2`,
	updatePassword: `UPDATE users SET password_hash = $1, reset_token = NULL
		 WHERE id = $2 AND reset_token = $3`,
}

// NewPostgresRepository returns a Repository using PostgreSQL placeholders.
func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: postgresQueries}
}
