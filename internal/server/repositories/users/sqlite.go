package users

import "github.com/dmitrijs2005/accountkeeper/internal/dbx"

var sqliteQueries = queries{
	create: `INSERT INTO users (id, username, email, telephone, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	getByUsername: `SELECT id, username, email, telephone, password_hash, reset_token, created_at FROM users
		 WHERE username = ?`,
	getByEmail: `SELECT id, username, email, telephone, password_hash, reset_token, created_at FROM users
		 WHERE email = ?`,
	getByResetToken: `SELECT id, username, email, telephone, password_hash, reset_token, created_at FROM users
		 WHERE reset_token = ?`,
	setResetToken: `UPDATE users SET reset_token = ?
		 WHERE id = ?`,
	updatePassword: `UPDATE users SET password_hash = ?, reset_token = NULL
		 WHERE id = ? AND reset_token = ?`,
}

// NewSQLiteRepository returns a Repository using SQLite placeholders.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, q: sqliteQueries}
}
