package client

import (
	"context"
)

// Client is the account API as seen by the CLI. Passwords are passed as
// byte slices so callers can wipe them after the call.
type Client interface {
	Signup(ctx context.Context, in SignupData) (string, error)
	Login(ctx context.Context, username string, password []byte) (*User, error)
	RequestReset(ctx context.Context, email string) (string, error)
	Reset(ctx context.Context, token string, newPassword []byte) error
}

// SignupData is the input of Client.Signup. Telephone may be empty.
type SignupData struct {
	UserName  string
	Password  []byte
	Email     string
	Telephone string
}

// User is the account echo returned by a successful login.
type User struct {
	ID       string `json:"id"`
	UserName string `json:"username"`
	Email    string `json:"email"`
}
