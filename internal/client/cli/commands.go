package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/client/client"
	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

// Client-side checks, worded like the browser client.
var (
	errSignupRequired = errors.New("username, password and email required")
	errLoginRequired  = errors.New("username and password required")
	errEmailRequired  = errors.New("email required")
	errResetRequired  = errors.New("token and new password required")
	errPasswordsMatch = errors.New("passwords must match")
)

func (a *App) Signup(ctx context.Context) error {

	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	repeat, err := getPassword("Repeat password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(repeat)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	telephone, err := getSimpleText(a.reader, "Enter telephone (optional)", a.out)
	if err != nil {
		return err
	}

	if userName == "" || len(password) == 0 || email == "" {
		return errSignupRequired
	}
	if !bytes.Equal(password, repeat) {
		return errPasswordsMatch
	}

	if _, err := a.client.Signup(ctx, client.SignupData{
		UserName:  userName,
		Password:  password,
		Email:     email,
		Telephone: telephone,
	}); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created. You can now login.")
	return nil
}

func (a *App) Login(ctx context.Context) error {

	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if userName == "" || len(password) == 0 {
		return errLoginRequired
	}

	user, err := a.client.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	a.userName = user.UserName
	fmt.Fprintf(a.out, "Login successful, welcome %s\n", user.UserName)
	return nil
}

// RequestReset prints the token the server hands back. The server does not
// mail it anywhere.
func (a *App) RequestReset(ctx context.Context) error {

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		return errEmailRequired
	}

	token, err := a.client.RequestReset(ctx, email)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Reset token: %s\n", token)
	return nil
}

func (a *App) Reset(ctx context.Context) error {

	token, err := getSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if token == "" || len(password) == 0 {
		return errResetRequired
	}

	if err := a.client.Reset(ctx, token, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password updated. You can now login.")
	return nil
}
