package services

import (
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

// Request-level failures. Each wraps one of the common sentinels so callers
// can branch on the class (errors.Is(err, common.ErrorValidation)) or on the
// exact case.
var (
	ErrSignupFieldsRequired = fmt.Errorf("%w: username, password and email required", common.ErrorValidation)
	ErrLoginFieldsRequired  = fmt.Errorf("%w: username and password required", common.ErrorValidation)
	ErrEmailRequired        = fmt.Errorf("%w: email required", common.ErrorValidation)
	ErrResetFieldsRequired  = fmt.Errorf("%w: token and new_password required", common.ErrorValidation)
	ErrPasswordTooLong      = fmt.Errorf("%w: password too long", common.ErrorValidation)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", common.ErrorUnauthorized)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", common.ErrorNotFound)
)
