package auth

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrForbidden          = errors.New("forbidden")
)

// Client-facing messages. Kept stable because mobile clients match on them.
const (
	MsgMissingFields      = "Please fill all the fields"
	MsgUserExists         = "User already exists"
	MsgUserDoesNotExist   = "User does not exist"
	MsgUserNotFound       = "User not found"
	MsgInvalidCredentials = "Invalid credentials"
	MsgUnauthorized       = "Unauthorized"
	MsgInvalidToken       = "Invalid token"
	MsgForbidden          = "Forbidden"
	MsgInternalError      = "Internal server error"
	MsgInvalidBody        = "Invalid request body"
	MsgPasswordTooLong    = "Password must be at most 72 bytes"
)
