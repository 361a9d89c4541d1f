package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("No document found with that ID")
	ErrTourNotFound = errors.New("There is no tour with that name.")
)

var (
	ErrNotLoggedIn          = errors.New("You are not logged in! Please log in to get access.")
	ErrInvalidToken         = errors.New("Invalid token. Please log in again!")
	ErrTokenExpired         = errors.New("Your token has expired! Please log in again.")
	ErrUserGone             = errors.New("The user belonging to this token does no longer exist.")
	ErrPasswordChanged      = errors.New("User recently changed password! Please log in again.")
	ErrIncorrectCredentials = errors.New("Incorrect email or password")
	ErrWrongPassword        = errors.New("Your current password is wrong.")
)

var (
	ErrForbidden = errors.New("You do not have permission to perform this action")
)

var (
	ErrMissingCredentials = errors.New("Please provide email and password!")
	ErrNoUserWithEmail    = errors.New("There is no user with email address.")
	ErrResetTokenInvalid  = errors.New("Token is invalid or has expired")
	ErrPasswordRoute      = errors.New("This route is not for password updates. Please use /updateMyPassword.")
	ErrNotAnImage         = errors.New("Not an image! Please upload only images.")
	ErrInvalidLatLng      = errors.New("Please provide latitude and longitude in the format lat,lng.")
	ErrCheckoutInvalid    = errors.New("Checkout session is invalid or has expired.")
)

var (
	ErrEmailDelivery   = errors.New("There was an error sending the email. Try again later!")
	ErrRouteNotDefined = errors.New("This route is not defined! Please use /signup instead")
	ErrRateLimited     = errors.New("Too many requests from this IP, please try again in an hour!")
	ErrBodyTooLarge    = errors.New("Request body is too large.")
)

var (
	ErrValidation = errors.New("validation error")
	ErrDuplicate  = errors.New("duplicate value")
)

// InvalidInputError collects field-level validation failures.
type InvalidInputError struct {
	Messages []string
}

func (e *InvalidInputError) Error() string {
	return "Invalid input data. " + strings.Join(e.Messages, ". ")
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrValidation }

// CastError reports a value that could not be converted to the field's type.
type CastError struct {
	Field string
	Value string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("Invalid %s: %s.", e.Field, e.Value)
}

func (e *CastError) Is(target error) bool { return target == ErrValidation }

type DuplicateError struct {
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("Duplicate field value: %s. Please use another value!", e.Value)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// RouteNotFoundError is returned for requests that match no route.
type RouteNotFoundError struct {
	URL string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("Can't find %s on this server!", e.URL)
}

func NewInvalidInput(msgs ...string) error {
	return &InvalidInputError{Messages: msgs}
}
