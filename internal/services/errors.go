package services

import "errors"

// ErrUserNotFound is returned when GitHub reports no user for the requested
// username. Handlers map it to a 404.
var ErrUserNotFound = errors.New("github user not found")
