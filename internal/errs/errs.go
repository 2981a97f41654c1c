package errs

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrLoginAlreadyExists = errors.New("login already exists")
var ErrOrderNotFound = errors.New("order not found")
var ErrAlreadyAssigned = errors.New("order already assigned")
var ErrNotAssignee = errors.New("order assigned to another technician")
var ErrRequestNotPending = errors.New("request is not pending")
var ErrInvalidViewer = errors.New("viewer context is missing a branch")
var ErrSchemaMissing = errors.New("closings schema missing")
var ErrPartNotFound = errors.New("part not found")
var ErrSKUAlreadyExists = errors.New("sku already exists")
var ErrInsufficientStock = errors.New("not enough stock")
