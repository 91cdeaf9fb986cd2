package auth

import "errors"

var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the data-access contract.
// Service depends ONLY on this interface.
type AdminRepository interface {
	FindByUsername(username string) (*Admin, error)
}
