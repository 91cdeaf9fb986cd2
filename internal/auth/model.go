package auth

const RoleAdmin = "ADMIN"

// Admin is an operator allowed to change the menu.
type Admin struct {
	Username     string
	PasswordHash string
	Role         string
}

// Principal is the identity carried by a validated token.
type Principal struct {
	Subject string
	Role    string
}
