package usecases

import "bookworm/internal/domain/user"

// UserDTO is the API representation of an account, without credentials.
type UserDTO struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role"`
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Email:     u.Email(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Role:      u.Role(),
	}
}

// AuthResult pairs an authenticated account with its session token.
type AuthResult struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}
