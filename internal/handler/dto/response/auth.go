package response

import "swiss-virtual-airline/internal/domain/user"

type UserResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Avatar        string `json:"avatar"`
}

func FromIdentity(identity user.Identity) UserResponse {
	return UserResponse{
		ID:            identity.ID,
		Username:      identity.Username,
		Discriminator: identity.Discriminator,
		Avatar:        identity.Avatar,
	}
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
