package response

import (
	"eiffel-bike-client/internal/usecase"
)

type CurrentUserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Landing  string `json:"landing"`
}

type LoginResponse struct {
	User     *CurrentUserResponse `json:"user"`
	Redirect string               `json:"redirect"`
}

func FromCurrentUser(view *usecase.CurrentUserView) *CurrentUserResponse {
	return &CurrentUserResponse{
		ID:       view.ID,
		FullName: view.FullName,
		Email:    view.Email,
		Role:     string(view.Role),
		Landing:  view.Landing,
	}
}
