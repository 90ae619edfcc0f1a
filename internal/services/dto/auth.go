package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type PinLoginRequest struct {
	Pin string `json:"pin" binding:"required" validate:"required,min=4,max=10"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
}
