package converter

import (
	dto "rtp_casino/internal/api/dto/auth"
	"rtp_casino/internal/model"
)

func RegisterRequestToUserModel(req *dto.Request) *model.User {
	return &model.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
}

func ToUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Balance:   u.Balance.InexactFloat64(),
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func ToAuthResponse(data *model.AuthData) dto.AuthResponse {
	return dto.AuthResponse{
		Success: true,
		User:    ToUserResponse(data.User),
		Token:   data.Token,
	}
}
