package response

import (
	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/usecase"

	"github.com/jinzhu/copier"
)

type LoginResponse struct {
	Token    string `json:"token,omitempty"`
	UserID   int64  `json:"userId,omitempty"`
	UserName string `json:"userName,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
}

const (
	LoginSucceededMessage = "Login successful"
	LoginFailedMessage    = "Invalid credentials or authentication error"
)

func FromLoginResult(r *usecase.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:    r.Token,
		UserID:   r.User.ID,
		UserName: r.User.Name,
		Email:    r.User.Email,
		Role:     r.User.RoleName(),
		Success:  true,
		Message:  LoginSucceededMessage,
	}
}

func LoginFailed() *LoginResponse {
	return &LoginResponse{Success: false, Message: LoginFailedMessage}
}

type UserDTO struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

var userCopyOption = copier.Option{
	FieldNameMapping: []copier.FieldNameMapping{{
		SrcType: user.User{},
		DstType: UserDTO{},
		Mapping: map[string]string{"ID": "UserID", "Name": "UserName"},
	}},
}

func FromUser(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	var dto UserDTO
	if err := copier.CopyWithOption(&dto, u, userCopyOption); err != nil {
		dto = UserDTO{UserID: u.ID, UserName: u.Name, Email: u.Email}
	}
	dto.Role = u.RoleName()
	return &dto
}

type TokenStatus struct {
	Valid   bool   `json:"valid"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role,omitempty"`
	Message string `json:"message,omitempty"`
}
