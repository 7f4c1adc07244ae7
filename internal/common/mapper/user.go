package mapper

import (
	"userapi/internal/common/dto"
	userdomain "userapi/internal/user/domain"
)

func UserToDTO(user userdomain.User) dto.User {
	return dto.User{
		ID:       string(user.ID),
		Username: user.Username,
		Password: user.Password,
	}
}

func UserFromDTO(d dto.User) userdomain.User {
	return userdomain.User{
		ID:       userdomain.ID(d.ID),
		Username: d.Username,
		Password: d.Password,
	}
}
