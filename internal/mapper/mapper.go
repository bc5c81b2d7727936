// Package mapper converts between wire shapes and persisted entities.
// Every function returns nil for nil input. ToEntity never resolves
// references; that is left to the service layer.
package mapper

import (
	"strings"

	"gestionusuarios/userhub/internal/dto"
	"gestionusuarios/userhub/internal/model"
)

// AccountMapper maps one user kind.
type AccountMapper[T, Req, Resp any] interface {
	ToEntity(req *Req) *T
	// Merge copies present, non-blank request fields onto entity.
	Merge(req *Req, entity *T)
	ToResponse(entity *T) *Resp
}

func setString(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}

func accountToUser(req *dto.AccountRequest) model.User {
	return model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		BirthDate: req.BirthDate,
		RUT:       req.RUT,
	}
}

// mergeUser leaves the password untouched when the request carries a blank one.
func mergeUser(req *dto.AccountRequest, u *model.User) {
	setString(&u.Name, req.Name)
	setString(&u.Email, req.Email)
	setString(&u.Password, req.Password)
	setString(&u.BirthDate, req.BirthDate)
	setString(&u.RUT, req.RUT)
}

func userToResponse(u *model.User) dto.AccountResponse {
	return dto.AccountResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		BirthDate: u.BirthDate,
		RUT:       u.RUT,
		UserType:  UserTypeToResponse(loadedUserType(u)),
	}
}

func loadedUserType(u *model.User) *model.UserType {
	if u.UserType.ID == 0 {
		return nil
	}
	return &u.UserType
}

func UserTypeToEntity(req *dto.UserTypeRequest) *model.UserType {
	if req == nil {
		return nil
	}
	return &model.UserType{Name: req.Name}
}

func MergeUserType(req *dto.UserTypeRequest, ut *model.UserType) {
	if req == nil || ut == nil {
		return
	}
	setString(&ut.Name, req.Name)
}

func UserTypeToResponse(ut *model.UserType) *dto.UserTypeResponse {
	if ut == nil {
		return nil
	}
	return &dto.UserTypeResponse{ID: ut.ID, Name: ut.Name}
}
