package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"shineon/internal/domain/model"
	repo "shineon/internal/repository"
)

type UserUsecase struct {
	users repo.UserRepository
}

// DI
func NewUserUsecase(users repo.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

type CreateUserInput struct {
	Name  string
	Email string
	Photo string
}

type CreateUserOutput struct {
	Message    string `json:"message,omitempty"`
	InsertedID string `json:"insertedId,omitempty"`
}

type AdminFlagResponse struct {
	Admin bool `json:"admin"`
}

type ClientFlagResponse struct {
	Client bool `json:"client"`
}

type SetRoleOutput struct {
	Modified bool `json:"modified"`
}

// ListUsers は全ユーザーの一覧（管理者のみの画面で使う）。
func (u *UserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := u.users.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

// ListUsersByRole はロールで絞った一覧。
func (u *UserUsecase) ListUsersByRole(ctx context.Context, role string) ([]model.User, error) {
	users, err := u.users.ListByRole(ctx, role)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

// CreateUser はemail重複のとき挿入せず「already exists」を返す（冪等）。
func (u *UserUsecase) CreateUser(ctx context.Context, in CreateUserInput) (CreateUserOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return CreateUserOutput{}, NewHTTPError(http.StatusBadRequest, "email is required")
	}

	_, err := u.users.FindByEmail(ctx, email)
	if err == nil {
		//既存レコードは更新もしない
		return CreateUserOutput{Message: "user already exists"}, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return CreateUserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	id, err := u.users.Create(ctx, model.User{
		Name:  in.Name,
		Email: email,
		Photo: in.Photo,
	})
	if err != nil {
		return CreateUserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CreateUserOutput{InsertedID: id}, nil
}

// AdminFlag は対象emailがadminかどうか。
// claimのemailと一致しないときはストアを見ずにfalseで打ち切る。
func (u *UserUsecase) AdminFlag(ctx context.Context, claimEmail string, email string) (AdminFlagResponse, error) {
	if claimEmail != email {
		return AdminFlagResponse{Admin: false}, nil
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return AdminFlagResponse{Admin: false}, nil
	}
	if err != nil {
		return AdminFlagResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AdminFlagResponse{Admin: user.Role == model.RoleAdmin}, nil
}

// ClientFlag は対象emailがclientかどうか。判定の形はAdminFlagと同じ。
func (u *UserUsecase) ClientFlag(ctx context.Context, claimEmail string, email string) (ClientFlagResponse, error) {
	if claimEmail != email {
		return ClientFlagResponse{Client: false}, nil
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return ClientFlagResponse{Client: false}, nil
	}
	if err != nil {
		return ClientFlagResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ClientFlagResponse{Client: user.Role == model.RoleClient}, nil
}

// SetAdminRole は対象ユーザーのroleをadminへ書き換える。
func (u *UserUsecase) SetAdminRole(ctx context.Context, id string) (SetRoleOutput, error) {
	err := u.users.SetRole(ctx, id, model.RoleAdmin)
	if errors.Is(err, repo.ErrNotFound) {
		return SetRoleOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return SetRoleOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return SetRoleOutput{Modified: true}, nil
}
