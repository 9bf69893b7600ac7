package service

import (
	"context"
	"unicode"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"
	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(repo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{repo: repo, roleRepo: roleRepo}
}

// validatePassword enforces the minimum policy: at least 8 characters with at
// least one letter and one digit.
func validatePassword(password string) error {
	if len(password) < 8 {
		return apierror.Validation("A senha deve ter no mínimo 8 caracteres.")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return apierror.Validation("A senha deve conter ao menos uma letra e um número.")
	}
	return nil
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return nil, apierror.Validation("role_id inválido.")
	}
	if _, err := s.roleRepo.FindByID(ctx, roleID); err != nil {
		return nil, translate(err, "Função não encontrada.")
	}

	taken, err := s.repo.EmailTaken(ctx, req.Email, uuid.Nil)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if taken {
		return nil, apierror.Conflict("Este e-mail já está em uso.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	user := &model.User{
		Nickname:     req.Nickname,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
		RoleID:       &roleID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, translate(err, "Usuário não encontrado.")
	}
	return userToResponse(user), nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Usuário não encontrado.")
	}
	return userToResponse(user), nil
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "Usuário não encontrado.")
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, *userToResponse(&users[i]))
	}
	return resp, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translate(err, "Usuário não encontrado.")
	}
	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return apierror.Validation("role_id inválido.")
	}
	if _, err := s.roleRepo.FindByID(ctx, roleID); err != nil {
		return translate(err, "Função não encontrada.")
	}

	taken, err := s.repo.EmailTaken(ctx, req.Email, user.ID)
	if err != nil {
		return apierror.Internal(err)
	}
	if taken {
		return apierror.Conflict("Este e-mail já está em uso.")
	}

	user.Nickname = req.Nickname
	user.Email = req.Email
	user.RoleID = &roleID
	if req.Password != nil && *req.Password != "" {
		if err := validatePassword(*req.Password); err != nil {
			return err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return apierror.Internal(err)
		}
		user.PasswordHash = string(hash)
	}
	return translate(s.repo.Update(ctx, user), "Usuário não encontrado.")
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translate(err, "Usuário não encontrado.")
	}
	return translate(s.repo.Delete(ctx, id), "Usuário não encontrado.")
}

func userToResponse(u *model.User) *dto.UserResponse {
	var roleID *string
	if u.RoleID != nil {
		v := u.RoleID.String()
		roleID = &v
	}
	return &dto.UserResponse{
		ID:        u.ID.String(),
		Nickname:  u.Nickname,
		Email:     u.Email,
		IsActive:  u.IsActive,
		RoleID:    roleID,
		CreatedAt: isoTime(u.CreatedAt),
		UpdatedAt: isoTime(u.UpdatedAt),
	}
}
