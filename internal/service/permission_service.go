package service

import (
	"context"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"
	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"
	"github.com/feliperufini/felskys-manager-api/internal/slug"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// defaultPermissionVerbs are the actions seeded for a module by
// CreateDefaults, combined with the module title ("Listar Financeiro", ...).
var defaultPermissionVerbs = []string{"Listar", "Pesquisar", "Cadastrar", "Editar", "Deletar"}

type PermissionService interface {
	Create(ctx context.Context, req dto.CreatePermissionRequest) (*dto.PermissionResponse, error)
	CreateDefaults(ctx context.Context, moduleID uuid.UUID) ([]dto.PermissionResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PermissionResponse, error)
	List(ctx context.Context) ([]dto.PermissionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePermissionRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type permissionService struct {
	repo       repository.PermissionRepository
	moduleRepo repository.WebsiteModuleRepository
}

func NewPermissionService(repo repository.PermissionRepository, moduleRepo repository.WebsiteModuleRepository) PermissionService {
	return &permissionService{repo: repo, moduleRepo: moduleRepo}
}

func (s *permissionService) Create(ctx context.Context, req dto.CreatePermissionRequest) (*dto.PermissionResponse, error) {
	moduleID, err := uuid.Parse(req.WebsiteModuleID)
	if err != nil {
		return nil, apierror.Validation("website_module_id inválido.")
	}
	if _, err := s.moduleRepo.FindByID(ctx, moduleID); err != nil {
		return nil, translate(err, "Módulo não encontrado.")
	}

	perm := &model.Permission{
		Title:           req.Title,
		Action:          slug.Underscore(req.Title),
		WebsiteModuleID: moduleID,
	}
	if err := s.repo.Create(ctx, perm); err != nil {
		return nil, translate(err, "Permissão não encontrada.")
	}
	return permissionToResponse(perm), nil
}

// CreateDefaults seeds the standard CRUD permission set for a module, one
// permission per verb combined with the module title. Runs in a single
// transaction so a partially seeded module never exists.
func (s *permissionService) CreateDefaults(ctx context.Context, moduleID uuid.UUID) ([]dto.PermissionResponse, error) {
	module, err := s.moduleRepo.FindByID(ctx, moduleID)
	if err != nil {
		return nil, translate(err, "Módulo não encontrado.")
	}

	perms := make([]model.Permission, 0, len(defaultPermissionVerbs))
	for _, verb := range defaultPermissionVerbs {
		title := verb + " " + module.Title
		perms = append(perms, model.Permission{
			Title:           title,
			Action:          slug.Underscore(title),
			WebsiteModuleID: module.ID,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return translate(s.repo.CreateBatchTx(tx, perms), "Permissão não encontrada.")
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := make([]dto.PermissionResponse, 0, len(perms))
	for i := range perms {
		resp = append(resp, *permissionToResponse(&perms[i]))
	}
	return resp, nil
}

func (s *permissionService) Get(ctx context.Context, id uuid.UUID) (*dto.PermissionResponse, error) {
	perm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Permissão não encontrada.")
	}
	return permissionToResponse(perm), nil
}

func (s *permissionService) List(ctx context.Context) ([]dto.PermissionResponse, error) {
	perms, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "Permissão não encontrada.")
	}
	resp := make([]dto.PermissionResponse, 0, len(perms))
	for i := range perms {
		resp = append(resp, *permissionToResponse(&perms[i]))
	}
	return resp, nil
}

func (s *permissionService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePermissionRequest) error {
	perm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translate(err, "Permissão não encontrada.")
	}
	moduleID, err := uuid.Parse(req.WebsiteModuleID)
	if err != nil {
		return apierror.Validation("website_module_id inválido.")
	}
	if _, err := s.moduleRepo.FindByID(ctx, moduleID); err != nil {
		return translate(err, "Módulo não encontrado.")
	}

	perm.Title = req.Title
	perm.WebsiteModuleID = moduleID
	if req.Action != nil && *req.Action != "" {
		perm.Action = slug.Underscore(*req.Action)
	} else {
		perm.Action = slug.Underscore(req.Title)
	}
	return translate(s.repo.Update(ctx, perm), "Permissão não encontrada.")
}

func (s *permissionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translate(err, "Permissão não encontrada.")
	}
	return translate(s.repo.Delete(ctx, id), "Permissão não encontrada.")
}

func permissionToResponse(p *model.Permission) *dto.PermissionResponse {
	return &dto.PermissionResponse{
		ID:              p.ID.String(),
		Title:           p.Title,
		Action:          p.Action,
		WebsiteModuleID: p.WebsiteModuleID.String(),
		CreatedAt:       isoTime(p.CreatedAt),
		UpdatedAt:       isoTime(p.UpdatedAt),
	}
}
