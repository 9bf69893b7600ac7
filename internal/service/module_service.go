package service

import (
	"context"

	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"
	"github.com/feliperufini/felskys-manager-api/internal/slug"

	"github.com/google/uuid"
)

type WebsiteModuleService interface {
	Create(ctx context.Context, req dto.CreateWebsiteModuleRequest) (*dto.WebsiteModuleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.WebsiteModuleResponse, error)
	List(ctx context.Context) ([]dto.WebsiteModuleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateWebsiteModuleRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type moduleService struct {
	repo repository.WebsiteModuleRepository
}

func NewWebsiteModuleService(repo repository.WebsiteModuleRepository) WebsiteModuleService {
	return &moduleService{repo: repo}
}

func (s *moduleService) Create(ctx context.Context, req dto.CreateWebsiteModuleRequest) (*dto.WebsiteModuleResponse, error) {
	module := &model.WebsiteModule{
		Title: req.Title,
		Slug:  slug.Make(req.Title),
	}
	if err := s.repo.Create(ctx, module); err != nil {
		return nil, translate(err, "Módulo não encontrado.")
	}
	return moduleToResponse(module), nil
}

func (s *moduleService) Get(ctx context.Context, id uuid.UUID) (*dto.WebsiteModuleResponse, error) {
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Módulo não encontrado.")
	}
	return moduleToResponse(module), nil
}

func (s *moduleService) List(ctx context.Context) ([]dto.WebsiteModuleResponse, error) {
	mods, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "Módulo não encontrado.")
	}
	resp := make([]dto.WebsiteModuleResponse, 0, len(mods))
	for i := range mods {
		resp = append(resp, *moduleToResponse(&mods[i]))
	}
	return resp, nil
}

func (s *moduleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateWebsiteModuleRequest) error {
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translate(err, "Módulo não encontrado.")
	}

	module.Title = req.Title
	if req.Slug != nil && *req.Slug != "" {
		module.Slug = slug.Make(*req.Slug)
	} else {
		module.Slug = slug.Make(req.Title)
	}
	return translate(s.repo.Update(ctx, module), "Módulo não encontrado.")
}

func (s *moduleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translate(err, "Módulo não encontrado.")
	}
	return translate(s.repo.Delete(ctx, id), "Módulo não encontrado.")
}

func moduleToResponse(m *model.WebsiteModule) *dto.WebsiteModuleResponse {
	return &dto.WebsiteModuleResponse{
		ID:        m.ID.String(),
		Title:     m.Title,
		Slug:      m.Slug,
		CreatedAt: isoTime(m.CreatedAt),
		UpdatedAt: isoTime(m.UpdatedAt),
	}
}
