package service

import (
	"context"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"
	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"
	"github.com/feliperufini/felskys-manager-api/internal/slug"

	"github.com/google/uuid"
)

type OrganizationService interface {
	Create(ctx context.Context, req dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.OrganizationResponse, error)
	List(ctx context.Context) ([]dto.OrganizationResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrganizationRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type organizationService struct {
	repo repository.OrganizationRepository
}

func NewOrganizationService(repo repository.OrganizationRepository) OrganizationService {
	return &organizationService{repo: repo}
}

func (s *organizationService) Create(ctx context.Context, req dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	document := slug.Digits(req.Document)
	if len(document) != 11 && len(document) != 14 {
		return nil, apierror.Validation("O documento deve ser um CPF ou CNPJ válido.")
	}

	org := &model.Organization{
		LegalName:    req.LegalName,
		BusinessName: req.BusinessName,
		Document:     document,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, org); err != nil {
		return nil, translate(err, "Organização não encontrada.")
	}
	return organizationToResponse(org), nil
}

func (s *organizationService) Get(ctx context.Context, id uuid.UUID) (*dto.OrganizationResponse, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Organização não encontrada.")
	}
	return organizationToResponse(org), nil
}

func (s *organizationService) List(ctx context.Context) ([]dto.OrganizationResponse, error) {
	orgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "Organização não encontrada.")
	}
	resp := make([]dto.OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		resp = append(resp, *organizationToResponse(&orgs[i]))
	}
	return resp, nil
}

func (s *organizationService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrganizationRequest) error {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translate(err, "Organização não encontrada.")
	}

	document := slug.Digits(req.Document)
	if len(document) != 11 && len(document) != 14 {
		return apierror.Validation("O documento deve ser um CPF ou CNPJ válido.")
	}

	org.LegalName = req.LegalName
	org.BusinessName = req.BusinessName
	org.Document = document
	org.IsActive = *req.IsActive
	return translate(s.repo.Update(ctx, org), "Organização não encontrada.")
}

func (s *organizationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translate(err, "Organização não encontrada.")
	}
	return translate(s.repo.Delete(ctx, id), "Organização não encontrada.")
}

func organizationToResponse(org *model.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:           org.ID.String(),
		LegalName:    org.LegalName,
		BusinessName: org.BusinessName,
		Document:     org.Document,
		IsActive:     org.IsActive,
		CreatedAt:    isoTime(org.CreatedAt),
		UpdatedAt:    isoTime(org.UpdatedAt),
	}
}
