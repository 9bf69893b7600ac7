package service

import (
	"context"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"
	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WebsiteService interface {
	Create(ctx context.Context, req dto.CreateWebsiteRequest) (*dto.WebsiteResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.WebsiteResponse, error)
	List(ctx context.Context) ([]dto.WebsiteResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateWebsiteRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type websiteService struct {
	repo       repository.WebsiteRepository
	moduleRepo repository.WebsiteModuleRepository
	orgRepo    repository.OrganizationRepository
}

func NewWebsiteService(
	repo repository.WebsiteRepository,
	moduleRepo repository.WebsiteModuleRepository,
	orgRepo repository.OrganizationRepository,
) WebsiteService {
	return &websiteService{repo: repo, moduleRepo: moduleRepo, orgRepo: orgRepo}
}

func (s *websiteService) Create(ctx context.Context, req dto.CreateWebsiteRequest) (*dto.WebsiteResponse, error) {
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, apierror.Validation("organization_id inválido.")
	}
	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return nil, translate(err, "Organização não encontrada.")
	}

	mods, err := s.resolveModules(ctx, req.ModuleIDs)
	if err != nil {
		return nil, err
	}

	site := &model.Website{
		Title:          req.Title,
		Domain:         req.Domain,
		OrganizationID: orgID,
		Modules:        mods,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return translate(s.repo.CreateTx(tx, site), "Website não encontrado.")
	})
	if txErr != nil {
		return nil, txErr
	}
	return websiteToResponse(site), nil
}

func (s *websiteService) Get(ctx context.Context, id uuid.UUID) (*dto.WebsiteResponse, error) {
	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Website não encontrado.")
	}
	return websiteToResponse(site), nil
}

func (s *websiteService) List(ctx context.Context) ([]dto.WebsiteResponse, error) {
	sites, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "Website não encontrado.")
	}
	resp := make([]dto.WebsiteResponse, 0, len(sites))
	for i := range sites {
		resp = append(resp, *websiteToResponse(&sites[i]))
	}
	return resp, nil
}

// Update replaces the bound module set via diff when ModuleIDs is present,
// mirroring the role/permission binder: shared ids keep their join rows.
func (s *websiteService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateWebsiteRequest) error {
	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translate(err, "Website não encontrado.")
	}
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return apierror.Validation("organization_id inválido.")
	}
	if _, err := s.orgRepo.FindByID(ctx, orgID); err != nil {
		return translate(err, "Organização não encontrada.")
	}

	var desired []model.WebsiteModule
	if req.ModuleIDs != nil {
		desired, err = s.resolveModules(ctx, *req.ModuleIDs)
		if err != nil {
			return err
		}
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		site.Title = req.Title
		site.Domain = req.Domain
		site.OrganizationID = orgID
		if err := s.repo.SaveTx(tx, site); err != nil {
			return translate(err, "Website não encontrado.")
		}

		if req.ModuleIDs == nil {
			return nil
		}

		currentIDs, err := s.repo.ListModuleIDsTx(tx, site.ID)
		if err != nil {
			return translate(err, "Website não encontrado.")
		}

		current := make(map[uuid.UUID]bool, len(currentIDs))
		for _, mid := range currentIDs {
			current[mid] = true
		}
		want := make(map[uuid.UUID]bool, len(desired))
		for _, m := range desired {
			want[m.ID] = true
		}

		var toConnect []model.WebsiteModule
		for _, m := range desired {
			if !current[m.ID] {
				toConnect = append(toConnect, m)
			}
		}
		var toDisconnect []model.WebsiteModule
		for _, mid := range currentIDs {
			if !want[mid] {
				toDisconnect = append(toDisconnect, model.WebsiteModule{ID: mid})
			}
		}

		if err := s.repo.RemoveModulesTx(tx, site, toDisconnect); err != nil {
			return translate(err, "Website não encontrado.")
		}
		return translate(s.repo.AppendModulesTx(tx, site, toConnect), "Website não encontrado.")
	})
}

func (s *websiteService) Delete(ctx context.Context, id uuid.UUID) error {
	site, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translate(err, "Website não encontrado.")
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.ClearModulesTx(tx, site); err != nil {
			return translate(err, "Website não encontrado.")
		}
		return translate(s.repo.DeleteTx(tx, site.ID), "Website não encontrado.")
	})
}

func (s *websiteService) resolveModules(ctx context.Context, ids []string) ([]model.WebsiteModule, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		mid, err := uuid.Parse(raw)
		if err != nil {
			return nil, apierror.Validation("module_ids contém um UUID inválido.")
		}
		parsed = append(parsed, mid)
	}
	mods, err := s.moduleRepo.FindByIDs(ctx, parsed)
	if err != nil {
		return nil, translate(err, "Módulo não encontrado.")
	}
	if len(mods) != len(parsed) {
		return nil, apierror.Integrity("Um ou mais módulos informados não existem.")
	}
	return mods, nil
}

func websiteToResponse(site *model.Website) *dto.WebsiteResponse {
	mods := make([]dto.WebsiteModuleResponse, 0, len(site.Modules))
	for i := range site.Modules {
		mods = append(mods, *moduleToResponse(&site.Modules[i]))
	}
	return &dto.WebsiteResponse{
		ID:             site.ID.String(),
		Title:          site.Title,
		Domain:         site.Domain,
		OrganizationID: site.OrganizationID.String(),
		Modules:        mods,
		CreatedAt:      isoTime(site.CreatedAt),
		UpdatedAt:      isoTime(site.UpdatedAt),
	}
}
