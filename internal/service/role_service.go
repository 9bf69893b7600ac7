package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"
	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	rolePermsCachePrefix = "role_perms:"
	rolePermsCacheTTL    = 1 * time.Hour
)

type RoleService interface {
	Create(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error)
	List(ctx context.Context) ([]dto.RoleResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoleRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Actions returns the role's permission actions, cached in Redis until the
	// next binding change.
	Actions(ctx context.Context, id uuid.UUID) ([]string, error)
}

type roleService struct {
	repo     repository.RoleRepository
	permRepo repository.PermissionRepository
	userRepo repository.UserRepository
	rdb      *redis.Client
}

func NewRoleService(
	repo repository.RoleRepository,
	permRepo repository.PermissionRepository,
	userRepo repository.UserRepository,
	rdb *redis.Client,
) RoleService {
	return &roleService{repo: repo, permRepo: permRepo, userRepo: userRepo, rdb: rdb}
}

func (s *roleService) Create(ctx context.Context, req dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, apierror.Validation("organization_id inválido.")
	}

	perms, err := s.resolvePermissions(ctx, req.PermissionIDs)
	if err != nil {
		return nil, err
	}

	role := &model.Role{
		Name:           req.Name,
		Description:    req.Description,
		OrganizationID: orgID,
		Permissions:    perms,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return translate(s.repo.CreateTx(tx, role), "Função não encontrada.")
	})
	if txErr != nil {
		return nil, txErr
	}
	return roleToResponse(role), nil
}

func (s *roleService) Get(ctx context.Context, id uuid.UUID) (*dto.RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Função não encontrada.")
	}
	return roleToResponse(role), nil
}

func (s *roleService) List(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, translate(err, "Função não encontrada.")
	}
	resp := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		resp = append(resp, *roleToResponse(&roles[i]))
	}
	return resp, nil
}

// Update replaces the permission set via diff: ids already bound keep their
// join rows untouched, so calling Update twice with the same set is a no-op
// the second time.
func (s *roleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRoleRequest) error {
	var desired []model.Permission
	if req.PermissionIDs != nil {
		var err error
		desired, err = s.resolvePermissions(ctx, *req.PermissionIDs)
		if err != nil {
			return err
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		role, err := s.repo.FindForUpdateTx(ctx, tx, id)
		if err != nil {
			return translate(err, "Função não encontrada.")
		}

		role.Name = req.Name
		role.Description = req.Description
		if err := s.repo.SaveTx(tx, role); err != nil {
			return translate(err, "Função não encontrada.")
		}

		if req.PermissionIDs == nil {
			return nil
		}

		currentIDs, err := s.repo.ListPermissionIDsTx(tx, role.ID)
		if err != nil {
			return translate(err, "Função não encontrada.")
		}

		current := make(map[uuid.UUID]bool, len(currentIDs))
		for _, pid := range currentIDs {
			current[pid] = true
		}
		want := make(map[uuid.UUID]bool, len(desired))
		for _, p := range desired {
			want[p.ID] = true
		}

		var toConnect []model.Permission
		for _, p := range desired {
			if !current[p.ID] {
				toConnect = append(toConnect, p)
			}
		}
		var toDisconnect []model.Permission
		for _, pid := range currentIDs {
			if !want[pid] {
				toDisconnect = append(toDisconnect, model.Permission{ID: pid})
			}
		}

		if err := s.repo.RemovePermissionsTx(tx, role, toDisconnect); err != nil {
			return translate(err, "Função não encontrada.")
		}
		return translate(s.repo.AppendPermissionsTx(tx, role, toConnect), "Função não encontrada.")
	})
	if txErr != nil {
		return txErr
	}

	s.invalidateCache(ctx, id)
	return nil
}

// Delete never blocks on assigned users: it deactivates and unassigns every
// user of the role, clears the permission join rows and deletes the role in
// one transaction, so a failure in any step rolls back all three.
func (s *roleService) Delete(ctx context.Context, id uuid.UUID) error {
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		role, err := s.repo.FindForUpdateTx(ctx, tx, id)
		if err != nil {
			return translate(err, "Função não encontrada.")
		}

		affected, err := s.userRepo.DeactivateByRoleTx(tx, role.ID)
		if err != nil {
			return translate(err, "Função não encontrada.")
		}
		if affected > 0 {
			log.Info().
				Str("role_id", role.ID.String()).
				Int64("users_deactivated", affected).
				Msg("role deletion cascade")
		}

		if err := s.repo.ClearPermissionsTx(tx, role); err != nil {
			return translate(err, "Função não encontrada.")
		}
		return translate(s.repo.DeleteTx(tx, role.ID), "Função não encontrada.")
	})
	if txErr != nil {
		return txErr
	}

	s.invalidateCache(ctx, id)
	return nil
}

func (s *roleService) Actions(ctx context.Context, id uuid.UUID) ([]string, error) {
	cacheKey := rolePermsCachePrefix + id.String()

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var actions []string
			if jsonErr := json.Unmarshal(cached, &actions); jsonErr == nil {
				return actions, nil
			}
		}
	}

	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "Função não encontrada.")
	}
	actions := make([]string, 0, len(role.Permissions))
	for _, p := range role.Permissions {
		actions = append(actions, p.Action)
	}

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(actions); jsonErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, b, rolePermsCacheTTL).Err()
		}
	}
	return actions, nil
}

// resolvePermissions loads the requested permissions and fails with an
// integrity error when any id does not exist.
func (s *roleService) resolvePermissions(ctx context.Context, ids []string) ([]model.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		pid, err := uuid.Parse(raw)
		if err != nil {
			return nil, apierror.Validation("permission_ids contém um UUID inválido.")
		}
		parsed = append(parsed, pid)
	}
	perms, err := s.permRepo.FindByIDs(ctx, parsed)
	if err != nil {
		return nil, translate(err, "Permissão não encontrada.")
	}
	if len(perms) != len(parsed) {
		return nil, apierror.Integrity("Uma ou mais permissões informadas não existem.")
	}
	return perms, nil
}

func (s *roleService) invalidateCache(ctx context.Context, id uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, rolePermsCachePrefix+id.String()).Err(); err != nil {
		log.Warn().Err(err).Str("role_id", id.String()).Msg("failed to invalidate role permission cache")
	}
}

func roleToResponse(role *model.Role) *dto.RoleResponse {
	perms := make([]dto.PermissionResponse, 0, len(role.Permissions))
	for i := range role.Permissions {
		perms = append(perms, *permissionToResponse(&role.Permissions[i]))
	}
	return &dto.RoleResponse{
		ID:             role.ID.String(),
		Name:           role.Name,
		Description:    role.Description,
		OrganizationID: role.OrganizationID.String(),
		Permissions:    perms,
		CreatedAt:      isoTime(role.CreatedAt),
		UpdatedAt:      isoTime(role.UpdatedAt),
	}
}
