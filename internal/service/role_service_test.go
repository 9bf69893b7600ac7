package service

import (
	"context"
	"testing"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"
	"github.com/feliperufini/felskys-manager-api/internal/dto"
	"github.com/feliperufini/felskys-manager-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPermissions(permRepo *stubPermissionRepo, n int) []model.Permission {
	perms := make([]model.Permission, 0, n)
	for i := 0; i < n; i++ {
		p := &model.Permission{ID: uuid.New(), Title: "Perm", Action: "perm", WebsiteModuleID: uuid.New()}
		permRepo.perms[p.ID] = p
		perms = append(perms, *p)
	}
	return perms
}

func permIDs(perms []model.Permission) []string {
	ids := make([]string, 0, len(perms))
	for _, p := range perms {
		ids = append(ids, p.ID.String())
	}
	return ids
}

func TestCreateRoleWithInitialPermissions(t *testing.T) {
	roleRepo := newStubRoleRepo()
	permRepo := newStubPermissionRepo()
	svc := NewRoleService(roleRepo, permRepo, newStubUserRepo(), nil)
	perms := seedPermissions(permRepo, 2)

	resp, err := svc.Create(context.Background(), dto.CreateRoleRequest{
		Name:           "Administrador",
		OrganizationID: uuid.NewString(),
		PermissionIDs:  permIDs(perms),
	})
	require.NoError(t, err)

	roleID := uuid.MustParse(resp.ID)
	bound, _ := roleRepo.ListPermissionIDsTx(nil, roleID)
	assert.Len(t, bound, 2)
}

func TestCreateRoleRejectsUnknownPermission(t *testing.T) {
	roleRepo := newStubRoleRepo()
	permRepo := newStubPermissionRepo()
	svc := NewRoleService(roleRepo, permRepo, newStubUserRepo(), nil)
	perms := seedPermissions(permRepo, 1)

	_, err := svc.Create(context.Background(), dto.CreateRoleRequest{
		Name:           "Editor",
		OrganizationID: uuid.NewString(),
		PermissionIDs:  append(permIDs(perms), uuid.NewString()),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindIntegrity, apierror.KindOf(err))
	assert.Empty(t, roleRepo.roles)
}

func TestUpdateRoleReplacesBindingsViaDiff(t *testing.T) {
	roleRepo := newStubRoleRepo()
	permRepo := newStubPermissionRepo()
	svc := NewRoleService(roleRepo, permRepo, newStubUserRepo(), nil)
	perms := seedPermissions(permRepo, 4) // P1..P4

	role := &model.Role{ID: uuid.New(), Name: "Editor", OrganizationID: uuid.New()}
	roleRepo.roles[role.ID] = role
	roleRepo.binds[role.ID] = []uuid.UUID{perms[0].ID, perms[1].ID, perms[2].ID}

	desired := permIDs(perms[1:4]) // {P2,P3,P4}
	err := svc.Update(context.Background(), role.ID, dto.UpdateRoleRequest{
		Name:          "Editor",
		PermissionIDs: &desired,
	})
	require.NoError(t, err)

	bound, _ := roleRepo.ListPermissionIDsTx(nil, role.ID)
	assert.ElementsMatch(t, []uuid.UUID{perms[1].ID, perms[2].ID, perms[3].ID}, bound)
	// P2 and P3 kept their join rows: exactly one append (P4) and one removal (P1)
	assert.Equal(t, 1, roleRepo.appends)
	assert.Equal(t, 1, roleRepo.removes)
}

func TestUpdateRoleSameSetIsNoOp(t *testing.T) {
	roleRepo := newStubRoleRepo()
	permRepo := newStubPermissionRepo()
	svc := NewRoleService(roleRepo, permRepo, newStubUserRepo(), nil)
	perms := seedPermissions(permRepo, 3)

	role := &model.Role{ID: uuid.New(), Name: "Editor", OrganizationID: uuid.New()}
	roleRepo.roles[role.ID] = role
	roleRepo.binds[role.ID] = []uuid.UUID{perms[0].ID, perms[1].ID, perms[2].ID}

	desired := permIDs(perms)
	err := svc.Update(context.Background(), role.ID, dto.UpdateRoleRequest{
		Name:          "Editor",
		PermissionIDs: &desired,
	})
	require.NoError(t, err)
	assert.Zero(t, roleRepo.appends)
	assert.Zero(t, roleRepo.removes)
}

func TestUpdateRoleNilPermissionsLeavesBindings(t *testing.T) {
	roleRepo := newStubRoleRepo()
	permRepo := newStubPermissionRepo()
	svc := NewRoleService(roleRepo, permRepo, newStubUserRepo(), nil)
	perms := seedPermissions(permRepo, 2)

	role := &model.Role{ID: uuid.New(), Name: "Editor", OrganizationID: uuid.New()}
	roleRepo.roles[role.ID] = role
	roleRepo.binds[role.ID] = []uuid.UUID{perms[0].ID, perms[1].ID}

	err := svc.Update(context.Background(), role.ID, dto.UpdateRoleRequest{Name: "Revisor"})
	require.NoError(t, err)

	bound, _ := roleRepo.ListPermissionIDsTx(nil, role.ID)
	assert.Len(t, bound, 2)
	assert.Equal(t, "Revisor", roleRepo.roles[role.ID].Name)
}

func TestDeleteRoleCascadesToUsers(t *testing.T) {
	roleRepo := newStubRoleRepo()
	permRepo := newStubPermissionRepo()
	userRepo := newStubUserRepo()
	svc := NewRoleService(roleRepo, permRepo, userRepo, nil)
	perms := seedPermissions(permRepo, 2)

	role := &model.Role{ID: uuid.New(), Name: "Suporte", OrganizationID: uuid.New()}
	roleRepo.roles[role.ID] = role
	roleRepo.binds[role.ID] = []uuid.UUID{perms[0].ID, perms[1].ID}

	otherRole := uuid.New()
	for i := 0; i < 3; i++ {
		rid := role.ID
		u := &model.User{ID: uuid.New(), Email: uuid.NewString(), IsActive: true, RoleID: &rid}
		userRepo.users[u.ID] = u
	}
	bystander := &model.User{ID: uuid.New(), Email: "b@x.com", IsActive: true, RoleID: &otherRole}
	userRepo.users[bystander.ID] = bystander

	require.NoError(t, svc.Delete(context.Background(), role.ID))

	assert.NotContains(t, roleRepo.roles, role.ID)
	assert.Empty(t, roleRepo.binds[role.ID])
	for _, u := range userRepo.users {
		if u.ID == bystander.ID {
			assert.True(t, u.IsActive)
			assert.NotNil(t, u.RoleID)
			continue
		}
		assert.False(t, u.IsActive)
		assert.Nil(t, u.RoleID)
	}
}

func TestDeleteRoleNotFound(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo(), newStubPermissionRepo(), newStubUserRepo(), nil)

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestRoleActionsWithoutCache(t *testing.T) {
	roleRepo := newStubRoleRepo()
	svc := NewRoleService(roleRepo, newStubPermissionRepo(), newStubUserRepo(), nil)

	role := &model.Role{
		ID:   uuid.New(),
		Name: "Financeiro",
		Permissions: []model.Permission{
			{ID: uuid.New(), Action: "listar_financeiro"},
			{ID: uuid.New(), Action: "editar_financeiro"},
		},
	}
	roleRepo.roles[role.ID] = role

	actions, err := svc.Actions(context.Background(), role.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"listar_financeiro", "editar_financeiro"}, actions)
}
