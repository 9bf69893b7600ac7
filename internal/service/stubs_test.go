package service

import (
	"context"
	"sort"

	"github.com/feliperufini/felskys-manager-api/internal/model"
	"github.com/feliperufini/felskys-manager-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil, which runs service
// transactions in unit-test mode (no real *gorm.DB required).

// ── InvoiceRepository stub ───────────────────────────────────────────────────

type stubInvoiceRepo struct {
	invoices map[uuid.UUID]*model.Invoice
}

var _ repository.InvoiceRepository = (*stubInvoiceRepo)(nil)

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[uuid.UUID]*model.Invoice)}
}

func (s *stubInvoiceRepo) DB() *gorm.DB { return nil }

func (s *stubInvoiceRepo) Create(_ context.Context, inv *model.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	s.invoices[inv.ID] = inv
	return nil
}

func (s *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (s *stubInvoiceRepo) FindForUpdateTx(_ context.Context, _ *gorm.DB, id uuid.UUID) (*model.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inv, nil
}

func (s *stubInvoiceRepo) List(_ context.Context) ([]model.Invoice, error) {
	out := make([]model.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (s *stubInvoiceRepo) SaveTx(_ *gorm.DB, inv *model.Invoice) error {
	s.invoices[inv.ID] = inv
	return nil
}

func (s *stubInvoiceRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	inv, ok := s.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.Status = status
	return nil
}

func (s *stubInvoiceRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(s.invoices, id)
	return nil
}

// ── PaymentRepository stub ───────────────────────────────────────────────────

type stubPaymentRepo struct {
	payments map[uuid.UUID]*model.Payment

	// ids present for FindByID but already gone when re-read inside the
	// transaction, emulating a delete that committed between the two reads
	goneBeforeLock map[uuid.UUID]bool
}

var _ repository.PaymentRepository = (*stubPaymentRepo)(nil)

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{
		payments:       make(map[uuid.UUID]*model.Payment),
		goneBeforeLock: make(map[uuid.UUID]bool),
	}
}

func (s *stubPaymentRepo) DB() *gorm.DB { return nil }

func (s *stubPaymentRepo) CreateTx(_ *gorm.DB, p *model.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	s.payments[p.ID] = &cp
	return nil
}

func (s *stubPaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Payment, error) {
	p, ok := s.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubPaymentRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Payment, error) {
	p, ok := s.payments[id]
	if !ok || s.goneBeforeLock[id] {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubPaymentRepo) List(_ context.Context) ([]model.Payment, error) {
	out := make([]model.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubPaymentRepo) ListByInvoiceTx(_ *gorm.DB, invoiceID uuid.UUID) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range s.payments {
		if p.InvoiceID == invoiceID && !s.goneBeforeLock[p.ID] {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDate.Before(out[j].PaymentDate) })
	return out, nil
}

func (s *stubPaymentRepo) CountByInvoiceTx(_ *gorm.DB, invoiceID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range s.payments {
		if p.InvoiceID == invoiceID {
			n++
		}
	}
	return n, nil
}

func (s *stubPaymentRepo) SaveTx(_ *gorm.DB, p *model.Payment) error {
	cp := *p
	s.payments[p.ID] = &cp
	return nil
}

func (s *stubPaymentRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(s.payments, id)
	return nil
}

// ── OrganizationRepository stub ──────────────────────────────────────────────

type stubOrgRepo struct {
	orgs map[uuid.UUID]*model.Organization
}

var _ repository.OrganizationRepository = (*stubOrgRepo)(nil)

func newStubOrgRepo() *stubOrgRepo {
	return &stubOrgRepo{orgs: make(map[uuid.UUID]*model.Organization)}
}

func (s *stubOrgRepo) DB() *gorm.DB { return nil }

func (s *stubOrgRepo) Create(_ context.Context, org *model.Organization) error {
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}
	s.orgs[org.ID] = org
	return nil
}

func (s *stubOrgRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Organization, error) {
	org, ok := s.orgs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return org, nil
}

func (s *stubOrgRepo) List(_ context.Context) ([]model.Organization, error) {
	out := make([]model.Organization, 0, len(s.orgs))
	for _, org := range s.orgs {
		out = append(out, *org)
	}
	return out, nil
}

func (s *stubOrgRepo) Update(_ context.Context, org *model.Organization) error {
	if _, ok := s.orgs[org.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.orgs[org.ID] = org
	return nil
}

func (s *stubOrgRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.orgs, id)
	return nil
}

// ── RoleRepository stub ──────────────────────────────────────────────────────

type stubRoleRepo struct {
	roles map[uuid.UUID]*model.Role
	binds map[uuid.UUID][]uuid.UUID // roleID -> permission ids

	appends int // join rows written by AppendPermissionsTx
	removes int // join rows removed by RemovePermissionsTx
}

var _ repository.RoleRepository = (*stubRoleRepo)(nil)

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{
		roles: make(map[uuid.UUID]*model.Role),
		binds: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *stubRoleRepo) DB() *gorm.DB { return nil }

func (s *stubRoleRepo) CreateTx(_ *gorm.DB, role *model.Role) error {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	s.roles[role.ID] = role
	for _, p := range role.Permissions {
		s.binds[role.ID] = append(s.binds[role.ID], p.ID)
	}
	return nil
}

func (s *stubRoleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Role, error) {
	role, ok := s.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func (s *stubRoleRepo) FindForUpdateTx(_ context.Context, _ *gorm.DB, id uuid.UUID) (*model.Role, error) {
	role, ok := s.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func (s *stubRoleRepo) List(_ context.Context) ([]model.Role, error) {
	out := make([]model.Role, 0, len(s.roles))
	for _, role := range s.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (s *stubRoleRepo) SaveTx(_ *gorm.DB, role *model.Role) error {
	s.roles[role.ID] = role
	return nil
}

func (s *stubRoleRepo) ListPermissionIDsTx(_ *gorm.DB, roleID uuid.UUID) ([]uuid.UUID, error) {
	return append([]uuid.UUID(nil), s.binds[roleID]...), nil
}

func (s *stubRoleRepo) AppendPermissionsTx(_ *gorm.DB, role *model.Role, perms []model.Permission) error {
	for _, p := range perms {
		s.binds[role.ID] = append(s.binds[role.ID], p.ID)
		s.appends++
	}
	return nil
}

func (s *stubRoleRepo) RemovePermissionsTx(_ *gorm.DB, role *model.Role, perms []model.Permission) error {
	for _, p := range perms {
		ids := s.binds[role.ID]
		for i, id := range ids {
			if id == p.ID {
				s.binds[role.ID] = append(ids[:i], ids[i+1:]...)
				s.removes++
				break
			}
		}
	}
	return nil
}

func (s *stubRoleRepo) ClearPermissionsTx(_ *gorm.DB, role *model.Role) error {
	delete(s.binds, role.ID)
	return nil
}

func (s *stubRoleRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(s.roles, id)
	return nil
}

// ── UserRepository stub ──────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (s *stubUserRepo) DB() *gorm.DB { return nil }

func (s *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.users[u.ID] = u
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) EmailTaken(_ context.Context, email string, excludeID uuid.UUID) (bool, error) {
	for _, u := range s.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := s.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.users[u.ID] = u
	return nil
}

func (s *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

func (s *stubUserRepo) DeactivateByRoleTx(_ *gorm.DB, roleID uuid.UUID) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.RoleID != nil && *u.RoleID == roleID {
			u.IsActive = false
			u.RoleID = nil
			n++
		}
	}
	return n, nil
}

// ── PermissionRepository stub ────────────────────────────────────────────────

type stubPermissionRepo struct {
	perms map[uuid.UUID]*model.Permission
}

var _ repository.PermissionRepository = (*stubPermissionRepo)(nil)

func newStubPermissionRepo() *stubPermissionRepo {
	return &stubPermissionRepo{perms: make(map[uuid.UUID]*model.Permission)}
}

func (s *stubPermissionRepo) DB() *gorm.DB { return nil }

func (s *stubPermissionRepo) Create(_ context.Context, p *model.Permission) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.perms[p.ID] = p
	return nil
}

func (s *stubPermissionRepo) CreateBatchTx(_ *gorm.DB, perms []model.Permission) error {
	for i := range perms {
		if perms[i].ID == uuid.Nil {
			perms[i].ID = uuid.New()
		}
		cp := perms[i]
		s.perms[cp.ID] = &cp
	}
	return nil
}

func (s *stubPermissionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Permission, error) {
	p, ok := s.perms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubPermissionRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Permission, error) {
	var out []model.Permission
	for _, id := range ids {
		if p, ok := s.perms[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubPermissionRepo) List(_ context.Context) ([]model.Permission, error) {
	out := make([]model.Permission, 0, len(s.perms))
	for _, p := range s.perms {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubPermissionRepo) Update(_ context.Context, p *model.Permission) error {
	if _, ok := s.perms[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.perms[p.ID] = p
	return nil
}

func (s *stubPermissionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.perms, id)
	return nil
}

// ── WebsiteModuleRepository stub ─────────────────────────────────────────────

type stubModuleRepo struct {
	modules map[uuid.UUID]*model.WebsiteModule
}

var _ repository.WebsiteModuleRepository = (*stubModuleRepo)(nil)

func newStubModuleRepo() *stubModuleRepo {
	return &stubModuleRepo{modules: make(map[uuid.UUID]*model.WebsiteModule)}
}

func (s *stubModuleRepo) DB() *gorm.DB { return nil }

func (s *stubModuleRepo) Create(_ context.Context, m *model.WebsiteModule) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.modules[m.ID] = m
	return nil
}

func (s *stubModuleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.WebsiteModule, error) {
	m, ok := s.modules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (s *stubModuleRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.WebsiteModule, error) {
	var out []model.WebsiteModule
	for _, id := range ids {
		if m, ok := s.modules[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *stubModuleRepo) List(_ context.Context) ([]model.WebsiteModule, error) {
	out := make([]model.WebsiteModule, 0, len(s.modules))
	for _, m := range s.modules {
		out = append(out, *m)
	}
	return out, nil
}

func (s *stubModuleRepo) Update(_ context.Context, m *model.WebsiteModule) error {
	if _, ok := s.modules[m.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.modules[m.ID] = m
	return nil
}

func (s *stubModuleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.modules, id)
	return nil
}

// ── WebsiteRepository stub ───────────────────────────────────────────────────

type stubWebsiteRepo struct {
	sites map[uuid.UUID]*model.Website
	binds map[uuid.UUID][]uuid.UUID // websiteID -> module ids

	appends int // join rows written by AppendModulesTx
	removes int // join rows removed by RemoveModulesTx
}

var _ repository.WebsiteRepository = (*stubWebsiteRepo)(nil)

func newStubWebsiteRepo() *stubWebsiteRepo {
	return &stubWebsiteRepo{
		sites: make(map[uuid.UUID]*model.Website),
		binds: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *stubWebsiteRepo) DB() *gorm.DB { return nil }

func (s *stubWebsiteRepo) CreateTx(_ *gorm.DB, w *model.Website) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	s.sites[w.ID] = w
	for _, m := range w.Modules {
		s.binds[w.ID] = append(s.binds[w.ID], m.ID)
	}
	return nil
}

func (s *stubWebsiteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Website, error) {
	w, ok := s.sites[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (s *stubWebsiteRepo) List(_ context.Context) ([]model.Website, error) {
	out := make([]model.Website, 0, len(s.sites))
	for _, w := range s.sites {
		out = append(out, *w)
	}
	return out, nil
}

func (s *stubWebsiteRepo) SaveTx(_ *gorm.DB, w *model.Website) error {
	s.sites[w.ID] = w
	return nil
}

func (s *stubWebsiteRepo) ListModuleIDsTx(_ *gorm.DB, websiteID uuid.UUID) ([]uuid.UUID, error) {
	return append([]uuid.UUID(nil), s.binds[websiteID]...), nil
}

func (s *stubWebsiteRepo) AppendModulesTx(_ *gorm.DB, w *model.Website, mods []model.WebsiteModule) error {
	for _, m := range mods {
		s.binds[w.ID] = append(s.binds[w.ID], m.ID)
		s.appends++
	}
	return nil
}

func (s *stubWebsiteRepo) RemoveModulesTx(_ *gorm.DB, w *model.Website, mods []model.WebsiteModule) error {
	for _, m := range mods {
		ids := s.binds[w.ID]
		for i, id := range ids {
			if id == m.ID {
				s.binds[w.ID] = append(ids[:i], ids[i+1:]...)
				s.removes++
				break
			}
		}
	}
	return nil
}

func (s *stubWebsiteRepo) ClearModulesTx(_ *gorm.DB, w *model.Website) error {
	delete(s.binds, w.ID)
	return nil
}

func (s *stubWebsiteRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(s.sites, id)
	return nil
}
