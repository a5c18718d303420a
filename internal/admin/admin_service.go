package admin

import (
	"context"
	"strings"

	"go-ems/internal/account"
	accounterrors "go-ems/internal/account/errors"
	adminerrors "go-ems/internal/admin/errors"
	"go-ems/internal/domain"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/shared/response"
	"go-ems/internal/shared/scope"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultListLimit = 10

type Service interface {
	List(ctx context.Context, q ListQuery) (AdminListResponse, error)
	GetByID(ctx context.Context, id string) (AdminResponse, error)
	Create(ctx context.Context, actor *account.Account, req CreateAdminRequest) (AdminResponse, error)
	Update(ctx context.Context, actor *account.Account, id string, req UpdateAdminRequest) (AdminResponse, bool, error)
	Delete(ctx context.Context, actor *account.Account, id string) error
}

type service struct {
	repo     Repository
	accounts account.Service
	logger   *zap.Logger
}

func NewService(repo Repository, accounts account.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{repo: repo, accounts: accounts, logger: l}
}

func (s *service) List(ctx context.Context, q ListQuery) (AdminListResponse, error) {
	page := scope.ParsePage(q.Limit, q.Skip, q.Page, DefaultListLimit)

	rows, total, err := s.repo.List(ctx, ListFilter{Page: page, Search: q.Search})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list admins failed", zap.Error(err))
		return AdminListResponse{}, err
	}

	items := make([]AdminResponse, 0, len(rows))
	for _, a := range rows {
		items = append(items, mapAdminToResponse(a))
	}

	return AdminListResponse{
		Admins:         items,
		PaginationMeta: response.NewPaginationMeta(total, page.Skip, page.Limit),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AdminResponse, error) {
	adminID, err := parseID(id)
	if err != nil {
		return AdminResponse{}, err
	}
	return s.load(ctx, adminID)
}

func (s *service) Create(ctx context.Context, actor *account.Account, req CreateAdminRequest) (AdminResponse, error) {
	fields := account.AdminFields{
		Department: strings.TrimSpace(req.Department),
		Phone:      strings.TrimSpace(req.Phone),
	}
	if req.Address != nil {
		fields.Address = req.Address.toModel()
	}

	created, err := s.accounts.Create(ctx, actor, account.CreateInput{
		Channel:       domain.ChannelAdminCreation,
		RequestedRole: domain.RoleAdmin,
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Admin:         fields,
	})
	if err != nil {
		return AdminResponse{}, err
	}

	return s.load(ctx, created.AdminProfile.ID)
}

func (s *service) Update(ctx context.Context, actor *account.Account, id string, req UpdateAdminRequest) (AdminResponse, bool, error) {
	adminID, err := parseID(id)
	if err != nil {
		return AdminResponse{}, false, err
	}

	in := account.UpdateAdminInput{
		Name:       req.Name,
		Department: req.Department,
		Phone:      req.Phone,
	}
	if req.Address != nil {
		addr := req.Address.toModel()
		in.Address = &addr
	}

	changed, err := s.accounts.UpdateAdmin(ctx, actor, adminID, in)
	if err != nil {
		return AdminResponse{}, false, err
	}

	resp, err := s.load(ctx, adminID)
	return resp, changed, err
}

func (s *service) Delete(ctx context.Context, actor *account.Account, id string) error {
	adminID, err := parseID(id)
	if err != nil {
		return err
	}
	return s.accounts.DeleteAdmin(ctx, actor, adminID)
}

func (s *service) load(ctx context.Context, id uuid.UUID) (AdminResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load admin failed",
			zap.String("admin_id", id.String()),
			zap.Error(err),
		)
		return AdminResponse{}, err
	}
	if a == nil {
		return AdminResponse{}, accounterrors.ErrAdminNotFound
	}
	return mapAdminToResponse(*a), nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, adminerrors.ErrInvalidAdminID
	}
	return parsed, nil
}
