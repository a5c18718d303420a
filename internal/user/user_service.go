package user

import (
	"context"

	"go-ems/internal/account"
	accounterrors "go-ems/internal/account/errors"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Service covers the self-service endpoints; every method acts on actor.
type Service interface {
	Me(ctx context.Context, actor *account.Account) (MeResponse, error)
	UpdateMe(ctx context.Context, actor *account.Account, req UpdateProfileRequest) (AccountResponse, bool, error)
	DeleteMe(ctx context.Context, actor *account.Account) error
}

type service struct {
	repo     Repository
	accounts account.Service
	logger   *zap.Logger
}

func NewService(repo Repository, accounts account.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, accounts: accounts, logger: l}
}

func (s *service) Me(ctx context.Context, actor *account.Account) (MeResponse, error) {
	if actor == nil {
		return MeResponse{}, apperror.ErrUnauthenticated
	}

	p, err := s.repo.FindProfile(ctx, actor.ID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load profile failed", zap.Error(err))
		return MeResponse{}, err
	}
	if p == nil {
		return MeResponse{}, accounterrors.ErrAccountNotFound
	}

	return MeResponse{User: mapProfileToResponse(*p)}, nil
}

func (s *service) UpdateMe(ctx context.Context, actor *account.Account, req UpdateProfileRequest) (AccountResponse, bool, error) {
	updated, changed, err := s.accounts.UpdateProfile(ctx, actor, account.UpdateProfileInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return AccountResponse{}, false, err
	}
	if !changed {
		return AccountResponse{}, false, nil
	}
	return mapAccountToResponse(updated), true, nil
}

func (s *service) DeleteMe(ctx context.Context, actor *account.Account) error {
	if actor == nil {
		return apperror.ErrUnauthenticated
	}
	return s.accounts.SoftDelete(ctx, actor, actor.ID)
}
