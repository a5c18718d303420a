package auth

import (
	"context"
	"time"

	"go-ems/internal/account"
	autherrors "go-ems/internal/auth/errors"
	"go-ems/internal/domain"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PasswordVerifier interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
	NeedsRehash(digest string) bool
}

type TokenIssuer interface {
	Issue(subjectID uuid.UUID) (string, error)
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Signup(ctx context.Context, actor *account.Account, req SignupRequest) (AuthResponse, error)
}

type service struct {
	accounts  account.Repository
	lifecycle account.Service
	passwords PasswordVerifier
	tokens    TokenIssuer
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	accounts account.Repository,
	lifecycle account.Service,
	passwords PasswordVerifier,
	tokens TokenIssuer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		accounts:  accounts,
		lifecycle: lifecycle,
		passwords: passwords,
		tokens:    tokens,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	email := account.NormalizeEmail(req.Email)

	acc, err := s.accounts.FindActiveByEmail(ctx, email)
	if err != nil {
		log.Error("login lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}

	// Respon seragam: email tidak ada atau password salah
	if acc == nil || !s.passwords.Verify(req.Password, acc.PasswordHash) {
		log.Info("login failed", zap.String("email", email), zap.Bool("user_found", acc != nil))
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if s.passwords.NeedsRehash(acc.PasswordHash) {
		s.upgradeDigest(ctx, acc, req.Password)
	}

	token, err := s.tokens.Issue(acc.ID)
	if err != nil {
		log.Error("login issue token failed", zap.Error(err))
		return AuthResponse{}, err
	}

	return AuthResponse{User: mapAccountToResponse(acc), Token: token}, nil
}

// upgradeDigest re-hashes a legacy digest. Login still succeeds when it fails.
func (s *service) upgradeDigest(ctx context.Context, acc *account.Account, plain string) {
	log := contextutil.GetLogger(ctx, s.logger)

	digest, err := s.passwords.Hash(plain)
	if err != nil {
		log.Warn("rehash password failed", zap.String("account_id", acc.ID.String()), zap.Error(err))
		return
	}
	err = s.accounts.UpdateFields(ctx, acc.ID, map[string]any{
		"password_hash": digest,
		"updated_at":    s.now(),
	})
	if err != nil {
		log.Warn("store rehashed password failed", zap.String("account_id", acc.ID.String()), zap.Error(err))
		return
	}
	acc.PasswordHash = digest
	log.Info("password digest upgraded", zap.String("account_id", acc.ID.String()))
}

func (s *service) Signup(ctx context.Context, actor *account.Account, req SignupRequest) (AuthResponse, error) {
	// unknown values are dropped; the policy picks the role either way
	requested, ok := domain.ParseRole(req.Role)
	if !ok {
		requested = ""
	}

	in := account.CreateInput{
		Channel:       domain.ChannelSignup,
		RequestedRole: requested,
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Admin: account.AdminFields{
			Department: req.Department,
			Phone:      req.Phone,
		},
		Employee: account.EmployeeFields{
			Age:        req.Age,
			Department: req.Department,
			Phone:      req.Phone,
		},
	}
	if req.Address != nil {
		addr := account.Address(*req.Address)
		in.Admin.Address = addr
		in.Employee.Address = addr
	}

	created, err := s.lifecycle.Create(ctx, actor, in)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{User: mapAccountToResponse(created.Account), Token: created.Token}, nil
}
