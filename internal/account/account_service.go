package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	accounterrors "go-ems/internal/account/errors"
	"go-ems/internal/bootstrap"
	"go-ems/internal/domain"
	"go-ems/internal/rbac"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=account_service.go -destination=mock/account_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor *Account, in CreateInput) (*Created, error)
	UpdateProfile(ctx context.Context, actor *Account, in UpdateProfileInput) (*Account, bool, error)
	SoftDelete(ctx context.Context, actor *Account, targetID uuid.UUID) error
	UpdateEmployee(ctx context.Context, actor *Account, employeeID uuid.UUID, in UpdateEmployeeInput) (bool, error)
	DeleteEmployee(ctx context.Context, actor *Account, employeeID uuid.UUID) error
	UpdateAdmin(ctx context.Context, actor *Account, adminID uuid.UUID, in UpdateAdminInput) (bool, error)
	DeleteAdmin(ctx context.Context, actor *Account, adminID uuid.UUID) error
	EnsureSuperAdmin(ctx context.Context, name, email, password string) (*Account, bool, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
	IsHashed(value string) bool
	EnsureHashed(value string) (string, error)
}

type TokenIssuer interface {
	Issue(subjectID uuid.UUID) (string, error)
}

// Config holds the business rules that vary per deployment. An empty domain
// disables the email-domain rule for that role.
type Config struct {
	AdminEmailDomain    string
	EmployeeEmailDomain string
}

type Deps struct {
	DB        *gorm.DB
	Accounts  Repository
	Admins    AdminProfileRepository
	Employees EmployeeProfileRepository
	Policy    rbac.Service
	Passwords PasswordHasher
	Tokens    TokenIssuer
	Audit     bootstrap.AuditLogger
}

type service struct {
	db        *gorm.DB
	accounts  Repository
	admins    AdminProfileRepository
	employees EmployeeProfileRepository
	policy    rbac.Service
	passwords PasswordHasher
	tokens    TokenIssuer
	audit     bootstrap.AuditLogger
	cfg       Config
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(deps Deps, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("account.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.service")
	}
	audit := deps.Audit
	if audit == nil {
		audit = bootstrap.NopAuditLogger{}
	}
	return &service{
		db:        deps.DB,
		accounts:  deps.Accounts,
		admins:    deps.Admins,
		employees: deps.Employees,
		policy:    deps.Policy,
		passwords: deps.Passwords,
		tokens:    deps.Tokens,
		audit:     audit,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, actor *Account, in CreateInput) (*Created, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	actingRole := domain.RolePublic
	if actor != nil {
		actingRole = actor.Role
	}
	// a signed-in employee on the signup form registers like anyone else
	if in.Channel == domain.ChannelSignup && actingRole == domain.RoleEmployee {
		actingRole = domain.RolePublic
	}

	// 1. Effective role dari policy, bukan dari body request
	role := s.policy.EffectiveRole(actingRole, in.RequestedRole, in.Channel)
	if err := s.authorize(actingRole, role, domain.OpCreate); err != nil {
		log.Warn("create account denied",
			zap.String("acting_role", actingRole.String()),
			zap.String("requested_role", in.RequestedRole.String()),
			zap.String("effective_role", role.String()),
			zap.String("channel", string(in.Channel)),
		)
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, accounterrors.ErrNameRequired
	}
	if in.Password == "" {
		return nil, accounterrors.ErrPasswordRequired
	}

	// 2. Domain rule runs after the generic format check
	email := NormalizeEmail(in.Email)
	if err := s.checkEmailDomain(role, email); err != nil {
		return nil, err
	}

	// 3. Email conflict
	existing, err := s.accounts.FindActiveByEmail(ctx, email)
	if err != nil {
		log.Error("create account lookup email failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, accounterrors.ErrEmailAlreadyRegistered
	}

	var creatorAdminID *uuid.UUID
	if role == domain.RoleEmployee {
		if err := s.checkNewEmployee(ctx, in.Employee); err != nil {
			return nil, err
		}
		creatorAdminID, err = s.creatorAdminID(ctx, actor)
		if err != nil {
			log.Error("create account resolve creator failed", zap.Error(err))
			return nil, err
		}
	}

	// 4. Hash
	digest, err := s.passwords.Hash(in.Password)
	if err != nil {
		log.Error("create account hash failed", zap.Error(err))
		return nil, err
	}

	// 5. Account + profile in one transaction
	now := s.now()
	acc := &Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created := &Created{Account: acc}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.accounts.WithTx(tx).Create(ctx, acc); err != nil {
			return err
		}

		if role.IsAdministrative() {
			p := newAdminProfile(acc.ID, in.Admin, now)
			if err := s.admins.WithTx(tx).Create(ctx, p); err != nil {
				return err
			}
			created.AdminProfile = p
			return nil
		}

		p := newEmployeeProfile(acc.ID, creatorAdminID, in.Employee, now)
		if err := s.employees.WithTx(tx).Create(ctx, p); err != nil {
			return err
		}
		created.EmployeeProfile = p
		return nil
	})
	if err != nil {
		if apperror.IsInternal(err) {
			log.Error("create account tx failed", zap.String("email", email), zap.Error(err))
		}
		return nil, err
	}

	// 6. Only an anonymous signup is logged in right away
	if in.Channel == domain.ChannelSignup && actor == nil {
		token, err := s.tokens.Issue(acc.ID)
		if err != nil {
			log.Error("create account issue token failed", zap.Error(err))
			return nil, err
		}
		created.Token = token
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "ACCOUNT_CREATED",
		Message: fmt.Sprintf("%s account created", role),
		Meta: map[string]any{
			"account_id": acc.ID.String(),
			"role":       role.String(),
			"channel":    string(in.Channel),
			"acting":     actingRole.String(),
		},
	})
	log.Info("account created",
		zap.String("account_id", acc.ID.String()),
		zap.String("role", role.String()),
	)

	return created, nil
}

func (s *service) UpdateProfile(ctx context.Context, actor *Account, in UpdateProfileInput) (*Account, bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if actor == nil {
		return nil, false, apperror.ErrUnauthenticated
	}
	if err := s.authorize(actor.Role, actor.Role, domain.OpUpdateSelf); err != nil {
		return nil, false, err
	}

	current, err := s.accounts.FindActiveByID(ctx, actor.ID)
	if err != nil {
		log.Error("update profile load failed", zap.Error(err))
		return nil, false, err
	}
	if current == nil {
		return nil, false, accounterrors.ErrAccountNotFound
	}

	fields := map[string]any{}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, false, accounterrors.ErrNameRequired
		}
		if name != current.Name {
			fields["name"] = name
			current.Name = name
		}
	}

	if in.Password != nil && *in.Password != "" {
		pw := *in.Password
		switch {
		case pw == current.PasswordHash:
			// the stored digest echoed back
		case s.passwords.IsHashed(pw):
			return nil, false, accounterrors.ErrPasswordIsDigest
		case s.passwords.Verify(pw, current.PasswordHash):
			// same plaintext as before
		default:
			digest, err := s.passwords.Hash(pw)
			if err != nil {
				log.Error("update profile hash failed", zap.Error(err))
				return nil, false, err
			}
			fields["password_hash"] = digest
			current.PasswordHash = digest
		}
	}

	if len(fields) == 0 {
		log.Debug("update profile no changes", zap.String("account_id", current.ID.String()))
		return current, false, nil
	}

	now := s.now()
	fields["updated_at"] = now
	if err := s.accounts.UpdateFields(ctx, current.ID, fields); err != nil {
		if apperror.IsInternal(err) {
			log.Error("update profile write failed", zap.Error(err))
		}
		return nil, false, err
	}
	current.UpdatedAt = now

	return current, true, nil
}

func (s *service) SoftDelete(ctx context.Context, actor *Account, targetID uuid.UUID) error {
	log := contextutil.GetLogger(ctx, s.logger)
	if actor == nil {
		return apperror.ErrUnauthenticated
	}

	target, err := s.accounts.FindActiveByID(ctx, targetID)
	if err != nil {
		log.Error("soft delete load target failed", zap.Error(err))
		return err
	}
	if target == nil {
		return accounterrors.ErrAccountNotFound
	}

	if target.Role == domain.RoleSuperAdmin {
		log.Warn("soft delete of super admin rejected",
			zap.String("actor_id", actor.ID.String()),
			zap.String("target_id", target.ID.String()),
		)
		return accounterrors.ErrCannotDeleteSuperAdmin
	}

	op := domain.OpDelete
	if actor.ID == target.ID {
		op = domain.OpDeleteSelf
	}
	allowed, err := s.policy.Enforce(domain.EnforceRequest{ActingRole: actor.Role, TargetRole: target.Role, Operation: op})
	if err != nil {
		return err
	}
	if !allowed {
		return accounterrors.ErrDeleteNotAllowed
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.accounts.WithTx(tx).SoftDelete(ctx, target.ID, now); err != nil {
			return err
		}
		if target.Role.IsAdministrative() {
			return s.admins.WithTx(tx).SoftDeleteByAccountID(ctx, target.ID, now)
		}
		return s.employees.WithTx(tx).SoftDeleteByAccountID(ctx, target.ID, now)
	})
	if err != nil {
		if apperror.IsInternal(err) {
			log.Error("soft delete tx failed", zap.String("target_id", target.ID.String()), zap.Error(err))
		}
		return err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "ACCOUNT_DELETED",
		Message: fmt.Sprintf("%s account soft-deleted", target.Role),
		Meta: map[string]any{
			"account_id": target.ID.String(),
			"role":       target.Role.String(),
			"actor_id":   actor.ID.String(),
		},
	})
	return nil
}

func (s *service) DeleteEmployee(ctx context.Context, actor *Account, employeeID uuid.UUID) error {
	p, err := s.employees.FindActiveByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if p == nil {
		return accounterrors.ErrEmployeeNotFound
	}
	return s.SoftDelete(ctx, actor, p.AccountID)
}

func (s *service) DeleteAdmin(ctx context.Context, actor *Account, adminID uuid.UUID) error {
	p, err := s.admins.FindActiveByID(ctx, adminID)
	if err != nil {
		return err
	}
	if p == nil {
		return accounterrors.ErrAdminNotFound
	}
	return s.SoftDelete(ctx, actor, p.AccountID)
}

func (s *service) UpdateEmployee(ctx context.Context, actor *Account, employeeID uuid.UUID, in UpdateEmployeeInput) (bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if actor == nil {
		return false, apperror.ErrUnauthenticated
	}

	p, err := s.employees.FindActiveByID(ctx, employeeID)
	if err != nil {
		log.Error("update employee load failed", zap.Error(err))
		return false, err
	}
	if p == nil {
		return false, accounterrors.ErrEmployeeNotFound
	}
	owner, err := s.accounts.FindActiveByID(ctx, p.AccountID)
	if err != nil {
		return false, err
	}
	if owner == nil {
		return false, accounterrors.ErrEmployeeNotFound
	}
	if err := s.authorize(actor.Role, owner.Role, domain.OpUpdate); err != nil {
		return false, err
	}

	profileFields, err := s.employeeChanges(ctx, p, in)
	if err != nil {
		return false, err
	}

	accountFields := map[string]any{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return false, accounterrors.ErrNameRequired
		}
		if name != owner.Name {
			accountFields["name"] = name
		}
	}

	if len(profileFields) == 0 && len(accountFields) == 0 {
		return false, nil
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(profileFields) > 0 {
			profileFields["updated_at"] = now
			if err := s.employees.WithTx(tx).UpdateFields(ctx, p.ID, profileFields); err != nil {
				return err
			}
		}
		if len(accountFields) > 0 {
			accountFields["updated_at"] = now
			if err := s.accounts.WithTx(tx).UpdateFields(ctx, owner.ID, accountFields); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if apperror.IsInternal(err) {
			log.Error("update employee tx failed", zap.String("employee_id", p.ID.String()), zap.Error(err))
		}
		return false, err
	}

	return true, nil
}

// employeeChanges keeps only allow-listed fields whose value differs from p.
func (s *service) employeeChanges(ctx context.Context, p *EmployeeProfile, in UpdateEmployeeInput) (map[string]any, error) {
	fields := map[string]any{}

	if in.EmployeeCode != nil {
		code := normalizeCode(in.EmployeeCode)
		switch {
		case code == nil && p.EmployeeCode != nil:
			fields["employee_code"] = nil
		case code != nil && (p.EmployeeCode == nil || *p.EmployeeCode != *code):
			taken, err := s.employees.CodeTaken(ctx, *code, &p.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, accounterrors.ErrEmployeeCodeTaken
			}
			fields["employee_code"] = *code
		}
	}
	if in.Age != nil && *in.Age != p.Age {
		fields["age"] = *in.Age
	}
	if in.Department != nil && strings.TrimSpace(*in.Department) != p.Department {
		fields["department"] = strings.TrimSpace(*in.Department)
	}
	if in.Phone != nil && strings.TrimSpace(*in.Phone) != p.Phone {
		fields["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.PersonalEmail != nil && NormalizeEmail(*in.PersonalEmail) != p.PersonalEmail {
		fields["personal_email"] = NormalizeEmail(*in.PersonalEmail)
	}
	if in.Address != nil && *in.Address != p.Address {
		for k, v := range in.Address.columns() {
			fields[k] = v
		}
	}
	if in.Salary != nil && !in.Salary.Equal(p.Salary) {
		fields["salary"] = *in.Salary
	}
	if in.ReportingManagerID != nil {
		id := *in.ReportingManagerID
		switch {
		case id == uuid.Nil && p.ReportingManagerID != nil:
			fields["reporting_manager_id"] = nil
		case id != uuid.Nil && (p.ReportingManagerID == nil || *p.ReportingManagerID != id):
			if id == p.ID {
				return nil, accounterrors.ErrSelfReportingManager
			}
			if err := s.checkManager(ctx, id); err != nil {
				return nil, err
			}
			fields["reporting_manager_id"] = id
		}
	}
	if in.JoiningDate != nil && (p.JoiningDate == nil || !p.JoiningDate.Equal(*in.JoiningDate)) {
		fields["joining_date"] = *in.JoiningDate
	}
	if in.IsActive != nil && *in.IsActive != p.IsActive {
		fields["is_active"] = *in.IsActive
	}

	return fields, nil
}

func (s *service) UpdateAdmin(ctx context.Context, actor *Account, adminID uuid.UUID, in UpdateAdminInput) (bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if actor == nil {
		return false, apperror.ErrUnauthenticated
	}

	p, err := s.admins.FindActiveByID(ctx, adminID)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, accounterrors.ErrAdminNotFound
	}
	owner, err := s.accounts.FindActiveByID(ctx, p.AccountID)
	if err != nil {
		return false, err
	}
	if owner == nil {
		return false, accounterrors.ErrAdminNotFound
	}
	if err := s.authorize(actor.Role, owner.Role, domain.OpUpdate); err != nil {
		return false, err
	}

	profileFields := map[string]any{}
	if in.Department != nil && strings.TrimSpace(*in.Department) != p.Department {
		profileFields["department"] = strings.TrimSpace(*in.Department)
	}
	if in.Phone != nil && strings.TrimSpace(*in.Phone) != p.Phone {
		profileFields["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil && *in.Address != p.Address {
		for k, v := range in.Address.columns() {
			profileFields[k] = v
		}
	}

	accountFields := map[string]any{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return false, accounterrors.ErrNameRequired
		}
		if name != owner.Name {
			accountFields["name"] = name
		}
	}

	if len(profileFields) == 0 && len(accountFields) == 0 {
		return false, nil
	}

	now := s.now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(profileFields) > 0 {
			profileFields["updated_at"] = now
			if err := s.admins.WithTx(tx).UpdateFields(ctx, p.ID, profileFields); err != nil {
				return err
			}
		}
		if len(accountFields) > 0 {
			accountFields["updated_at"] = now
			if err := s.accounts.WithTx(tx).UpdateFields(ctx, owner.ID, accountFields); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if apperror.IsInternal(err) {
			log.Error("update admin tx failed", zap.String("admin_id", p.ID.String()), zap.Error(err))
		}
		return false, err
	}

	return true, nil
}

// EnsureSuperAdmin creates the first SUPER_ADMIN unless one is already live.
// password may already be a digest.
func (s *service) EnsureSuperAdmin(ctx context.Context, name, email, password string) (*Account, bool, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	exists, err := s.accounts.ExistsActiveByRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		return nil, false, err
	}
	if exists {
		log.Debug("super admin already present")
		return nil, false, nil
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Super Admin"
	}
	email = NormalizeEmail(email)
	if err := s.checkEmailDomain(domain.RoleSuperAdmin, email); err != nil {
		return nil, false, err
	}
	if password == "" {
		return nil, false, accounterrors.ErrPasswordRequired
	}

	existing, err := s.accounts.FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return nil, false, accounterrors.ErrEmailAlreadyRegistered
	}

	digest, err := s.passwords.EnsureHashed(password)
	if err != nil {
		return nil, false, err
	}

	now := s.now()
	acc := &Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		Role:         domain.RoleSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.accounts.WithTx(tx).Create(ctx, acc); err != nil {
			return err
		}
		return s.admins.WithTx(tx).Create(ctx, newAdminProfile(acc.ID, AdminFields{}, now))
	})
	if err != nil {
		return nil, false, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "SUPER_ADMIN_SEEDED",
		Message: "initial super admin created",
		Meta:    map[string]any{"account_id": acc.ID.String(), "email": acc.Email},
	})
	log.Info("super admin created", zap.String("account_id", acc.ID.String()))

	return acc, true, nil
}

func (s *service) authorize(acting, target domain.Role, op domain.Operation) error {
	allowed, err := s.policy.Enforce(domain.EnforceRequest{ActingRole: acting, TargetRole: target, Operation: op})
	if err != nil {
		return err
	}
	if !allowed {
		return accounterrors.ErrRoleNotAllowed
	}
	return nil
}

func (s *service) checkEmailDomain(role domain.Role, email string) error {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return accounterrors.ErrInvalidEmail
	}
	emailDomain := email[at+1:]

	if role.IsAdministrative() {
		if d := strings.ToLower(s.cfg.AdminEmailDomain); d != "" && emailDomain != d {
			return accounterrors.AdminEmailDomain(d)
		}
		return nil
	}
	if d := strings.ToLower(s.cfg.EmployeeEmailDomain); d != "" && emailDomain != d {
		return accounterrors.EmployeeEmailDomain(d)
	}
	return nil
}

// checkNewEmployee runs the pre-insert checks; the unique index stays the final word.
func (s *service) checkNewEmployee(ctx context.Context, f EmployeeFields) error {
	if code := normalizeCode(f.EmployeeCode); code != nil {
		taken, err := s.employees.CodeTaken(ctx, *code, nil)
		if err != nil {
			return err
		}
		if taken {
			return accounterrors.ErrEmployeeCodeTaken
		}
	}
	if f.ReportingManagerID != nil && *f.ReportingManagerID != uuid.Nil {
		return s.checkManager(ctx, *f.ReportingManagerID)
	}
	return nil
}

func (s *service) checkManager(ctx context.Context, id uuid.UUID) error {
	mgr, err := s.employees.FindActiveByID(ctx, id)
	if err != nil {
		return err
	}
	if mgr == nil {
		return accounterrors.ErrReportingManagerNotFound
	}
	return nil
}

func (s *service) creatorAdminID(ctx context.Context, actor *Account) (*uuid.UUID, error) {
	if actor == nil || !actor.Role.IsAdministrative() {
		return nil, nil
	}
	p, err := s.admins.FindActiveByAccountID(ctx, actor.ID)
	if err != nil || p == nil {
		return nil, err
	}
	return &p.ID, nil
}

func newAdminProfile(accountID uuid.UUID, f AdminFields, now time.Time) *AdminProfile {
	return &AdminProfile{
		ID:         uuid.New(),
		AccountID:  accountID,
		Department: strings.TrimSpace(f.Department),
		Phone:      strings.TrimSpace(f.Phone),
		Address:    f.Address,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newEmployeeProfile(accountID uuid.UUID, creator *uuid.UUID, f EmployeeFields, now time.Time) *EmployeeProfile {
	var manager *uuid.UUID
	if f.ReportingManagerID != nil && *f.ReportingManagerID != uuid.Nil {
		id := *f.ReportingManagerID
		manager = &id
	}
	return &EmployeeProfile{
		ID:                 uuid.New(),
		AccountID:          accountID,
		CreatedByAdminID:   creator,
		EmployeeCode:       normalizeCode(f.EmployeeCode),
		Age:                f.Age,
		Department:         strings.TrimSpace(f.Department),
		Phone:              strings.TrimSpace(f.Phone),
		PersonalEmail:      NormalizeEmail(f.PersonalEmail),
		Address:            f.Address,
		Salary:             f.Salary,
		ReportingManagerID: manager,
		JoiningDate:        f.JoiningDate,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
