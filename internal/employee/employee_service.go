package employee

import (
	"context"
	"strings"
	"time"

	"go-ems/internal/account"
	accounterrors "go-ems/internal/account/errors"
	"go-ems/internal/domain"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/shared/response"
	"go-ems/internal/shared/scope"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultListLimit = 5

// maxSalary is the first value numeric(14,2) cannot hold.
var maxSalary = decimal.New(1, 12)

type Service interface {
	List(ctx context.Context, q ListQuery) (EmployeeListResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, actor *account.Account, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, actor *account.Account, id string, req UpdateEmployeeRequest) (EmployeeResponse, bool, error)
	Delete(ctx context.Context, actor *account.Account, id string) error
}

type service struct {
	repo     Repository
	accounts account.Service
	logger   *zap.Logger
}

func NewService(repo Repository, accounts account.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, accounts: accounts, logger: l}
}

func (s *service) List(ctx context.Context, q ListQuery) (EmployeeListResponse, error) {
	page := scope.ParsePage(q.Limit, q.Skip, q.Page, DefaultListLimit)

	rows, total, err := s.repo.List(ctx, ListFilter{
		Page:       page,
		Search:     q.Search,
		Department: q.Department,
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list employees failed", zap.Error(err))
		return EmployeeListResponse{}, err
	}

	items := make([]EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		items = append(items, mapEmployeeToResponse(e))
	}

	return EmployeeListResponse{
		Employees:      items,
		PaginationMeta: response.NewPaginationMeta(total, page.Skip, page.Limit),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	employeeID, err := parseID(id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return s.load(ctx, employeeID)
}

func (s *service) Create(ctx context.Context, actor *account.Account, req CreateEmployeeRequest) (EmployeeResponse, error) {
	fields, err := employeeFields(req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	created, err := s.accounts.Create(ctx, actor, account.CreateInput{
		Channel:  domain.ChannelEmployeeCreation,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Employee: fields,
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	return s.load(ctx, created.EmployeeProfile.ID)
}

func (s *service) Update(ctx context.Context, actor *account.Account, id string, req UpdateEmployeeRequest) (EmployeeResponse, bool, error) {
	employeeID, err := parseID(id)
	if err != nil {
		return EmployeeResponse{}, false, err
	}

	in, err := updateInput(req)
	if err != nil {
		return EmployeeResponse{}, false, err
	}

	changed, err := s.accounts.UpdateEmployee(ctx, actor, employeeID, in)
	if err != nil {
		return EmployeeResponse{}, false, err
	}

	resp, err := s.load(ctx, employeeID)
	return resp, changed, err
}

func (s *service) Delete(ctx context.Context, actor *account.Account, id string) error {
	employeeID, err := parseID(id)
	if err != nil {
		return err
	}
	return s.accounts.DeleteEmployee(ctx, actor, employeeID)
}

func (s *service) load(ctx context.Context, id uuid.UUID) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("load employee failed",
			zap.String("employee_id", id.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}
	if e == nil {
		return EmployeeResponse{}, accounterrors.ErrEmployeeNotFound
	}
	return mapEmployeeToResponse(*e), nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, employeeerrors.ErrInvalidEmployeeID
	}
	return parsed, nil
}

func checkSalary(v decimal.Decimal) error {
	if v.IsNegative() {
		return employeeerrors.ErrNegativeSalary
	}
	if v.Round(2).GreaterThanOrEqual(maxSalary) {
		return employeeerrors.ErrSalaryTooLarge
	}
	return nil
}

func employeeFields(req CreateEmployeeRequest) (account.EmployeeFields, error) {
	f := account.EmployeeFields{
		Age:           req.Age,
		Department:    req.Department,
		Phone:         req.Phone,
		PersonalEmail: req.PersonalEmail,
	}
	if code := strings.TrimSpace(req.EmployeeCode); code != "" {
		f.EmployeeCode = &code
	}
	if req.Address != nil {
		f.Address = req.Address.toModel()
	}
	if req.Salary != nil {
		if err := checkSalary(*req.Salary); err != nil {
			return f, err
		}
		f.Salary = *req.Salary
	}
	if req.ReportingManager != nil && strings.TrimSpace(*req.ReportingManager) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*req.ReportingManager))
		if err != nil {
			return f, employeeerrors.ErrInvalidReportingManager
		}
		f.ReportingManagerID = &id
	}
	if req.JoiningDate != nil && *req.JoiningDate != "" {
		d, err := time.Parse(dateLayout, *req.JoiningDate)
		if err != nil {
			return f, employeeerrors.ErrInvalidJoiningDate
		}
		f.JoiningDate = &d
	}
	return f, nil
}

func updateInput(req UpdateEmployeeRequest) (account.UpdateEmployeeInput, error) {
	in := account.UpdateEmployeeInput{
		Name:          req.Name,
		EmployeeCode:  req.EmployeeCode,
		Age:           req.Age,
		Department:    req.Department,
		Phone:         req.Phone,
		PersonalEmail: req.PersonalEmail,
		IsActive:      req.IsActive,
	}
	if req.Address != nil {
		addr := req.Address.toModel()
		in.Address = &addr
	}
	if req.Salary != nil {
		if err := checkSalary(*req.Salary); err != nil {
			return in, err
		}
		in.Salary = req.Salary
	}
	if req.ReportingManager != nil {
		raw := strings.TrimSpace(*req.ReportingManager)
		id := uuid.Nil
		if raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				return in, employeeerrors.ErrInvalidReportingManager
			}
			id = parsed
		}
		in.ReportingManagerID = &id
	}
	if req.JoiningDate != nil && *req.JoiningDate != "" {
		d, err := time.Parse(dateLayout, *req.JoiningDate)
		if err != nil {
			return in, employeeerrors.ErrInvalidJoiningDate
		}
		in.JoiningDate = &d
	}
	return in, nil
}
