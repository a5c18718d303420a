package rbac

import (
	"fmt"
	"sync"

	"go-ems/internal/domain"

	"github.com/casbin/casbin/v2"
)

type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	EffectiveRole(actingRole, requested domain.Role, channel domain.Channel) domain.Role
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
}

// NewService loads the policy table into enforcer, replacing whatever it held.
func NewService(enforcer *casbin.Enforcer) (Service, error) {
	enforcer.ClearPolicy()

	if _, err := enforcer.AddPolicies(policyTable); err != nil {
		return nil, fmt.Errorf("rbac: load policy: %w", err)
	}
	if _, err := enforcer.AddGroupingPolicies(roleHierarchy); err != nil {
		return nil, fmt.Errorf("rbac: load role hierarchy: %w", err)
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if req.ActingRole == "" {
		req.ActingRole = domain.RolePublic
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.enforcer.Enforce(string(req.ActingRole), string(req.TargetRole), string(req.Operation))
}

// EffectiveRole decides the role a new account gets. The client-supplied role is
// only honoured when a SUPER_ADMIN creates through signup or admin creation.
func (s *service) EffectiveRole(actingRole, requested domain.Role, channel domain.Channel) domain.Role {
	switch channel {
	case domain.ChannelEmployeeCreation:
		return domain.RoleEmployee
	case domain.ChannelAdminCreation, domain.ChannelSignup:
		if actingRole != domain.RoleSuperAdmin {
			return domain.RoleEmployee
		}
		if requested.Valid() {
			return requested
		}
		return domain.RoleAdmin
	}
	return domain.RoleEmployee
}
