package account

import (
	"errors"
	"strings"

	accounterrors "go-ems/internal/account/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// mapRepositoryError turns unique-index violations into conflicts. Everything
// else is returned untouched and ends up as an internal error.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if mapped := conflictFor(pgErr.ConstraintName); mapped != nil {
			return mapped
		}
	}

	// SQLite and drivers that only expose text
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint failed") {
		switch {
		case strings.Contains(msg, "ux_accounts_email_active"), strings.Contains(msg, "accounts.email"):
			return accounterrors.ErrEmailAlreadyRegistered
		case strings.Contains(msg, "ux_employee_profiles_code_active"), strings.Contains(msg, "employee_profiles.employee_code"):
			return accounterrors.ErrEmployeeCodeTaken
		case strings.Contains(msg, "_account_active"), strings.Contains(msg, ".account_id"):
			return accounterrors.ErrProfileAlreadyExists
		}
	}

	return err
}

func conflictFor(constraint string) error {
	switch constraint {
	case "ux_accounts_email_active":
		return accounterrors.ErrEmailAlreadyRegistered
	case "ux_employee_profiles_code_active":
		return accounterrors.ErrEmployeeCodeTaken
	case "ux_admin_profiles_account_active", "ux_employee_profiles_account_active":
		return accounterrors.ErrProfileAlreadyExists
	}
	return nil
}
