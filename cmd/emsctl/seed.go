package main

import (
	"errors"

	"go-ems/internal/account"
	"go-ems/internal/app"
	"go-ems/internal/bootstrap"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

const (
	nameFlag     = "name"
	emailFlag    = "email"
	passwordFlag = "password"
)

// Flags left empty fall back to the SUPER_ADMIN_* environment values.
var seedFlags = map[string]cobraflags.Flag{
	envFileFlag: &cobraflags.StringFlag{
		Name:  envFileFlag,
		Value: ".env",
		Usage: "Dotenv file loaded before reading the environment",
	},
	nameFlag: &cobraflags.StringFlag{
		Name:  nameFlag,
		Value: "",
		Usage: "Super admin display name",
	},
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Value: "",
		Usage: "Super admin login email",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Value: "",
		Usage: "Super admin initial password",
	},
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-super-admin",
		Short: "Create the super admin account if none exists",
		Long: `Create the single SUPER_ADMIN account when no live super admin exists.

Running it again is a no-op. Values come from SUPER_ADMIN_NAME, SUPER_ADMIN_EMAIL
and SUPER_ADMIN_PASSWORD unless overridden by flags.`,
		RunE: seedCommand,
	}
	cobraflags.RegisterMap(cmd, seedFlags)
	return cmd
}

func seedCommand(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd.Context(), seedFlags[envFileFlag].GetString())
	if err != nil {
		return err
	}
	defer rt.close()

	sa := rt.cfg.SuperAdmin
	if v := seedFlags[nameFlag].GetString(); v != "" {
		sa.Name = v
	}
	if v := seedFlags[emailFlag].GetString(); v != "" {
		sa.Email = v
	}
	if v := seedFlags[passwordFlag].GetString(); v != "" {
		sa.Password = v
	}
	if !sa.Enabled() {
		return errors.New("super admin email and password are required")
	}

	if err := account.Migrate(rt.db.WithContext(cmd.Context())); err != nil {
		return err
	}

	application, err := app.BuildApp(app.Deps{
		Config: rt.cfg,
		DB:     rt.db,
		Logger: rt.logger,
		Audit:  bootstrap.NewStdoutAuditLogger(rt.logger),
	})
	if err != nil {
		return err
	}
	return application.SeedSuperAdmin(cmd.Context(), sa)
}
