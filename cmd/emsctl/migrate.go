package main

import (
	"go-ems/internal/account"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const envFileFlag = "env-file"

var migrateFlags = map[string]cobraflags.Flag{
	envFileFlag: &cobraflags.StringFlag{
		Name:  envFileFlag,
		Value: ".env",
		Usage: "Dotenv file loaded before reading the environment",
	},
}

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the accounts, admin_profiles and employee_profiles tables",
		RunE:  migrateCommand,
	}
	cobraflags.RegisterMap(cmd, migrateFlags)
	return cmd
}

func migrateCommand(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd.Context(), migrateFlags[envFileFlag].GetString())
	if err != nil {
		return err
	}
	defer rt.close()

	if err := account.Migrate(rt.db.WithContext(cmd.Context())); err != nil {
		return err
	}
	rt.logger.Info("migration complete", zap.String("database", rt.cfg.DB.Name))
	return nil
}
