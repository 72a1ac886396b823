// Package createuser exposes a bootstrap command that seeds a user directly
// in the database, bypassing the HTTP surface. Its main use is creating the
// first platform admin of a fresh deployment.
package createuser

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/heliox-inc/heliox/internal/domain/user"
	uservo "github.com/heliox-inc/heliox/internal/domain/user/valueobjects"
	"github.com/heliox-inc/heliox/internal/infrastructure/config"
	"github.com/heliox-inc/heliox/internal/infrastructure/database"
	"github.com/heliox-inc/heliox/internal/infrastructure/repository"
	"github.com/heliox-inc/heliox/internal/shared/logger"
)

var (
	env       string
	companyID uint
	email     string
	name      string
	role      string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user directly in the database",
		Long:  "Creates a user without going through the API. The password is read from the terminal and never echoed.",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().UintVar(&companyID, "company-id", 0, "Company the user belongs to")
	cmd.Flags().StringVar(&email, "email", "", "User email address")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", uservo.RolePlatformAdmin.String(), "User role")

	_ = cmd.MarkFlagRequired("company-id")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, "release"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	emailVO, err := uservo.NewEmail(email)
	if err != nil {
		return err
	}
	roleVO := uservo.Role(role)
	if !roleVO.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}
	hash, err := password.Hash(0)
	if err != nil {
		return err
	}

	u, err := user.NewUser(companyID, emailVO, hash, name, roleVO)
	if err != nil {
		return err
	}

	repo := repository.NewUserRepository(database.Get())
	if err := repo.Create(cmd.Context(), u); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user created", "id", u.ID(), "email", email, "role", role)
	return nil
}

func promptPassword() (*uservo.Password, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(raw) != string(confirm) {
		return nil, fmt.Errorf("passwords do not match")
	}
	return uservo.NewPassword(string(raw))
}
