package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/storefront/internal/auth"
	"github.com/mrlokans/storefront/internal/config"
	"github.com/mrlokans/storefront/internal/database"
	"github.com/mrlokans/storefront/internal/database/users"
)

// CreateUserCommand creates a customer account directly in the database.
type CreateUserCommand struct {
	Name     string
	Email    string
	Password string

	// Database and BcryptCost come from the environment unless overridden.
	Database   config.Database
	BcryptCost int

	Out io.Writer
}

// NewCreateUserCommand creates a new CreateUserCommand seeded from cfg.
func NewCreateUserCommand(cfg *config.Config) *CreateUserCommand {
	return &CreateUserCommand{
		Database:   cfg.Database,
		BcryptCost: cfg.Auth.BcryptCost,
		Out:        os.Stdout,
	}
}

// ParseFlags parses command line flags
func (cmd *CreateUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)

	fs.StringVar(&cmd.Name, "name", "", "Display name of the customer (required)")
	fs.StringVar(&cmd.Email, "email", "", "Email address used to log in (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password, at most 72 bytes (required)")
	fs.StringVar(&cmd.Database.Path, "db", cmd.Database.Path, "Path to the SQLite database (sqlite driver only)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-user -name NAME -email EMAIL -password PASSWORD [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a customer account without going through the HTTP API.\n")
		fmt.Fprintf(os.Stderr, "Database settings are read from DATABASE_* environment variables.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the command
func (cmd *CreateUserCommand) Run() error {
	if cmd.Name == "" || cmd.Email == "" || cmd.Password == "" {
		return errors.New("-name, -email and -password are required")
	}

	db, err := database.NewDatabase(cmd.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	service := auth.NewService(users.NewRepository(db.DB), config.Auth{BcryptCost: cmd.BcryptCost})
	user, err := service.Register(context.Background(), cmd.Name, cmd.Email, cmd.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			return fmt.Errorf("user with email %s already exists", cmd.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Created user %s (%s) with id %s\n", user.Name, user.Email, user.ID)
	return nil
}
