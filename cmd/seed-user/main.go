package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"loanflow.backend/internal/config"
	"loanflow.backend/internal/domain/entities"
	"loanflow.backend/internal/infrastructure/repositories"
	"loanflow.backend/internal/usecases"
	"loanflow.backend/pkg/jwt"
)

var openSeedUserDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openSeedSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type seedUserRuntime interface {
	Register(ctx context.Context, input usecases.RegisterInput) (*usecases.AuthOutput, error)
}

type seedUserDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (seedUserRuntime, io.Closer, error)
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultSeedUserDeps() seedUserDeps {
	return seedUserDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (seedUserRuntime, io.Closer, error) {
			db, err := openSeedUserDB(cfg.Database.URL())
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := openSeedSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			userRepo := repositories.NewUserRepository(db)
			jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
			return usecases.NewAuthUsecase(userRepo, jwtService), sqlDB, nil
		},
		out: os.Stdout,
	}
}

func runSeedUser(args []string, deps seedUserDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.prepare == nil {
		def := defaultSeedUserDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("seed-user", flag.ContinueOnError)
	emailFlag := fs.String("email", "", "user email (required)")
	nameFlag := fs.String("name", "", "display name (required)")
	passwordFlag := fs.String("password", "", "login password (required)")
	roleFlag := fs.String("role", string(entities.RoleLoanAdmin), "role: CUSTOMER, SALES_MANAGER, LOAN_ADMIN, COORDINATOR or CONNECTOR")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *emailFlag == "" || *nameFlag == "" || *passwordFlag == "" {
		return fmt.Errorf("--email, --name and --password are required")
	}
	role := entities.UserRole(*roleFlag)
	if !entities.ValidRole(role) {
		return fmt.Errorf("unknown role %q", *roleFlag)
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	out, err := runtime.Register(context.Background(), usecases.RegisterInput{
		Email:    *emailFlag,
		Name:     *nameFlag,
		Password: *passwordFlag,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("failed creating user: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Created user")
	_, _ = fmt.Fprintf(deps.out, "user_id=%s\n", out.User.ID.String())
	_, _ = fmt.Fprintf(deps.out, "email=%s\n", out.User.Email)
	_, _ = fmt.Fprintf(deps.out, "role=%s\n", out.User.Role)
	return nil
}

func main() {
	if err := runSeedUser(os.Args[1:], defaultSeedUserDeps()); err != nil {
		log.Fatal(err)
	}
}
