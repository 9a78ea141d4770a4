// seed_superadmin crea un superadmin en el esquema public. Es la única vía para obtener uno:
// el registro público solo crea clientes.
//
// Uso: go run ./cmd/seed_superadmin <email> <password> [username]
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Campus-api/internal/application/auth"
	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Campus-api/pkg/config"
	"github.com/jhoicas/Campus-api/pkg/logger"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Uso: seed_superadmin <email> <password> [username]")
		os.Exit(2)
	}
	email, password := os.Args[1], os.Args[2]
	username := ""
	if len(os.Args) > 3 {
		username = os.Args[3]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, cfg, log.Component("seed"), username, email, password); err != nil {
		cancel()
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			fmt.Fprintf(os.Stderr, "Ya existe un usuario con email %s\n", email)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Crear superadmin: %v\n", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, cfg *config.Config, log zerolog.Logger, username, email, password string) error {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := auth.NewUseCase(postgres.NewUserRepository(pool), auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	}, log)
	u, err := uc.CreateSuperAdmin(ctx, username, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("superadmin %s creado (id %s)\n", u.Email, u.ID)
	return nil
}
