// migrate aplica o revierte las migraciones del esquema public (registro de instituciones,
// dominios, principales públicos, ajustes y eventos de pago). Los esquemas de institución
// no se migran aquí: se crean completos al aprovisionar.
//
// Uso: go run ./cmd/migrate [up|down|version|force N]
// Sin argumentos aplica up. Lee la conexión de DATABASE_URL o DB_*.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"

	"github.com/jhoicas/Campus-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Campus-api/pkg/config"
)

func main() {
	cmd, args := "up", []string(nil)
	if len(os.Args) > 1 {
		cmd, args = os.Args[1], os.Args[2:]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Migrador: %v\n", err)
		os.Exit(1)
	}

	err = run(m, cmd, args)
	m.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func run(m *migrate.Migrate, cmd string, args []string) error {
	switch cmd {
	case "up":
		return ignoreNoChange(m.Up())
	case "down":
		return ignoreNoChange(m.Steps(-1))
	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("sin migraciones aplicadas")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("versión %d (dirty=%t)\n", v, dirty)
		return nil
	case "force":
		if len(args) != 1 {
			return errors.New("uso: force N")
		}
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("versión inválida %q", args[0])
		}
		return m.Force(v)
	default:
		return errors.New("comando desconocido (up, down, version, force N)")
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("sin cambios")
		return nil
	}
	if err == nil {
		fmt.Println("ok")
	}
	return err
}
