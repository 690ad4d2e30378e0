// Command seed bootstraps the single admin account. Admin status is never
// granted through registration; this script is the only path, run once at
// first deploy (and safe to run again).
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"askhub/internal/config"
	"askhub/internal/db"
	"askhub/internal/model"
	"askhub/internal/repository"
)

const bcryptCost = 10

func main() {
	log.Println("Starting admin bootstrap...")

	name := os.Getenv("ADMIN_NAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if name == "" || password == "" {
		log.Fatal("ADMIN_NAME and ADMIN_PASSWORD must be set")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	if err := seedAdmin(context.Background(), users, name, password); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
}

// seedAdmin ensures the configured admin account exists. Running it again
// is a no-op; an already-registered name keeps its password and only gains
// the flag.
func seedAdmin(ctx context.Context, users repository.UserRepository, name, password string) error {
	existing, err := users.FindByName(ctx, name)
	if err == nil {
		if existing.Admin {
			log.Printf("Admin %q already seeded, nothing to do", name)
			return nil
		}
		log.Printf("Warning: %q was registered before the bootstrap; granting admin to that account with its existing password", name)
		if err := users.SetAdmin(ctx, existing.ID); err != nil {
			return fmt.Errorf("grant admin: %w", err)
		}
		log.Printf("Granted admin to existing user %q", name)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("look up %q: %w", name, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := &model.User{
		Name:         name,
		PasswordHash: string(hashedPassword),
		Admin:        true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Printf("Seeded admin account %q (%s)", name, admin.ID)
	return nil
}
