// Command createadmin seeds an admin account.  Roles are fixed at
// registration and the public API refuses to create admins beyond what a
// caller chooses for themselves, so operations bootstrap the first admin
// with this tool instead of an elevation endpoint.
//
// Usage:
//
//	createadmin -email admin@example.com -password secret
//
// The command is idempotent: an existing account with the email is left
// untouched.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/rocgym/jobboard/internal/authz"
	"github.com/rocgym/jobboard/internal/config"
	"github.com/rocgym/jobboard/internal/database"
	"github.com/rocgym/jobboard/internal/repository"
)

func main() {
	email := flag.String("email", "", "email for the admin account")
	password := flag.String("password", "", "password for the admin account")
	flag.Parse()
	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := repository.NewUserRepo(db)
	if u, err := users.GetByEmail(ctx, *email); err == nil {
		log.Printf("admin user already exists with id %d (role %s)", u.ID, u.Role)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("lookup failed: %v", err)
	}

	id, err := users.Create(ctx, *email, *password, string(authz.RoleAdmin), cfg.BcryptCost)
	if err != nil {
		log.Fatalf("create admin failed: %v", err)
	}
	log.Printf("admin user created with id %d", id)
}
