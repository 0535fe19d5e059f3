// Command issue-token prints a signed access token for local testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"coatingshop/internal/config"
	"coatingshop/internal/infrastructure/identity"
	"coatingshop/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	user := flag.String("user", "", "user id (token subject)")
	role := flag.String("role", usecase.RoleCustomer, "customer or admin")
	email := flag.String("email", "", "email claim")
	verified := flag.Bool("verified", true, "email_verified claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "usage: issue-token -user <id> [-role admin] [-email a@b.c] [-ttl 1h]")
		os.Exit(2)
	}
	if *role != usecase.RoleCustomer && *role != usecase.RoleAdmin {
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	provider := identity.NewHSProvider(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience)
	token, exp, err := provider.Sign(context.Background(), usecase.Actor{
		UserID:        *user,
		Role:          *role,
		Email:         *email,
		EmailVerified: *verified,
	}, *ttl)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", exp.Format(time.RFC3339))
}
