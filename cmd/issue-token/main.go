// Command issue-token prints a signed access token for a user id. It is
// meant for local development and service-to-service calls.
//
// Usage:
//
//	issue-token --user=42
//
// Reads the same configuration as the server (CONFIG_PATH or environment).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/topicpolicy-backend/internal/auth"
	"github.com/heartmarshall/topicpolicy-backend/internal/config"
)

func main() {
	userID := flag.Int64("user", 0, "id of the user the token is issued for")
	flag.Parse()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --user=42")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	m := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := m.GenerateAccessToken(*userID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
