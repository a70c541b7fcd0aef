// Command token mints an access token signed with the configured secret,
// for operators calling the admin endpoints.
//
// Usage: token -user <uuid> [-role admin] [-ttl 1h]
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tripmatch-backend/internal/auth"
	"github.com/heartmarshall/tripmatch-backend/internal/config"
	"github.com/heartmarshall/tripmatch-backend/pkg/ctxutil"
)

func main() {
	user := flag.String("user", "", "subject user ID (UUID)")
	role := flag.String("role", ctxutil.RoleAdmin, "role claim")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	userID, err := uuid.Parse(*user)
	if err != nil {
		log.Fatalf("-user: %v", err)
	}
	if *ttl <= 0 {
		log.Fatal("-ttl must be positive")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	token, err := auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.ClockSkew).Issue(userID, *role, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
