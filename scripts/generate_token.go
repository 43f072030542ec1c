package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/internal/middleware"
)

// Signs a development token with JWT_SECRET_KEY.
//
//	go run ./scripts -owner user_2abc -exp 48
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	ownerID := flag.String("owner", "", "Owner id, stored as the sub claim")
	expirationHours := flag.Int("exp", 0, "Token expiration in hours (defaults to JWT_EXPIRATION_HOURS)")
	flag.Parse()

	if *ownerID == "" {
		log.Fatal("Owner ID is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}
	if *expirationHours > 0 {
		cfg.JWTExpirationHours = *expirationHours
	}

	tokenString, err := middleware.NewAuthMiddleware(cfg).GenerateToken(*ownerID)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}
