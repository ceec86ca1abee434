package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/admin"
	"github.com/joho/godotenv"
)

// Prints a bcrypt hash of ADMIN_TOKEN (or the first argument) for use as
// ADMIN_TOKEN_HASH.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if len(os.Args) > 1 {
		adminToken = os.Args[1]
	}
	if adminToken == "" {
		log.Fatal("Usage: hash-admin-token <token> (or set ADMIN_TOKEN)")
	}

	hashed, err := admin.HashAdminToken(adminToken)
	if err != nil {
		log.Fatalf("Failed to hash admin token: %v", err)
	}

	log.Printf("✓ Admin token hashed. Set this in the server environment:")
	fmt.Printf("ADMIN_TOKEN_HASH=%s\n", hashed)
}
