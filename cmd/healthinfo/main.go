package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/app"
	"github.com/aussiebroadwan/healthinfo/pkg/cryptox"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		os.Exit(hashPassword(os.Args[2:]))
	}

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

// hashPassword prints an argon2id hash suitable for HEALTH_API_PASSWORD_HASH.
func hashPassword(args []string) int {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintln(os.Stderr, "usage: healthinfo hash-password <password>")
		return 2
	}

	hash, err := cryptox.HashPassword(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		return 1
	}

	fmt.Println(hash)
	return 0
}
