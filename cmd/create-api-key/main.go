package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	key := "lgpt_" + hex.EncodeToString(raw)

	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash key: %v", err)
	}

	fmt.Printf("✅ API key created successfully!\n")
	fmt.Printf("   Key (send as X-API-Key, store it now): %s\n", key)
	fmt.Printf("   Server setting:\n")
	fmt.Printf("   LEGALGPT_SERVER_API_KEY_HASH='%s'\n", hashed)
}
