package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Generates bcrypt hashes for seeding local test accounts.
func main() {
	passwords := map[string]string{
		"admin":     "admin-dev-1234",
		"candidate": "candidate-dev-1234",
		"recruiter": "recruiter-dev-1234",
	}

	for user, pass := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), 10)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("User: %s\nPassword: %s\nHash: %s\n\n", user, pass, string(hash))
	}
}
