package main

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// hash-token generates a bcrypt hash for the panel access token. Put the
// output in PANEL_TOKEN so the plain secret never appears in the
// environment or process listings.
func main() {
	fmt.Print("Enter panel token: ")
	byteToken, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading token")
		os.Exit(1)
	}
	fmt.Println()

	token := string(byteToken)
	if len(token) < 8 {
		fmt.Println("Error: token must be at least 8 characters")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("Error hashing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("PANEL_TOKEN value:")
	fmt.Println(string(hash))
}
