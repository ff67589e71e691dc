// Command admin-token mints a development access token so protected
// endpoints can be exercised without going through the login flow.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/workhive/api/pkg/token"
)

func main() {
	secret := flag.String("secret", os.Getenv("JWT_ACCESS_SECRET"), "Access token signing secret")
	userID := flag.String("user", "user:admin-dev", "User ID for the token")
	name := flag.String("name", "Admin", "Display name for the token")
	email := flag.String("email", "admin@gmail.com", "Email for the token")
	role := flag.String("role", "ADMIN", "Role name for the token")
	ttl := flag.Duration("ttl", 7*24*time.Hour, "Token lifetime")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "Error: a signing secret is required (-secret or JWT_ACCESS_SECRET)")
		os.Exit(1)
	}

	// The refresh side is unused here; the issuer just needs a distinct
	// second secret to construct.
	issuer, err := token.NewIssuer(token.Config{
		AccessSecret:  *secret,
		AccessTTL:     *ttl,
		RefreshSecret: *secret + "-refresh",
		RefreshTTL:    *ttl,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating token issuer: %v\n", err)
		os.Exit(1)
	}

	signed, err := issuer.SignAccess(*userID, *name, *email, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"access_token": signed,
			"token_type":   "Bearer",
			"expires_in":   int(ttl.Seconds()),
			"user_id":      *userID,
			"email":        *email,
			"role":         *role,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	fmt.Println(signed)
}
