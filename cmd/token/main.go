// Command token prints a bearer token accepted by the write routes of the
// server when JWT_SECRET is set.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wichananm65/social-graph-backend/internal/auth"
	"github.com/wichananm65/social-graph-backend/internal/config"
)

func main() {
	subject := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 72*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if !cfg.AuthEnabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set; the server runs without auth")
		os.Exit(1)
	}

	token, err := auth.IssueToken(cfg.JWTSecret, *subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
