// Command token mints an access token for local development.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"careadmin/config"
	"careadmin/internal/domain/constants"
	"careadmin/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func main() {
	subject := flag.String("sub", "", "User ID to put in the token (random when empty)")
	roles := flag.String("roles", "admin", "Comma separated roles")
	flag.Parse()

	token, err := mint(*subject, *roles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}

func mint(subject, roles string) (string, error) {
	cfg, err := config.New()
	if err != nil {
		return "", err
	}
	if cfg.Env.Env != constants.EnvDevelop {
		return "", errors.Errorf("refusing to mint tokens in %q environment", cfg.Env.Env)
	}

	userID := uuid.New()
	if subject != "" {
		if userID, err = uuid.Parse(subject); err != nil {
			return "", errors.Wrap(err, "sub must be a UUID")
		}
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", err
	}

	return tokenSvc.GenerateAccessToken(userID, strings.Split(roles, ","))
}
