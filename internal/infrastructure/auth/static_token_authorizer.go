package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"villaweb/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrMissingAdminToken = errors.New("missing ADMIN_API_TOKEN")

// StaticTokenAuthorizer grants admin access to callers presenting the shared
// token from ADMIN_API_TOKEN. One operator token is enough for the current
// admin surface; per-user accounts can replace this behind IAdminAuthorizer.
type StaticTokenAuthorizer struct {
	token string
}

var _ interfaces.IAdminAuthorizer = (*StaticTokenAuthorizer)(nil)

func NewStaticTokenAuthorizer(token string) (*StaticTokenAuthorizer, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		log.Printf("[admin][auth] missing ADMIN_API_TOKEN")
		return nil, ErrMissingAdminToken
	}
	return &StaticTokenAuthorizer{token: token}, nil
}

func (a *StaticTokenAuthorizer) IsAdmin(_ context.Context, credential string) (bool, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(a.token), []byte(credential)) == 1, nil
}
