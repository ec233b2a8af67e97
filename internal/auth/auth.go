package auth

import (
	"context"
	"fmt"

	ierr "go-firestore-inventory/internal/errors"

	"github.com/rs/zerolog/log"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Gateway wraps the authentication provider. Login and Register are
// one-shot network calls; CurrentUserID and IsLoggedIn read the local
// session and never touch the network.
type Gateway interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string) error
	Logout()
	CurrentUserID() string
	IsLoggedIn() bool
}

type Authenticator struct {
	relyingParty *identitytoolkit.RelyingpartyService
	session      *SessionStore
}

var _ Gateway = (*Authenticator)(nil)

// New builds an Authenticator against the Identity Toolkit backend using the
// project's web API key.
func New(ctx context.Context, apiKey string) (*Authenticator, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create identitytoolkit service: %w", err)
	}

	return &Authenticator{
		relyingParty: svc.Relyingparty,
		session:      NewSessionStore(),
	}, nil
}

func (a *Authenticator) Login(ctx context.Context, email, password string) error {

	resp, err := a.relyingParty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()

	if err != nil {
		log.Debug().Err(err).Msg("auth: sign-in rejected")
		return fmt.Errorf("%w: %v", ierr.RemoteFailure, err)
	}

	a.session.Set(Session{UserID: resp.LocalId, Email: resp.Email, IDToken: resp.IdToken})
	return nil
}

func (a *Authenticator) Register(ctx context.Context, email, password string) error {

	resp, err := a.relyingParty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()

	if err != nil {
		log.Debug().Err(err).Msg("auth: sign-up rejected")
		return fmt.Errorf("%w: %v", ierr.RemoteFailure, err)
	}

	a.session.Set(Session{UserID: resp.LocalId, Email: resp.Email, IDToken: resp.IdToken})
	return nil
}

// Logout clears the local session. Calling it without an active session is
// a no-op.
func (a *Authenticator) Logout() {
	a.session.Clear()
}

func (a *Authenticator) CurrentUserID() string {
	return a.session.UserID()
}

func (a *Authenticator) IsLoggedIn() bool {
	return a.session.UserID() != ""
}
