package usecase

import (
	"context"
	"time"

	"swiss-virtual-airline/internal/domain/user"
	"swiss-virtual-airline/internal/pkg/clock"
)

// IdentityProvider is the external collaborator that turns an authorization
// code into a verified identity.
type IdentityProvider interface {
	Exchange(ctx context.Context, code, redirectURI string) (user.Identity, error)
}

type SessionStore interface {
	Issue(identity user.Identity, now time.Time) (string, error)
	Resolve(token string, now time.Time) (user.Identity, error)
	Revoke(token string)
}

type AuthUseCase interface {
	LoginWithDiscord(ctx context.Context, code, redirectURI string) (string, user.Identity, error)
	ResolveSession(token string) (user.Identity, error)
	Logout(token string)
}

type authUseCaseImpl struct {
	provider IdentityProvider
	sessions SessionStore
	clock    clock.Clock
}

func NewAuthUseCase(provider IdentityProvider, sessions SessionStore, clock clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		provider: provider,
		sessions: sessions,
		clock:    clock,
	}
}

// LoginWithDiscord exchanges the code upstream (no ledger lock held) and
// issues an opaque session token for the returned identity.
func (a *authUseCaseImpl) LoginWithDiscord(ctx context.Context, code, redirectURI string) (string, user.Identity, error) {
	identity, err := a.provider.Exchange(ctx, code, redirectURI)
	if err != nil {
		return "", user.Identity{}, err
	}

	token, err := a.sessions.Issue(identity, a.clock.Now())
	if err != nil {
		return "", user.Identity{}, err
	}
	return token, identity, nil
}

func (a *authUseCaseImpl) ResolveSession(token string) (user.Identity, error) {
	return a.sessions.Resolve(token, a.clock.Now())
}

func (a *authUseCaseImpl) Logout(token string) {
	a.sessions.Revoke(token)
}
