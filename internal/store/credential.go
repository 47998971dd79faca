package store

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
)

type credentialRepo struct {
	client *ent.Client
}

func (r *credentialRepo) Save(ctx context.Context, cred StoredCredential) error {
	// Single-row table: replace wholesale rather than update in place.
	if _, err := r.client.Credential.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear old credential: %w", err)
	}

	builder := r.client.Credential.Create().
		SetToken(cred.Token).
		SetUserID(cred.UserID).
		SetEmail(cred.Email)
	if !cred.SavedAt.IsZero() {
		builder = builder.SetSavedAt(cred.SavedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (r *credentialRepo) Get(ctx context.Context) (*StoredCredential, error) {
	c, err := r.client.Credential.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query credential: %w", err)
	}
	return &StoredCredential{
		Token:   c.Token,
		UserID:  c.UserID,
		Email:   c.Email,
		SavedAt: c.SavedAt,
	}, nil
}

func (r *credentialRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Credential.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// TokenProvider adapts a CredentialRepo to the api client's token source.
type TokenProvider struct {
	Creds CredentialRepo
}

// Token returns the stored bearer token, or "" when signed out.
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	cred, err := p.Creds.Get(ctx)
	if err != nil {
		return "", err
	}
	if cred == nil {
		return "", nil
	}
	return cred.Token, nil
}
