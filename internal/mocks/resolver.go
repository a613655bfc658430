package mocks

import (
	"context"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/auth"
	"github.com/pdv-survey-api/internal/models"
)

// Resolver is a stub auth.Resolver returning a fixed identity or error.
type Resolver struct {
	Identity *models.Identity
	Err      error

	// Tokens records every token passed to Resolve.
	Tokens []string
}

func (r *Resolver) Resolve(ctx context.Context, token string) (*models.Identity, error) {
	r.Tokens = append(r.Tokens, token)
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Identity == nil {
		return nil, apperr.New(apperr.Unauthenticated, auth.MsgTokenInvalid)
	}
	return r.Identity, nil
}
