package service

import (
	"context"

	"github.com/pdv-survey-api/internal/locator"
	"github.com/pdv-survey-api/internal/models"
)

type altaService struct {
	base
	locks *keyedLock
}

// lock key for ID allocation; one tab means one key
const altaLockKey = "alta-pdv"

// NextID previews the ID the next registration will get. The read happens
// under the allocation lock so a concurrent Create cannot interleave.
func (s *altaService) NextID(ctx context.Context, token string) (int, error) {
	unlock := s.locks.Lock(altaLockKey)
	defer unlock()
	return s.nextIDLocked(ctx, token)
}

// Create allocates an ID and appends the new PDV row. Allocation and append
// hold the same lock, so two concurrent registrations in this process can
// never share an ID. max+1 against a tab edited by other processes remains
// racy; that limitation is inherited from the datastore.
func (s *altaService) Create(ctx context.Context, token string, id *models.Identity, input *models.PDVInput) (int, error) {
	unlock := s.locks.Lock(altaLockKey)
	defer unlock()

	newID, err := s.nextIDLocked(ctx, token)
	if err != nil {
		return 0, err
	}

	row := input.Row(newID, id.Email)
	if err := s.repos(token).Rows.AppendPDV(ctx, row); err != nil {
		return 0, err
	}

	s.log.Info().
		Int("pdv_id", newID).
		Str("email", id.Email).
		Msg("PDV created")

	return newID, nil
}

func (s *altaService) nextIDLocked(ctx context.Context, token string) (int, error) {
	repos := s.repos(token)
	if err := repos.Rows.EnsureAltaTab(ctx); err != nil {
		return 0, err
	}
	return locator.NextID(ctx, s.stores.ForToken(token), s.cfg.Sheets.AltaPDVSheet, s.cfg.Sheets.AltaStartingID)
}
