package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/config"
)

// geocodeService proxies address lookups to Nominatim. The proxy exists so
// mobile browsers don't hit the geocoder cross-origin; the server forwards
// the query scoped to the survey area and returns the raw result list.
type geocodeService struct {
	cfg    *config.GeocodeConfig
	client *http.Client
	log    zerolog.Logger
}

func newGeocodeService(cfg *config.GeocodeConfig, log zerolog.Logger) *geocodeService {
	return &geocodeService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.With().Str("component", "geocode").Logger(),
	}
}

// Search looks up an address and returns the geocoder's result list.
// Upstream failures are reported as such, never as generic server errors.
func (s *geocodeService) Search(ctx context.Context, query string) (interface{}, error) {
	scoped := query
	if s.cfg.Suffix != "" {
		scoped = fmt.Sprintf("%s, %s", query, s.cfg.Suffix)
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", scoped)
	params.Set("limit", "1")
	params.Set("countrycodes", "ar")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Error en servicio de geocodificación", err)
	}
	req.Header.Set("User-Agent", "RelevamientoPDV/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Error en servicio de geocodificación", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Error().Int("status", resp.StatusCode).Msg("Geocoder returned non-OK status")
		return nil, apperr.New(apperr.Upstream, "Error en servicio de geocodificación")
	}

	var results interface{}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "Error en servicio de geocodificación", err)
	}
	return results, nil
}
