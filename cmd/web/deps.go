package main

import (
	"github.com/rs/zerolog/log"

	"bankfront/internal/infrastructure/bankapi"
	"bankfront/internal/interfaces/web"
	"bankfront/internal/shared/config"
	"bankfront/internal/shared/i18n"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	API     *bankapi.Client
	Catalog *i18n.Catalog
	Pages   *web.Handler
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	tr, err := i18n.New(cfg.UI.Locale)
	if err != nil {
		return nil, err
	}

	api := bankapi.NewClient(cfg.API.BaseURL, bankapi.WithTimeout(cfg.API.Timeout))
	log.Info().Str("base_url", cfg.API.BaseURL).Str("locale", tr.Locale()).Msg("back-office API client configured")

	pages, err := web.NewHandler(api, tr)
	if err != nil {
		return nil, err
	}

	return &Dependencies{API: api, Catalog: tr, Pages: pages}, nil
}
