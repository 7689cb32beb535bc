package cmd

import (
	"github.com/dannywalker-afni-com/Wx/internal/config"
	"github.com/dannywalker-afni-com/Wx/internal/log"
	"github.com/dannywalker-afni-com/Wx/internal/wxapi"
)

// initClient resolves and validates configuration, then builds the
// API client every command shares. An unusable configuration (no
// token) ends the process before any file or network I/O happens.
func initClient() *wxapi.Client {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	return wxapi.New(cfg.BaseURL, cfg.Token, cfg.OrgID)
}
