package http

import (
	"time"

	"github.com/scies/greenchem/internal/config"
	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/service"
)

type Handler struct {
	services *service.Services

	// cookieName and cookieExpiry describe the browser session cookie set on
	// login and cleared on logout.
	cookieName   string
	cookieExpiry time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Session, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		cookieName:   cfg.CookieName,
		cookieExpiry: cfg.CookieExpiry(),
		logger:       logger,
	}
}
