package handler

import (
	"net/http"
	"armada/config"
	"armada/di"
	"armada/shared/logger"

	"github.com/rs/zerolog/log"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service, err := di.InitializeService()
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize service")

		http.Error(w, "service unavailable", http.StatusServiceUnavailable)

		return
	}

	service.Handler().ServeHTTP(w, r)
}
