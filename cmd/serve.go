package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/Umami/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".Umami.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(c *Context) error {
	logger := newLogger(true, c.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	env, err := newEnvironment(context.Background(), s.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	router := server.NewServer(env.catalog, env.preferences, env.translator, logger).Routes()

	address := fmt.Sprintf(":%d", env.conf.Server.Port)

	// Configure CORS first
	corsHandler := configureCORS(router, env.conf.Server.AllowedOrigins)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("serving", zap.String("address", address), zap.String("store", env.conf.Preferences.Store))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions, http.MethodHead},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"content-length",
			"content-type",
			"origin",
			"referer",
			"user-agent",
			"x-request-id",
		},
		ExposedHeaders:     []string{"x-request-id"},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(handler)
}
