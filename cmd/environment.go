package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/Umami/configs"
	"droscher.com/Umami/pkg/i18n"
	"droscher.com/Umami/pkg/integrations"
	"droscher.com/Umami/pkg/preferences"
	"droscher.com/Umami/pkg/repository"
)

// environment holds the collaborators shared by serve and the one-shot commands.
type environment struct {
	conf        *configs.Config
	catalog     integrations.Catalog
	preferences *preferences.Store
	translator  *i18n.Translator
	closers     []func()
}

func newLogger(production bool, debug bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true
	logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

	if production {
		logConfig = zap.NewProductionConfig()
	}

	if debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := logConfig.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func newEnvironment(ctx context.Context, configFile string, logger *zap.Logger) (*environment, error) {
	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, err
	}

	env := &environment{conf: conf}

	storage, err := env.openStorage(logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return nil, err
	}

	env.translator, err = i18n.NewTranslator()
	if err != nil {
		env.Close()

		return nil, err
	}

	env.catalog = integrations.GetIntegration(conf.Integrations.Catalog, conf, logger)
	if env.catalog == nil {
		env.Close()

		return nil, fmt.Errorf("%w: unknown catalog integration %q", configs.ErrConfiguration, conf.Integrations.Catalog)
	}

	env.preferences = preferences.New(ctx, storage, logger)
	env.closers = append(env.closers, env.preferences.Close)

	return env, nil
}

func (e *environment) openStorage(logger *zap.Logger) (preferences.Storage, error) {
	if e.conf.Preferences.Store == configs.MemoryStore {
		return repository.NewMemoryRepository(), nil
	}

	repo, err := repository.Open(e.conf, logger)
	if err != nil {
		return nil, err
	}

	e.closers = append(e.closers, repo.Close)

	return repo, nil
}

// Close releases resources in reverse order of acquisition.
func (e *environment) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}

	e.closers = nil
}
