package cmd

import (
	"go.uber.org/zap"

	"droscher.com/Umami/configs"
	"droscher.com/Umami/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".Umami.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(c *Context) error {
	logger := newLogger(false, c.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	if conf.Preferences.Store != configs.PostgresStore {
		logger.Warn("nothing to migrate", zap.String("store", conf.Preferences.Store))

		return nil
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	return repo.Migrate()
}
