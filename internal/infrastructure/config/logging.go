package config

import (
	log "github.com/sirupsen/logrus"
)

// ConfigureLogging applies the configured level to the global logrus logger.
func ConfigureLogging(cfg Log) error {
	if cfg.Level == "" {
		log.SetLevel(log.InfoLevel)
		return nil
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}
