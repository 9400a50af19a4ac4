package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/insightify-api/internal/config"
	"github.com/vfg2006/insightify-api/internal/usecases/enriching"
)

// Gera a planilha enriquecida consumida pela API a partir da planilha original.
// Deve ser executado sempre que o arquivo de origem for atualizado.
func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	service := enriching.NewService(cfg)

	start := time.Now()
	if err := service.Run(); err != nil {
		logrus.WithError(err).Fatal("Erro ao enriquecer o dataset")
	}

	logrus.WithFields(logrus.Fields{
		"source":   cfg.Dataset.SourcePath,
		"enriched": cfg.Dataset.EnrichedPath,
		"duration": time.Since(start).String(),
	}).Info("Dataset enriquecido com sucesso")
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
