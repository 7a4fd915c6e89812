package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Wen-Qualtu/kt-datacards/internal/cli"
	cfgpkg "github.com/Wen-Qualtu/kt-datacards/internal/config"
	logpkg "github.com/Wen-Qualtu/kt-datacards/internal/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := cfgpkg.FromEnv()

	_ = logpkg.Init(logpkg.Options{
		Level:        cfg.Logging.Level,
		Pretty:       cfg.Logging.Pretty,
		File:         cfg.Logging.File,
		MaxSizeMB:    cfg.Logging.MaxSizeMB,
		MaxBackups:   cfg.Logging.MaxBackups,
		MaxAgeDays:   cfg.Logging.MaxAgeDays,
		Compress:     cfg.Logging.Compress,
		SendToAxiom:  cfg.Axiom.Send && cfg.Axiom.APIKey != "",
		AxiomAPIKey:  cfg.Axiom.APIKey,
		AxiomOrgID:   cfg.Axiom.OrgID,
		AxiomDataset: cfg.Axiom.Dataset,
		AxiomFlush:   cfg.Axiom.FlushInterval,
	})
	defer logpkg.Close()

	if err := cli.Execute(cfg); err != nil {
		logpkg.Close()
		os.Exit(1)
	}
}
