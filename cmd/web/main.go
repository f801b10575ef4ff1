package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/JSilva6/PokerDuel/internal/config"
	"github.com/JSilva6/PokerDuel/internal/web"
)

func main() {
	cfg, err := config.LoadDotEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	rulesFile := flag.String("rules", cfg.RulesPath, "path to a rules YAML file")
	seed := flag.Int64("seed", cfg.Seed, "seed for games that do not pass one (0 for random)")
	flag.Parse()
	cfg.Addr = *addr
	cfg.RulesPath = *rulesFile
	cfg.Seed = *seed

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rules, err := cfg.Rules()
	if err != nil {
		logger.Fatal("load rules", zap.Error(err))
	}

	srv := web.NewServer(rules, cfg.Seed, logger)
	logger.Info("pokerduel web API listening", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(cfg.Addr); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}
