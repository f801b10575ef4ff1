package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/JSilva6/PokerDuel/internal/config"
	pdmcp "github.com/JSilva6/PokerDuel/internal/mcp"
)

func main() {
	cfg, err := config.LoadDotEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rulesFile := flag.String("rules", cfg.RulesPath, "path to a rules YAML file")
	seed := flag.Int64("seed", cfg.Seed, "default seed for new_game (0 for random)")
	flag.Parse()
	cfg.RulesPath = *rulesFile

	// zap writes to stderr; stdout is the MCP stream.
	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	pdmcp.SetLogger(logger)

	rules, err := cfg.Rules()
	if err != nil {
		logger.Fatal("load rules", zap.Error(err))
	}
	pdmcp.SetRules(rules)
	pdmcp.SetSeed(*seed)

	s := server.NewMCPServer("pokerduel", "1.0.0")
	pdmcp.RegisterTools(s)

	logger.Info("pokerduel MCP server on stdio", zap.Int64("seed", *seed))
	if err := server.ServeStdio(s); err != nil {
		logger.Fatal("serve", zap.Error(err))
	}
}
