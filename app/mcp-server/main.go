package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/yoockh/careercounsel/config"
	"github.com/yoockh/careercounsel/internal/logger"
	"github.com/yoockh/careercounsel/internal/repositories/memory"
	"github.com/yoockh/careercounsel/internal/repositories/sqldb"
	"github.com/yoockh/careercounsel/internal/seed"
	"github.com/yoockh/careercounsel/internal/services"
)

// stdout carries the MCP protocol, so everything else logs to stderr.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	l := logger.NewStderr(cfg.LogLevel)

	db, err := config.OpenDatabase(cfg.Database)
	if err != nil {
		l.WithError(err).Fatal("database open failed")
	}
	repo := sqldb.NewCareerRepo(db, l)
	if err := repo.Initialize(context.Background(), seed.Embedded); err != nil {
		l.WithError(err).Fatal("career store initialization failed")
	}

	careers := services.NewCareerService(repo, nil, 0, l)
	advisor := services.NewAdvisorService(services.AdvisorDeps{
		Sessions: services.NewSessionService(memory.NewSessionRepo(0), nil, nil),
		Careers:  careers,
		Log:      l,
	})

	s := server.NewMCPServer("careercounsel", "1.0.0")
	registerTools(s, &toolset{careers: careers, advisor: advisor})

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
