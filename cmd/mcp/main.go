// Package main runs the training progress MCP server over stdio (for local
// Cursor/Claude use). The same MCP server is also mounted on the main backend
// at /mcp over HTTP, so you can use either: stdio (this cmd) or the backend
// URL (no extra deploy).
package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/olivermegias/trainingtop/internal/config"
	"github.com/olivermegias/trainingtop/internal/db"
	"github.com/olivermegias/trainingtop/internal/training/catalog"
	trainingmcp "github.com/olivermegias/trainingtop/internal/training/mcp"
	"github.com/olivermegias/trainingtop/internal/training/progress"
	"github.com/olivermegias/trainingtop/internal/training/routines"
	"github.com/olivermegias/trainingtop/internal/training/sessions"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	analyzer := progress.NewAnalyzer(
		sessions.NewRepo(dbPool),
		routines.NewRepo(dbPool),
		catalog.NewClient(cfg.ExerciseCatalogBaseURL, http.DefaultClient),
	)
	server := trainingmcp.NewServer(analyzer)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
