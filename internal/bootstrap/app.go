// Package bootstrap assembles the application: configuration in, wired gin
// engine out. Construction lives here so cmd/api and tests share one path.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-annex/internal/artifacts"
	googleauth "resume-annex/internal/auth"
	"resume-annex/internal/enhance"
	"resume-annex/internal/intake"
	"resume-annex/internal/llm"
	openai "resume-annex/internal/llm/openai"
	"resume-annex/internal/services/health"
	"resume-annex/internal/shared/config"
	"resume-annex/internal/shared/server"
	"resume-annex/internal/shared/storage/db"
)

const serviceName = "Resume Annex AI"

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Generator       llm.Generator
	ArtifactRepo    artifacts.Repo
	ArtifactService *artifacts.Service
	IntakeService   *intake.Service
	EnhanceService  *enhance.Service
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares shared dependencies and the wired router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gen, err := buildGenerator(cfg)
	if err != nil {
		return nil, err
	}

	var artifactRepo artifacts.Repo
	if sqlDB != nil {
		artifactRepo = &artifacts.PGRepo{DB: sqlDB}
	} else {
		artifactRepo = artifacts.NewMemoryRepo()
	}
	artifactSvc := artifacts.NewService(artifactRepo)

	intakeSvc := &intake.Service{
		Builder:  intake.ContextBuilder{CharBudget: cfg.ExtractCharBudget},
		Policy:   intake.Policy{QuestionBudget: cfg.QuestionBudget, TerminationTokens: cfg.TerminationTokens},
		Driver:   intake.Driver{Gen: gen},
		Synth:    intake.Synthesizer{Gen: gen},
		Closings: intake.NewClosingMessages(cfg.PlanMessages),
		Recorder: artifacts.Recorder{Svc: artifactSvc},
	}

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		Generator:       gen,
		ArtifactRepo:    artifactRepo,
		ArtifactService: artifactSvc,
		IntakeService:   intakeSvc,
		EnhanceService:  enhance.NewService(gen),
		GoogleAuth: googleauth.NewGoogleService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
		),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Health:          health.NewService(serviceName, cfg.LLMModel),
		IntakeHandler:   intake.NewHandler(intakeSvc),
		EnhanceHandler:  enhance.NewHandler(app.EnhanceService),
		ArtifactHandler: artifacts.NewHandler(artifactSvc),
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

// buildGenerator returns the configured provider client, or the unconfigured
// stub when no credential is present. The server still starts; generation
// endpoints report the missing credential per request.
func buildGenerator(cfg config.Config) (llm.Generator, error) {
	if cfg.LLMProvider != "openai" {
		return llm.Unconfigured{}, nil
	}
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		log.Printf("bootstrap: OPENAI_API_KEY empty; generation endpoints disabled")
		return llm.Unconfigured{}, nil
	}
	client, err := openai.NewClient(apiKey, cfg.LLMModel)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
