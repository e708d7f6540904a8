package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/ShuitaMandhan12/PortfolioSense/adapters/persistence"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/pkg/logger"
)

func main() {
	fmt.Println("adding demo portfolio into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	appLogger := logger.NewZapLogger("development")
	repo := persistence.NewPostgresPortfolioRepo(pool, appLogger)

	profile := portfolio.NewProfile()
	profile.PersonalInfo.FullName = "Demo User"
	profile.PersonalInfo.ProfessionalTitle = "Full-Stack Developer"
	profile.Skills = []string{"Go", "React", "PostgreSQL"}
	profile.Projects = []portfolio.Project{
		{Title: "PortfolioSense", Description: "AI-assisted portfolio generator"},
	}

	now := time.Now().UTC()
	demo := &portfolio.Portfolio{
		Profile: *profile,
		GeneratedContent: portfolio.GeneratedContent{
			Bio:     "Demo User is a skilled Go developer with experience in React, PostgreSQL.",
			Tagline: "Professional Go developer",
		},
		UniqueID:  portfolio.NewUniqueID(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Save(context.Background(), demo); err != nil {
		log.Fatalf("cannot seed portfolio: %v", err)
	}

	fmt.Printf("seeded demo portfolio with unique_id %s\n", demo.UniqueID)
}
