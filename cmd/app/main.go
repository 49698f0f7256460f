package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ProjectCaddie/internal/api/caddie"
	"ProjectCaddie/internal/config"
	"ProjectCaddie/internal/entity"
	"ProjectCaddie/pkg/log"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	checker := caddie.NewStaticPrerequisiteChecker(map[entity.Prerequisite]bool{
		entity.PrerequisiteRoundActive:    os.Getenv("DEMO_ROUND_ACTIVE") == "true",
		entity.PrerequisiteBagConfigured:  os.Getenv("DEMO_BAG_CONFIGURED") == "true",
		entity.PrerequisiteCourseSelected: os.Getenv("DEMO_COURSE_SELECTED") == "true",
		entity.PrerequisiteRecoveryData:   os.Getenv("DEMO_RECOVERY_DATA") == "true",
	})

	server, err := config.NewServer(
		config.WithLogger(logger),
		config.WithValidator(config.NewValidator()),
		config.WithUtils(),
		config.WithNormalizer(),
		config.WithIntentModel(),
		config.WithPrerequisiteChecker(checker),
		config.WithShotRepository(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterServices()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutting down...")
		cancel()
		os.Exit(0)
	}()

	if err := server.Run(ctx); err != nil {
		logger.Fatalf("REPL error: %v", err)
	}
}
