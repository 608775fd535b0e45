package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/zots0127/chatfs/internal/adapter/handler"
	"github.com/zots0127/chatfs/internal/infrastructure/archive"
	sqlite "github.com/zots0127/chatfs/internal/infrastructure/repository"
	"github.com/zots0127/chatfs/internal/usecase"
)

func main() {
	config := LoadConfig()

	repo, err := sqlite.NewSQLiteRepository(config.Storage.Database)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer repo.Close()

	var archiver usecase.ExportArchiver
	if config.Archive.Enabled {
		s3Archiver, err := archive.NewS3Archiver(archive.Config{
			Bucket:    config.Archive.Bucket,
			Prefix:    config.Archive.Prefix,
			Region:    config.Archive.Region,
			Endpoint:  config.Archive.Endpoint,
			AccessKey: config.Archive.AccessKey,
			SecretKey: config.Archive.SecretKey,
		})
		if err != nil {
			log.Fatal("Failed to initialize export archiver:", err)
		}
		archiver = s3Archiver
		log.Printf("Export archiving enabled (bucket %s)", config.Archive.Bucket)
	}

	resolver := usecase.NewResolver(repo)
	fs := usecase.NewFileSystemUseCase(repo, resolver, archiver)
	commands := handler.NewCommandHandler(fs, config.API.Key)

	router := gin.Default()
	commands.RegisterRoutes(router)

	log.Printf("Starting server on port %s", config.API.Port)
	if err := router.Run(":" + config.API.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
