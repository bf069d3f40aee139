package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"lms/config"
	"lms/database"
	"lms/server"
	"lms/store"
	"lms/utils"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	app := server.New(db)

	digest := utils.StartDigestScheduler(
		store.NewUserStore(db),
		store.NewCourseStore(db),
		store.NewEnrollmentStore(db),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	digest.Stop()
	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
