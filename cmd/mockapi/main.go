package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"femee-arena-client/internal/config"
	"femee-arena-client/internal/mockapi"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting FEMEE mock backend...")

	cfg := config.MustLoad()

	secret := os.Getenv("MOCKAPI_JWT_SECRET")
	if secret == "" {
		secret = "femee-dev-secret"
	}

	server := mockapi.New(secret)

	srv := &http.Server{
		Addr:         cfg.Mock.Address(),
		Handler:      server.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Mock backend listening on %s", cfg.Mock.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down mock backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Mock backend stopped")
}
