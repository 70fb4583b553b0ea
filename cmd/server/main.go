package main

import (
	"github.com/joho/godotenv"

	"hrportal/internal/app/server"
)

func main() {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	server.Run()
}
