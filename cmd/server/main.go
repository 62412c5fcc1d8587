package main

import (
	"log"

	"gaming-hub/internal/app"
)

func main() {
	server := app.NewServer()
	log.Fatal(server.Start())
}
