package main

import (
	"log"

	"rtp_casino/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
