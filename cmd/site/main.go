package main

import (
	"log"

	"github.com/thisisamank/thisisamank.in/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("site failed to start: %v", err)
	}
	if err := a.Run(); err != nil {
		log.Fatalf("site failed: %v", err)
	}
}
