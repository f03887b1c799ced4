package main

import (
	"log"

	"slot_machine/internal/app"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		log.Fatalf("app stopped with error: %v", err)
	}
}
