package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GylleadheBodedono/SCI/internal/app"
)

func main() {
	a, err := app.New(context.Background())
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		a.Log.Error("Server stopped", "error", err)
		a.Close()
		os.Exit(1)
	}
}
