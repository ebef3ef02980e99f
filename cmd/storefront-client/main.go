package main

import (
	"context"
	"fmt"
	"os"

	"gitlab.com/babycash/clients/storefront-client/internal/bootstrap"
	"gitlab.com/babycash/clients/storefront-client/pkg/contextkeys"
)

func main() {
	// Root context for the application lifecycle.
	ctx := context.Background()
	ctx = context.WithValue(ctx, contextkeys.RequestIDKey, "app-main")

	// Initialize the application using the Wire-generated injector.
	app, cleanup, err := bootstrap.InitializeApp(ctx)
	if err != nil {
		// A very basic log if bootstrap fails, as the main logger isn't available.
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := app.Run(ctx); err != nil {
		// app.Run uses its injected logger for errors; this is a fallback print.
		fmt.Printf("Application run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Application exited gracefully.")
}
