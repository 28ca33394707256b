// Command server starts the flashdeck API server.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables;
// see internal/config for the full list. The server shuts down gracefully
// on SIGINT or SIGTERM.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/flashdeck-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
