// Command nps-explorer browses National Park Service sites by state and lists
// places near a chosen site.
package main

import (
	"github.com/joho/godotenv"
	"github.com/pfrederiksen/nps-explorer/internal/cli"
)

func main() {
	// Load .env file if it exists (MAPQUEST_API_KEY and NPS_* settings)
	_ = godotenv.Load()

	cli.Execute()
}
