package main

import (
	"flag"
	"log"
	"os"

	"cityhelper_landing_go/services/theme"
)

// Writes tailwind.config.js from the design tokens. The theme stylesheet is
// not written here: the server serves it at /theme.css and cmd/export writes its own copy.
func main() {
	themeFile := flag.String("theme", os.Getenv("THEME_FILE"), "JSON file merged over the default tokens")
	configOut := flag.String("config", "tailwind.config.js", "Tailwind config output path")
	flag.Parse()

	th, err := theme.Load(*themeFile)
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}

	tailwind, err := th.TailwindConfig()
	if err != nil {
		log.Fatalf("Failed to render Tailwind config: %v", err)
	}
	if err := os.WriteFile(*configOut, []byte(tailwind), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *configOut, err)
	}
	log.Printf("[INFO] Wrote %s", *configOut)
}
