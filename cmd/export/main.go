package main

import (
	"context"
	"flag"
	"log"

	"cityhelper_landing_go/config"
	"cityhelper_landing_go/handlers"
	"cityhelper_landing_go/middleware"
	"cityhelper_landing_go/services/export"
	"cityhelper_landing_go/services/theme"
	"cityhelper_landing_go/templates/pages"
)

func main() {
	out := flag.String("out", "dist", "output directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	th, err := theme.Load(cfg.ThemeFile)
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}

	css := th.CSS()
	middleware.SetThemeVersion(css)
	middleware.InitAssetVersions(cfg.StaticDir)

	site := export.Site{
		Page:      pages.Landing(pages.NewLandingViewModel(handlers.LandingSEO(cfg, th))),
		ThemeCSS:  css,
		StaticDir: cfg.StaticDir,
	}
	if err := export.Write(context.Background(), *out, site); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.Printf("[INFO] Static site written to %s", *out)
}
