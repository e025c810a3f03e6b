// Package export writes the landing page as a self-contained static site
package export

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
)

// Site is what gets written to the output directory
type Site struct {
	Page      templ.Component
	ThemeCSS  string
	StaticDir string // copied to <out>/static when set
}

// Write renders the site into outDir, creating it when missing.
// An existing static copy in outDir is replaced.
func Write(ctx context.Context, outDir string, site Site) error {
	if site.Page == nil {
		return fmt.Errorf("export: no page to render")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", outDir, err)
	}

	var page bytes.Buffer
	if err := site.Page.Render(ctx, &page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), page.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write index.html: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "theme.css"), []byte(site.ThemeCSS), 0644); err != nil {
		return fmt.Errorf("failed to write theme.css: %w", err)
	}

	if site.StaticDir == "" {
		return nil
	}
	if _, err := os.Stat(site.StaticDir); err != nil {
		log.Printf("[WARNING] Static dir %s not found, skipping copy: %v", site.StaticDir, err)
		return nil
	}

	dest := filepath.Join(outDir, "static")
	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("failed to clear %s: %w", dest, err)
	}
	if err := os.CopyFS(dest, os.DirFS(site.StaticDir)); err != nil {
		return fmt.Errorf("failed to copy static files: %w", err)
	}
	return nil
}
