package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Static assets referenced by the landing page, relative to the static dir
const (
	StyleAsset   = "css/style.css"
	RevealAsset  = "js/reveal.js"
	FaviconAsset = "images/favicon.svg"
	// Optional; social image tags are only emitted when it exists
	OGImageAsset = "images/og-image.png"
)

var (
	assetVersions     = make(map[string]string)
	themeVersion      string
	assetVersionsOnce sync.Once
	versionsMu        sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		versions := make(map[string]string)
		for _, asset := range []string{StyleAsset, RevealAsset, FaviconAsset, OGImageAsset} {
			path := filepath.Join(staticDir, asset)
			if _, err := os.Stat(path); err != nil {
				log.Printf("[INFO] Asset %s not present, skipping", asset)
				continue
			}
			if v := computeFileHash(path); v != "" {
				versions[asset] = v
			}
		}

		versionsMu.Lock()
		assetVersions = versions
		versionsMu.Unlock()
		log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
	})
}

// SetThemeVersion records the hash of the generated theme stylesheet
func SetThemeVersion(css string) {
	versionsMu.Lock()
	defer versionsMu.Unlock()
	themeVersion = ContentVersion(css)
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// ContentVersion returns the short content hash used in versioned URLs and ETags
func ContentVersion(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:8]
}

// GetAssetVersion returns the version hash for a static asset, "1" when unknown.
// ctx is unused; it keeps the signature in line with the other template helpers.
func GetAssetVersion(ctx context.Context, asset string) string {
	versionsMu.RLock()
	defer versionsMu.RUnlock()
	if v, ok := assetVersions[asset]; ok {
		return v
	}
	return "1"
}

// HasAsset reports whether InitAssetVersions found the asset on disk
func HasAsset(asset string) bool {
	versionsMu.RLock()
	defer versionsMu.RUnlock()
	_, ok := assetVersions[asset]
	return ok
}

// GetThemeVersion returns the theme stylesheet hash, "1" before SetThemeVersion
func GetThemeVersion(ctx context.Context) string {
	versionsMu.RLock()
	defer versionsMu.RUnlock()
	if themeVersion == "" {
		return "1"
	}
	return themeVersion
}
