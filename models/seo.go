package models

// SEO carries the document metadata rendered into the page head
type SEO struct {
	Title       string
	Description string
	Canonical   string
	OGImage     string
	OGType      string // website, article
	TwitterCard string // summary, summary_large_image
	ThemeColor  string
	Lang        string
	NoIndex     bool
}

// DefaultSEO returns SEO with the landing page defaults
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Lang:        "en",
	}
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithOGImage sets the Open Graph image
func (s *SEO) WithOGImage(imageURL string) *SEO {
	s.OGImage = imageURL
	return s
}

// WithThemeColor sets the browser UI color hint
func (s *SEO) WithThemeColor(color string) *SEO {
	s.ThemeColor = color
	return s
}

// WithNoIndex sets the noindex directive
func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	return s
}

// Robots returns the robots meta directive
func (s *SEO) Robots() string {
	if s.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow"
}
