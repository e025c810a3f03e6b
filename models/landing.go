package models

// IconID names a glyph symbolically; templates resolve it to concrete markup.
type IconID string

const (
	IconLocation  IconID = "location"
	IconAnalytics IconID = "analytics"
	IconCommunity IconID = "community"
	IconSecure    IconID = "secure"
)

// FeatureRecord is one card of the feature grid
type FeatureRecord struct {
	Icon        IconID `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StepRecord is one block of the "how it works" section.
// Number is the 1-based position shown in the badge.
type StepRecord struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FooterColumn is a heading with either a line of text or a list of plain items
type FooterColumn struct {
	Heading string   `json:"heading"`
	Text    string   `json:"text,omitempty"`
	Items   []string `json:"items,omitempty"`
}

const (
	ProductName = "CityHelper"
	HeroTagline = "Empowering citizens and city officials to create better, more responsive communities through innovative digital solutions."

	// CopyrightLine is a literal; the year is not derived from the clock.
	CopyrightLine = "© 2025 CityHelper. All rights reserved."
)

// Display order is meaningful for every list below.
var (
	features = []FeatureRecord{
		{Icon: IconLocation, Title: "Location Tracking", Description: "Real-time GPS tracking and mapping for all city issues"},
		{Icon: IconAnalytics, Title: "Data Analytics", Description: "Comprehensive insights and reporting on city maintenance"},
		{Icon: IconCommunity, Title: "Community Engagement", Description: "Connect citizens with local government effectively"},
		{Icon: IconSecure, Title: "Secure Platform", Description: "Enterprise-grade security for all your city data"},
	}

	steps = []StepRecord{
		{Number: 1, Title: "Report Issues", Description: "Easily report city issues through our mobile app or website"},
		{Number: 2, Title: "Track Progress", Description: "Monitor the status of reported issues in real-time"},
		{Number: 3, Title: "Get Results", Description: "See improvements in your community as issues get resolved"},
	}

	footerColumns = []FooterColumn{
		{Heading: ProductName, Text: "Making cities better, together."},
		{Heading: "Product", Items: []string{"Features", "Pricing"}},
		{Heading: "Company", Items: []string{"About", "Contact"}},
		{Heading: "Legal", Items: []string{"Privacy", "Terms"}},
	}
)

// Features returns a copy of the feature list
func Features() []FeatureRecord {
	out := make([]FeatureRecord, len(features))
	copy(out, features)
	return out
}

// Steps returns a copy of the process steps
func Steps() []StepRecord {
	out := make([]StepRecord, len(steps))
	copy(out, steps)
	return out
}

// FooterColumns returns a deep copy of the footer columns
func FooterColumns() []FooterColumn {
	out := make([]FooterColumn, len(footerColumns))
	for i, col := range footerColumns {
		out[i] = col
		if col.Items != nil {
			out[i].Items = append([]string(nil), col.Items...)
		}
	}
	return out
}
