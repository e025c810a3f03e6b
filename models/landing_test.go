package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatures(t *testing.T) {
	list := Features()
	assert.Len(t, list, 4)
	assert.Equal(t, FeatureRecord{
		Icon:        IconLocation,
		Title:       "Location Tracking",
		Description: "Real-time GPS tracking and mapping for all city issues",
	}, list[0])
	assert.Equal(t, "Secure Platform", list[3].Title)

	t.Run("ReturnsCopy", func(t *testing.T) {
		list[0].Title = "changed"
		assert.Equal(t, "Location Tracking", Features()[0].Title)
	})
}

func TestSteps(t *testing.T) {
	list := Steps()
	assert.Len(t, list, 3)

	titles := []string{"Report Issues", "Track Progress", "Get Results"}
	for i, step := range list {
		assert.Equal(t, i+1, step.Number)
		assert.Equal(t, titles[i], step.Title)
		assert.NotEmpty(t, step.Description)
	}
}

func TestFooterColumns(t *testing.T) {
	cols := FooterColumns()
	assert.Len(t, cols, 4)
	assert.Equal(t, ProductName, cols[0].Heading)
	assert.Equal(t, []string{"Features", "Pricing"}, cols[1].Items)

	cols[1].Items[0] = "changed"
	assert.Equal(t, "Features", FooterColumns()[1].Items[0])
}

func TestCopyrightLine(t *testing.T) {
	assert.Contains(t, CopyrightLine, "2025")
	assert.Contains(t, CopyrightLine, ProductName)
}
