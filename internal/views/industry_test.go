package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndustryTabs_CountsAndOrdering(t *testing.T) {
	tabs := IndustryTabs([]string{"retail", "healthcare", "retail", "education", "retail", "healthcare"})

	require.Len(t, tabs, 4)
	assert.Equal(t, Tab{Industry: TabAll, Count: 6}, tabs[0])
	assert.Equal(t, Tab{Industry: "retail", Count: 3}, tabs[1])
	assert.Equal(t, Tab{Industry: "healthcare", Count: 2}, tabs[2])
	assert.Equal(t, Tab{Industry: "education", Count: 1}, tabs[3])
}

func TestIndustryTabs_NonAllCountsSumToTotal(t *testing.T) {
	industries := []string{"retail", "retail", "healthcare", "education", "education", "education", ""}
	tabs := IndustryTabs(industries)

	sum := 0
	for _, tab := range tabs[1:] {
		sum += tab.Count
	}

	assert.Equal(t, tabs[0].Count, sum)
	assert.Equal(t, len(industries), tabs[0].Count)
}

func TestIndustryTabs_TiesStableByFirstSeen(t *testing.T) {
	tabs := IndustryTabs([]string{"signage", "apparel", "signage", "apparel"})

	require.Len(t, tabs, 3)
	assert.Equal(t, "signage", tabs[1].Industry)
	assert.Equal(t, "apparel", tabs[2].Industry)
}

func TestIndustryTabs_Empty(t *testing.T) {
	tabs := IndustryTabs(nil)

	require.Len(t, tabs, 1)
	assert.Equal(t, Tab{Industry: TabAll, Count: 0}, tabs[0])
}
