package s3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPortfolioKey(t *testing.T) {
	key := BuildPortfolioKey(".png")

	assert.True(t, strings.HasPrefix(key, "portfolio/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	// Random suffix keeps concurrent uploads from colliding
	other := BuildPortfolioKey(".png")
	assert.NotEqual(t, key, other)
}

func TestBuildPortfolioKey_NormalizesExtension(t *testing.T) {
	assert.True(t, strings.HasSuffix(BuildPortfolioKey("JPG"), ".jpg"))
	assert.True(t, strings.HasSuffix(BuildPortfolioKey(".WEBP"), ".webp"))
	assert.False(t, strings.HasSuffix(BuildPortfolioKey(""), "."))
}

func TestBuildSiteImageKey(t *testing.T) {
	key := BuildSiteImageKey("home-hero-bg", ".jpg")

	assert.True(t, strings.HasPrefix(key, "site-images/home-hero-bg-"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
}
