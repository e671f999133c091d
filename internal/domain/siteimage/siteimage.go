package siteimage

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSortOrder is assigned when a legacy record has no sort order.
const DefaultSortOrder = 999

// SiteImage is a configurable image slot bound to a (page, section, name)
// location. CustomURL/CustomPath are both empty when no staff override
// exists; StockURL is the fallback.
type SiteImage struct {
	ID              uuid.UUID `json:"id"`
	Page            string    `json:"page"`
	Section         string    `json:"section"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	StockURL        string    `json:"stockUrl"`
	CustomURL       string    `json:"customUrl"`
	CustomPath      string    `json:"customPath"`
	RecommendedSize string    `json:"recommendedSize"`
	SortOrder       int       `json:"order"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Slot describes a seedable image slot. The catalog below is inserted at
// startup for any (page, name) pair not already present.
type Slot struct {
	Page            string
	Section         string
	Name            string
	Location        string
	StockURL        string
	RecommendedSize string
	SortOrder       int
}

// DefaultSlots is the stock catalog of configurable site imagery.
var DefaultSlots = []Slot{
	{Page: "home", Section: "Hero", Name: "home-hero-bg", Location: "Full-width hero background", StockURL: "https://images.unsplash.com/photo-1562408590-e32931084e23?w=1920", RecommendedSize: "1920x1080", SortOrder: 1},
	{Page: "home", Section: "Services", Name: "home-services-digital", Location: "Digital printing card", StockURL: "https://images.unsplash.com/photo-1601645191163-3fc0d5d64e35?w=800", RecommendedSize: "800x600", SortOrder: 2},
	{Page: "home", Section: "Services", Name: "home-services-offset", Location: "Offset printing card", StockURL: "https://images.unsplash.com/photo-1611224885990-ab7363d1f2a9?w=800", RecommendedSize: "800x600", SortOrder: 3},
	{Page: "home", Section: "Services", Name: "home-services-large-format", Location: "Large format card", StockURL: "https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?w=800", RecommendedSize: "800x600", SortOrder: 4},
	{Page: "services", Section: "Hero", Name: "services-hero-bg", Location: "Services page banner", StockURL: "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=1920", RecommendedSize: "1920x600", SortOrder: 1},
	{Page: "about", Section: "Hero", Name: "about-hero-bg", Location: "About page banner", StockURL: "https://images.unsplash.com/photo-1497366216548-37526070297c?w=1920", RecommendedSize: "1920x600", SortOrder: 1},
	{Page: "about", Section: "Team", Name: "about-shop-floor", Location: "Shop floor photo", StockURL: "https://images.unsplash.com/photo-1507679799987-c73779587ccf?w=1200", RecommendedSize: "1200x800", SortOrder: 2},
	{Page: "contact", Section: "Hero", Name: "contact-hero-bg", Location: "Contact page banner", StockURL: "https://images.unsplash.com/photo-1423666639041-f56000c27a9a?w=1920", RecommendedSize: "1920x600", SortOrder: 1},
}
