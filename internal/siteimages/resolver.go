// Package siteimages resolves configurable image slots to display URLs.
package siteimages

import "printshop-service/internal/domain/siteimage"

// Resolver answers slot lookups against an already-loaded snapshot.
// Resolve performs no I/O; rebuild the resolver when the snapshot changes.
type Resolver struct {
	slots map[string]*siteimage.SiteImage
}

func NewResolver(images []*siteimage.SiteImage) *Resolver {
	slots := make(map[string]*siteimage.SiteImage, len(images))
	for _, img := range images {
		slots[slotKey(img.Page, img.Name)] = img
	}
	return &Resolver{slots: slots}
}

// Resolve returns the slot's custom URL when set, its stock URL otherwise,
// and "" for an unknown slot (the caller falls back to a hardcoded
// default).
func (r *Resolver) Resolve(page, name string) string {
	img, ok := r.slots[slotKey(page, name)]
	if !ok {
		return ""
	}
	if img.CustomURL != "" {
		return img.CustomURL
	}
	return img.StockURL
}

func slotKey(page, name string) string {
	return page + "/" + name
}
