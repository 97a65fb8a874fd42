// Package content implements the admin draft/publish workflow for the
// site-content document. Each admin session edits its own in-memory
// drafts; Save Changes writes all domains back as one atomic document.
package content

import (
	"context"
	"sync"

	"msvosa_back_end/internal/models"
	"msvosa_back_end/internal/store"
)

// Editor holds one draft per content domain, seeded once from the
// store. Every setter touches only its own domain; Publish gathers all
// drafts into a single SiteContent and persists it in one call.
//
// Publishing is last-writer-wins: there is no version check against
// the store, so two admin sessions publishing concurrently will
// silently clobber each other. Known limitation, kept on purpose.
type Editor struct {
	mu    sync.Mutex
	store store.ContentStore

	draft     models.SiteContent
	published models.SiteContent
	loaded    bool
}

func NewEditor(contentStore store.ContentStore) *Editor {
	return &Editor{store: contentStore}
}

// Load seeds the drafts from the store. It runs once; later calls are
// no-ops so editing never loses unsaved work to a refetch.
func (e *Editor) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loaded {
		return nil
	}
	current, err := e.store.GetSiteContent(ctx)
	if err != nil {
		return err
	}
	e.draft = current
	e.published = current
	e.loaded = true
	return nil
}

// Draft returns a copy of the current drafts as one document.
func (e *Editor) Draft() models.SiteContent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneContent(e.draft)
}

// Published returns the last content known to have been persisted.
func (e *Editor) Published() models.SiteContent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneContent(e.published)
}

// --- Single update entry point per domain ---

func (e *Editor) SetBranding(b models.Branding) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.Branding = b
}

func (e *Editor) SetHero(h models.HeroContent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.HeroContent = h
}

func (e *Editor) SetMission(m models.MissionContent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.MissionContent = m
}

func (e *Editor) SetGallery(g models.GalleryContent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.GalleryContent = g
}

func (e *Editor) SetContact(c models.ContactInfo) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.ContactInfo = c
}

// --- Committee leadership (ordered, position-addressed) ---

func (e *Editor) AddLeader(leader models.CommitteeMember) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft.CommitteeLeadership = append(e.draft.CommitteeLeadership, leader)
}

func (e *Editor) UpdateLeaderImage(index int, imageURL string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index >= 0 && index < len(e.draft.CommitteeLeadership) {
		e.draft.CommitteeLeadership[index].Image = imageURL
	}
}

func (e *Editor) RemoveLeader(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index >= 0 && index < len(e.draft.CommitteeLeadership) {
		e.draft.CommitteeLeadership = append(
			e.draft.CommitteeLeadership[:index],
			e.draft.CommitteeLeadership[index+1:]...)
	}
}

// --- General committee members list ---

func (e *Editor) AddCommitteeName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if name == "" {
		return
	}
	e.draft.CommitteeMembersList = append(e.draft.CommitteeMembersList, name)
}

func (e *Editor) RemoveCommitteeName(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index >= 0 && index < len(e.draft.CommitteeMembersList) {
		e.draft.CommitteeMembersList = append(
			e.draft.CommitteeMembersList[:index],
			e.draft.CommitteeMembersList[index+1:]...)
	}
}

// --- Shop catalog ---

// AddProduct appends a new merchandise item to the catalog draft and
// returns its assigned id.
func (e *Editor) AddProduct(item models.MerchandiseItem) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	item.ID = models.NextID()
	e.draft.ShopItems = append(e.draft.ShopItems, item)
	return item.ID
}

func (e *Editor) UpdateProduct(id int64, item models.MerchandiseItem) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.draft.ShopItems {
		if e.draft.ShopItems[i].ID == id {
			item.ID = id
			e.draft.ShopItems[i] = item
			return
		}
	}
}

func (e *Editor) UpdateProductImage(id int64, imageURL string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.draft.ShopItems {
		if e.draft.ShopItems[i].ID == id {
			e.draft.ShopItems[i].Image = imageURL
			return
		}
	}
}

func (e *Editor) DeleteProduct(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.draft.ShopItems {
		if e.draft.ShopItems[i].ID == id {
			e.draft.ShopItems = append(e.draft.ShopItems[:i], e.draft.ShopItems[i+1:]...)
			return
		}
	}
}

// Publish writes all drafts to the store as one document. Either every
// domain is persisted together or none is: on failure the store keeps
// its prior value and the drafts stay in memory for a retry.
func (e *Editor) Publish(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc := cloneContent(e.draft)
	if err := e.store.SaveSiteContent(ctx, doc); err != nil {
		return err
	}
	e.published = doc
	return nil
}

func cloneContent(c models.SiteContent) models.SiteContent {
	out := c
	out.MissionContent.Values = append([]string(nil), c.MissionContent.Values...)
	out.MissionContent.LatestNews = append([]models.NewsItem(nil), c.MissionContent.LatestNews...)
	out.GalleryContent.Images = append([]string(nil), c.GalleryContent.Images...)
	out.CommitteeLeadership = append([]models.CommitteeMember(nil), c.CommitteeLeadership...)
	out.CommitteeMembersList = append([]string(nil), c.CommitteeMembersList...)
	out.ShopItems = append([]models.MerchandiseItem(nil), c.ShopItems...)
	return out
}
