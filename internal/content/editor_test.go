package content

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msvosa_back_end/internal/models"
	"msvosa_back_end/internal/store"
)

func loadedEditor(t *testing.T) (*Editor, *store.MemoryStore) {
	t.Helper()
	memStore := store.NewMemoryStore()
	editor := NewEditor(memStore)
	require.NoError(t, editor.Load(context.Background()))
	return editor, memStore
}

func TestLoadSeedsDraftsOnce(t *testing.T) {
	editor, _ := loadedEditor(t)

	assert.Equal(t, "MSVOSA", editor.Draft().Branding.Name)

	// Editing then reloading must not lose unsaved work.
	editor.SetBranding(models.Branding{Name: "MSVOSA 2.0", FullName: "Old Students Association", Logo: "logo.png"})
	require.NoError(t, editor.Load(context.Background()))
	assert.Equal(t, "MSVOSA 2.0", editor.Draft().Branding.Name)
}

func TestSettersTouchOnlyTheirDomain(t *testing.T) {
	editor, _ := loadedEditor(t)
	before := editor.Draft()

	editor.SetHero(models.HeroContent{Title: "Hello", Highlight: "Batch '95", Description: "d", Image: "i"})

	after := editor.Draft()
	assert.Equal(t, "Hello", after.HeroContent.Title)
	assert.Equal(t, before.Branding, after.Branding)
	assert.Equal(t, before.MissionContent, after.MissionContent)
	assert.Equal(t, before.ContactInfo, after.ContactInfo)
	assert.Equal(t, before.ShopItems, after.ShopItems)
}

func TestPublishWritesAllDomainsAtomically(t *testing.T) {
	editor, memStore := loadedEditor(t)

	editor.SetBranding(models.Branding{Name: "MSVOSA", FullName: "Old Students Association", Logo: "new-logo.png"})
	editor.SetContact(models.ContactInfo{Email: "hello@msvosa.org", Phone: "+44 1", Website: "msvosa.org", Address: "1 School Lane"})
	editor.AddCommitteeName("Priya Raman")

	require.NoError(t, editor.Publish(context.Background()))

	persisted, err := memStore.GetSiteContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-logo.png", persisted.Branding.Logo)
	assert.Equal(t, "hello@msvosa.org", persisted.ContactInfo.Email)
	assert.Contains(t, persisted.CommitteeMembersList, "Priya Raman")
	assert.Equal(t, editor.Published(), persisted)
}

func TestPublishTwiceWithoutEditsPersistsIdenticalDocument(t *testing.T) {
	editor, memStore := loadedEditor(t)
	editor.SetHero(models.HeroContent{Title: "Welcome back", Highlight: "MSVOSA", Description: "d", Image: "i"})

	require.NoError(t, editor.Publish(context.Background()))
	first, err := memStore.GetSiteContent(context.Background())
	require.NoError(t, err)

	require.NoError(t, editor.Publish(context.Background()))
	second, err := memStore.GetSiteContent(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPublishFailureKeepsDraftsAndStoreValue(t *testing.T) {
	editor, memStore := loadedEditor(t)
	require.NoError(t, editor.Publish(context.Background()))
	before, err := memStore.GetSiteContent(context.Background())
	require.NoError(t, err)

	editor.SetBranding(models.Branding{Name: "Changed", FullName: "F", Logo: "L"})
	memStore.FailWith = errors.New("persistence down")

	require.Error(t, editor.Publish(context.Background()))

	// Store keeps its prior value, drafts stay in memory for retry.
	memStore.FailWith = nil
	after, err := memStore.GetSiteContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, "Changed", editor.Draft().Branding.Name)
	assert.Equal(t, before.Branding, editor.Published().Branding)

	require.NoError(t, editor.Publish(context.Background()))
	retried, err := memStore.GetSiteContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Changed", retried.Branding.Name)
}

func TestCatalogOperations(t *testing.T) {
	editor, _ := loadedEditor(t)
	initial := len(editor.Draft().ShopItems)

	id := editor.AddProduct(models.MerchandiseItem{
		Name: "Batch Scarf", Price: decimal.NewFromFloat(19.50), Category: "Apparel", Image: "scarf.jpg",
	})
	require.NotZero(t, id)
	require.Len(t, editor.Draft().ShopItems, initial+1)

	editor.UpdateProductImage(id, "scarf-v2.jpg")
	items := editor.Draft().ShopItems
	assert.Equal(t, "scarf-v2.jpg", items[len(items)-1].Image)

	editor.UpdateProduct(id, models.MerchandiseItem{
		Name: "Batch Scarf Deluxe", Price: decimal.NewFromFloat(24.50), Category: "Apparel", Image: "scarf-v2.jpg",
	})
	items = editor.Draft().ShopItems
	assert.Equal(t, "Batch Scarf Deluxe", items[len(items)-1].Name)
	assert.Equal(t, id, items[len(items)-1].ID, "update must not change the id")

	editor.DeleteProduct(id)
	assert.Len(t, editor.Draft().ShopItems, initial)
}

func TestLeadershipOperations(t *testing.T) {
	editor, _ := loadedEditor(t)
	initial := len(editor.Draft().CommitteeLeadership)

	editor.AddLeader(models.CommitteeMember{Name: "Nadia Perera", Role: "Auditor", Bio: "b", Image: "i"})
	require.Len(t, editor.Draft().CommitteeLeadership, initial+1)

	editor.UpdateLeaderImage(initial, "nadia.jpg")
	assert.Equal(t, "nadia.jpg", editor.Draft().CommitteeLeadership[initial].Image)

	// Out-of-range positions are ignored.
	editor.UpdateLeaderImage(99, "x.jpg")
	editor.RemoveLeader(-1)
	require.Len(t, editor.Draft().CommitteeLeadership, initial+1)

	editor.RemoveLeader(initial)
	assert.Len(t, editor.Draft().CommitteeLeadership, initial)
}

func TestSessionsIsolateDrafts(t *testing.T) {
	memStore := store.NewMemoryStore()
	sessions := NewSessions(memStore)
	ctx := context.Background()

	a, err := sessions.Editor(ctx, "session-a")
	require.NoError(t, err)
	b, err := sessions.Editor(ctx, "session-b")
	require.NoError(t, err)

	a.SetBranding(models.Branding{Name: "A", FullName: "F", Logo: "L"})
	assert.Equal(t, "MSVOSA", b.Draft().Branding.Name)

	// Same session gets the same editor back.
	again, err := sessions.Editor(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Draft().Branding.Name)

	sessions.Drop("session-a")
	fresh, err := sessions.Editor(ctx, "session-a")
	require.NoError(t, err)
	assert.Equal(t, "MSVOSA", fresh.Draft().Branding.Name)
}
