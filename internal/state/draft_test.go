// internal/state/draft_test.go
package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crownshop/storefront/internal/models"
)

func testUpload(name string) FileUpload {
	return FileUpload{
		Name:        name,
		ContentType: "image/png",
		Data:        []byte("fake png bytes"),
	}
}

func strPtr(s string) *string { return &s }

func TestDraftAddSeedsDefaults(t *testing.T) {
	draft := NewDraft(newTestStore(t))

	draft.Add(testUpload("crown-hat_gold.png"))

	items := draft.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "crown hat gold", items[0].Title)
	assert.Equal(t, models.CategoryOther, items[0].Category)
	assert.Equal(t, "crown-hat_gold.png", items[0].FileName)

	// The encoded image must reconstruct the original upload bytes.
	data, contentType, err := items[0].ImageBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestDraftRestoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	first := NewDraft(store)
	first.Add(testUpload("hat.png"))
	require.NoError(t, first.Update(0, DraftPatch{Title: strPtr("Gold Hat"), Price: strPtr("450")}))

	// A new manager over the same store plays the reopened surface.
	second := NewDraft(store)
	assert.True(t, second.Restore())

	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Gold Hat", items[0].Title)
	assert.Equal(t, "450", items[0].Price)

	// The restored indicator shows exactly once.
	assert.False(t, second.Restore())
}

func TestDraftRestoreNothingStored(t *testing.T) {
	draft := NewDraft(newTestStore(t))
	assert.False(t, draft.Restore())
}

func TestDraftRestoreDiscardsCorruptImage(t *testing.T) {
	store := newTestStore(t)
	store.Write(KeyAdminDraft, []models.DraftItem{{
		EncodedImage: "not a data url",
		Title:        "Broken",
		Price:        "10",
		Category:     models.CategoryOther,
	}})

	draft := NewDraft(store)
	assert.False(t, draft.Restore())
	assert.Empty(t, draft.Items())
	assert.False(t, store.Has(KeyAdminDraft))
}

func TestDraftRemoveToEmptyClearsKey(t *testing.T) {
	store := newTestStore(t)
	draft := NewDraft(store)

	draft.Add(testUpload("hat.png"))
	require.True(t, store.Has(KeyAdminDraft))

	require.NoError(t, draft.Remove(0))
	assert.Empty(t, draft.Items())
	assert.False(t, store.Has(KeyAdminDraft))
}

func TestDraftUpdateOutOfRange(t *testing.T) {
	draft := NewDraft(newTestStore(t))
	assert.Error(t, draft.Update(0, DraftPatch{Title: strPtr("x")}))
	assert.Error(t, draft.Remove(3))
}

func TestDraftValidateNamesRequirement(t *testing.T) {
	draft := NewDraft(newTestStore(t))
	draft.Add(testUpload("hat.png"))

	// Default item has no price yet.
	err := draft.Validate()
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
	assert.Contains(t, err.Error(), "item 1")
	assert.Contains(t, err.Error(), "price")

	require.NoError(t, draft.Update(0, DraftPatch{Price: strPtr("450")}))
	assert.NoError(t, draft.Validate())

	require.NoError(t, draft.Update(0, DraftPatch{Title: strPtr("   ")}))
	err = draft.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestDraftValidateEmptyBatch(t *testing.T) {
	draft := NewDraft(newTestStore(t))
	err := draft.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to publish")
}

func TestCommitPublishAllRearmsRestore(t *testing.T) {
	store := newTestStore(t)
	draft := NewDraft(store)

	draft.Add(testUpload("hat.png"))
	draft.Restore()
	draft.CommitPublishAll()

	assert.Empty(t, draft.Items())
	assert.False(t, store.Has(KeyAdminDraft))

	// A draft saved later in the same session restores again.
	draft.Add(testUpload("later.png"))
	second := NewDraft(store)
	assert.True(t, second.Restore())
}

func TestCommitPublishOneKeepsRest(t *testing.T) {
	store := newTestStore(t)
	draft := NewDraft(store)

	draft.Add(testUpload("first.png"), testUpload("second.png"))
	draft.CommitPublishOne(0)

	items := draft.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "second.png", items[0].FileName)
	assert.True(t, store.Has(KeyAdminDraft))
}

func TestParsePrice(t *testing.T) {
	value, err := ParsePrice("450")
	require.NoError(t, err)
	assert.Equal(t, int64(450), value)

	value, err = ParsePrice(" 449.6 ")
	require.NoError(t, err)
	assert.Equal(t, int64(450), value)

	_, err = ParsePrice("0")
	assert.Error(t, err)
	_, err = ParsePrice("-5")
	assert.Error(t, err)
	_, err = ParsePrice("free")
	assert.Error(t, err)
	_, err = ParsePrice("")
	assert.Error(t, err)
}
