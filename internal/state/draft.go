// internal/state/draft.go
package state

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/crownshop/storefront/internal/localstore"
	"github.com/crownshop/storefront/internal/models"
)

// ValidationError marks a draft problem the admin has to fix before a
// publish may touch the network.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// FileUpload is a freshly selected image before it becomes a draft item.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// Draft holds an admin's pending upload batch and keeps it recoverable:
// every mutation re-serializes the whole list to local persistence, so
// an accidental close or reload loses nothing. An empty list never
// overwrites a stored draft; only removal-to-empty or a successful
// publish clears the key.
type Draft struct {
	mu       sync.Mutex
	store    *localstore.Store
	items    []models.DraftItem
	restored bool
}

func NewDraft(store *localstore.Store) *Draft {
	return &Draft{store: store}
}

// Restore performs the one-time draft recovery for this session and
// reports whether anything came back, so the surface can show its
// "draft restored" indicator exactly once. Corrupt or empty stored
// drafts are discarded silently.
func (d *Draft) Restore() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.restored {
		return false
	}
	d.restored = true

	var saved []models.DraftItem
	if !d.store.Read(KeyAdminDraft, &saved) || len(saved) == 0 {
		return false
	}

	// Every encoded image must decode back to an uploadable binary;
	// a broken payload poisons the whole draft.
	for _, item := range saved {
		if _, _, err := item.ImageBytes(); err != nil {
			d.store.Remove(KeyAdminDraft)
			return false
		}
	}

	d.items = saved
	return true
}

// Add appends one draft item per selected file, image encoded for
// persistence, title seeded from the file name, category defaulted.
func (d *Draft) Add(files ...FileUpload) {
	if len(files) == 0 {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, f := range files {
		d.items = append(d.items, models.DraftItem{
			EncodedImage: models.EncodeImage(f.Data, f.ContentType),
			Title:        models.TitleFromFileName(f.Name),
			Category:     models.CategoryOther,
			FileName:     f.Name,
		})
	}
	d.persist()
}

// DraftPatch carries edited fields of one pending item.
type DraftPatch struct {
	Title       *string `json:"title,omitempty"`
	Price       *string `json:"price,omitempty"`
	Category    *string `json:"category,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (d *Draft) Update(index int, patch DraftPatch) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index < 0 || index >= len(d.items) {
		return fmt.Errorf("no pending item at index %d", index)
	}

	item := &d.items[index]
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Gender != nil {
		item.Gender = *patch.Gender
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}

	d.persist()
	return nil
}

// Remove discards one pending item. Removing the last item clears the
// stored draft immediately.
func (d *Draft) Remove(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index < 0 || index >= len(d.items) {
		return fmt.Errorf("no pending item at index %d", index)
	}

	d.items = append(d.items[:index], d.items[index+1:]...)
	if len(d.items) == 0 {
		d.store.Remove(KeyAdminDraft)
		return nil
	}

	d.persist()
	return nil
}

func (d *Draft) Items() []models.DraftItem {
	d.mu.Lock()
	defer d.mu.Unlock()

	items := make([]models.DraftItem, len(d.items))
	copy(items, d.items)
	return items
}

func (d *Draft) ItemAt(index int) (models.DraftItem, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index < 0 || index >= len(d.items) {
		return models.DraftItem{}, fmt.Errorf("no pending item at index %d", index)
	}
	return d.items[index], nil
}

func (d *Draft) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

// Validate checks every pending item and fails on the first unmet
// requirement, naming it. Nothing may be uploaded or inserted for a
// batch that does not pass.
func (d *Draft) Validate() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.items) == 0 {
		return validationErrorf("nothing to publish")
	}

	for i, item := range d.items {
		if err := validateItem(i, item); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAt checks a single pending item for an individual publish.
func (d *Draft) ValidateAt(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index < 0 || index >= len(d.items) {
		return fmt.Errorf("no pending item at index %d", index)
	}
	return validateItem(index, d.items[index])
}

func validateItem(index int, item models.DraftItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return validationErrorf("item %d: a title is required", index+1)
	}
	if _, err := ParsePrice(item.Price); err != nil {
		return validationErrorf("item %d: a valid positive price is required", index+1)
	}
	if strings.TrimSpace(item.Category) == "" {
		return validationErrorf("item %d: a category is required", index+1)
	}
	return nil
}

// CommitPublishAll runs after a successful full publish: it clears the
// pending list and the stored draft, and re-arms draft restore so a
// later draft in the same session can be recovered again.
func (d *Draft) CommitPublishAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.items = nil
	d.store.Remove(KeyAdminDraft)
	d.restored = false
}

// CommitPublishOne removes a single successfully published item,
// leaving the rest of the batch untouched.
func (d *Draft) CommitPublishOne(index int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index < 0 || index >= len(d.items) {
		return
	}

	d.items = append(d.items[:index], d.items[index+1:]...)
	if len(d.items) == 0 {
		d.store.Remove(KeyAdminDraft)
		return
	}
	d.persist()
}

// persist writes the serialized batch through; caller holds the lock.
// An empty list is deliberately not written over an existing draft.
func (d *Draft) persist() {
	if len(d.items) == 0 {
		return
	}
	d.store.Write(KeyAdminDraft, d.items)
}

// ParsePrice parses the draft's price text. It tolerates decimal input
// but the catalog stores whole currency units, so the value is rounded.
func ParsePrice(text string) (int64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", text, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("price must be positive, got %v", value)
	}
	return int64(math.Round(value)), nil
}
