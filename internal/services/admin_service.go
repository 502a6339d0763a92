// internal/services/admin_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/crownshop/storefront/internal/host"
	"github.com/crownshop/storefront/internal/models"
	"github.com/crownshop/storefront/internal/repository"
	"github.com/crownshop/storefront/internal/state"
)

// AdminService owns the ownership gate and the batch-upload workflow.
type AdminService struct {
	ownership repository.Ownership
	catalog   *CatalogService
	images    ImageStore
}

func NewAdminService(ownership repository.Ownership, catalog *CatalogService, images ImageStore) *AdminService {
	return &AdminService{
		ownership: ownership,
		catalog:   catalog,
		images:    images,
	}
}

// ResolveAccess decides, once per session, whether the host user may
// manage the catalog: first as the store's primary owner, then as a
// secondary admin. The first match wins; anything else — including a
// failed probe — degrades to a non-admin shopper.
func (s *AdminService) ResolveAccess(ctx context.Context, hostUserID int64) *models.AdminAccess {
	store, err := s.ownership.StoreByOwner(ctx, hostUserID)
	if err == nil {
		return &models.AdminAccess{Authorized: true, StoreID: store.ID}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logrus.WithError(err).Warn("store owner check failed")
	}

	admin, err := s.ownership.StoreAdminByTelegramID(ctx, hostUserID)
	if err == nil {
		return &models.AdminAccess{Authorized: true, StoreID: admin.StoreID}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logrus.WithError(err).Warn("store admin check failed")
	}

	return &models.AdminAccess{Authorized: false}
}

// PublishAll validates the whole pending batch, uploads every image in
// parallel, and inserts all rows in one catalog call. Validation or any
// upload failure aborts before the insert; an insert failure assumes
// nothing committed. Only full success clears the draft. Images already
// uploaded when a later step fails are orphaned blobs — a known,
// accepted gap.
func (s *AdminService) PublishAll(ctx context.Context, draft *state.Draft, notify host.Notifier) (int, error) {
	if err := draft.Validate(); err != nil {
		return 0, err
	}

	items := draft.Items()
	rows := make([]models.Product, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			row, err := s.uploadItem(gctx, item)
			if err != nil {
				return err
			}
			rows[i] = *row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logrus.WithError(err).Warn("publish aborted; already uploaded images are orphaned")
		return 0, fmt.Errorf("image upload failed: %w", err)
	}

	inserted, err := s.catalog.InsertProducts(ctx, rows)
	if err != nil {
		return 0, err
	}

	draft.CommitPublishAll()
	notify.Haptic(host.HapticSuccess)
	return len(inserted), nil
}

// PublishOne validates and publishes a single pending item, removing
// only it from the batch on success. This trades batch atomicity for
// per-item retry granularity.
func (s *AdminService) PublishOne(ctx context.Context, draft *state.Draft, index int, notify host.Notifier) (*models.Product, error) {
	if err := draft.ValidateAt(index); err != nil {
		return nil, err
	}

	item, err := draft.ItemAt(index)
	if err != nil {
		return nil, err
	}

	row, err := s.uploadItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	inserted, err := s.catalog.InsertProducts(ctx, []models.Product{*row})
	if err != nil {
		return nil, err
	}

	draft.CommitPublishOne(index)
	notify.Haptic(host.HapticSuccess)
	return &inserted[0], nil
}

// uploadItem decodes a pending item's persisted image back to bytes,
// uploads it, and builds the catalog row referencing the public URL.
func (s *AdminService) uploadItem(ctx context.Context, item models.DraftItem) (*models.Product, error) {
	data, contentType, err := item.ImageBytes()
	if err != nil {
		return nil, err
	}

	url, err := s.images.Upload(ctx, data, item.FileName, contentType)
	if err != nil {
		return nil, err
	}

	price, err := state.ParsePrice(item.Price)
	if err != nil {
		return nil, err
	}

	return &models.Product{
		Name:        strings.TrimSpace(item.Title),
		Description: strings.TrimSpace(item.Description),
		Price:       price,
		ImageURL:    url,
		Category:    item.Category,
		Gender:      item.Gender,
	}, nil
}
