package library

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"bloom/core/render"
	"bloom/core/storage"
	"bloom/feature/library/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service serves catalog pages, favorites and the integrity check.
type Service struct {
	db      *gorm.DB
	client  storage.Client
	bucket  string
	logger  *zap.Logger
	session *render.Session
	cache   *ttlCache

	// mu serializes repaints; a container must not be reconciled from two
	// requests at once.
	mu sync.Mutex
}

// NewService creates the library service and migrates the favorites table.
func NewService(db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) (*Service, error) {
	if err := db.AutoMigrate(&models.Favorite{}); err != nil {
		return nil, fmt.Errorf("failed to migrate favorites: %w", err)
	}
	return &Service{
		db:      db,
		client:  client,
		bucket:  bucket,
		logger:  logger,
		session: render.NewSession(),
		cache:   newTTLCache(DefaultCacheTTL),
	}, nil
}

// Items returns the parsed catalog for a kind, served from cache.
func (s *Service) Items(ctx context.Context, kind models.Kind) ([]models.Item, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown catalog kind %q", kind)
	}
	// The flight is shared across waiters, so it must not die with the
	// caller that happened to trigger it.
	fetchCtx := context.WithoutCancel(ctx)
	value, err := s.cache.get("catalog/"+string(kind), func() (any, error) {
		return s.fetchCatalog(fetchCtx, kind)
	})
	if err != nil {
		return nil, err
	}
	return value.([]models.Item), nil
}

func (s *Service) fetchCatalog(ctx context.Context, kind models.Kind) ([]models.Item, error) {
	object := objectFor(kind)
	reader, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog %s: %w", object, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", object, err)
	}

	items, err := parseCatalog(kind, data)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Catalog loaded",
		zap.String("kind", string(kind)),
		zap.Int("items", len(items)))
	return items, nil
}

// mediaKeys returns the set of catalog identifiers that have a media object,
// served from cache.
func (s *Service) mediaKeys(ctx context.Context, kind models.Kind) (map[string]struct{}, error) {
	fetchCtx := context.WithoutCancel(ctx)
	value, err := s.cache.get("media/"+string(kind), func() (any, error) {
		keys := make(map[string]struct{})
		objects := s.client.ListObjects(fetchCtx, s.bucket, minio.ListObjectsOptions{
			Prefix:    mediaPrefixFor(kind),
			Recursive: true,
		})
		for object := range objects {
			if object.Err != nil {
				return nil, fmt.Errorf("failed to list %s media: %w", kind, object.Err)
			}
			keys[mediaKey(object.Key)] = struct{}{}
		}
		return keys, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(map[string]struct{}), nil
}

func (s *Service) favoriteSet(ctx context.Context, kind models.Kind) (map[string]bool, error) {
	var rows []models.Favorite
	if err := s.db.WithContext(ctx).Where("kind = ?", string(kind)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	set := make(map[string]bool, len(rows))
	for _, row := range rows {
		set[row.ItemID] = true
	}
	return set, nil
}

// List builds the rendered catalog page for a kind, optionally filtered by
// category. Fragments keep their identity across repaints and filter
// changes; favorite toggles invalidate the container instead, since a reused
// key never re-renders its payload.
func (s *Service) List(ctx context.Context, kind models.Kind, category string) (*models.ListView, error) {
	items, err := s.Items(ctx, kind)
	if err != nil {
		return nil, err
	}
	favorites, err := s.favoriteSet(ctx, kind)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		filtered = append(filtered, item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	container := s.session.Container("library/" + string(kind))
	renderOf := func(item models.Item) *render.Fragment {
		return itemFragment(item, favorites[item.ID])
	}
	if err := render.Reconcile(container, filtered, itemKey, renderOf, emptyList); err != nil {
		return nil, err
	}

	return &models.ListView{Kind: kind, Items: filtered, HTML: container.HTML()}, nil
}

// Favorite marks a catalog item as favorite. Marking twice is a no-op.
func (s *Service) Favorite(ctx context.Context, kind models.Kind, id string) error {
	if !kind.IsValid() {
		return fmt.Errorf("unknown catalog kind %q", kind)
	}
	if id == "" {
		return fmt.Errorf("item id is required")
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Favorite{ItemID: id, Kind: string(kind)}).Error
	if err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	s.session.Invalidate("library/" + string(kind))
	return nil
}

// Unfavorite removes a favorite mark. Removing a non-favorite is a no-op.
func (s *Service) Unfavorite(ctx context.Context, kind models.Kind, id string) error {
	if !kind.IsValid() {
		return fmt.Errorf("unknown catalog kind %q", kind)
	}
	err := s.db.WithContext(ctx).
		Where("kind = ? AND item_id = ?", string(kind), id).
		Delete(&models.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	s.session.Invalidate("library/" + string(kind))
	return nil
}

// Check reconciles catalog documents, media objects and favorite rows for
// both kinds and reports every key with its per-source presence.
func (s *Service) Check(ctx context.Context) (*models.CheckReport, error) {
	report := &models.CheckReport{Results: []models.CheckResult{}}

	for _, kind := range []models.Kind{models.KindWorkout, models.KindRecipe} {
		results, err := s.checkKind(ctx, kind)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, results...)
	}

	for _, result := range report.Results {
		report.Summary.TotalItems++
		switch {
		case result.CatalogPresent && !result.MediaPresent:
			report.Summary.MissingMedia++
		case !result.CatalogPresent && result.MediaPresent:
			report.Summary.OrphanMedia++
		}
		if result.Favorite && !result.CatalogPresent {
			report.Summary.DanglingFavorites++
		}
	}
	return report, nil
}

func (s *Service) checkKind(ctx context.Context, kind models.Kind) ([]models.CheckResult, error) {
	items, err := s.Items(ctx, kind)
	if err != nil {
		return nil, err
	}
	media, err := s.mediaKeys(ctx, kind)
	if err != nil {
		return nil, err
	}
	favorites, err := s.favoriteSet(ctx, kind)
	if err != nil {
		return nil, err
	}

	titles := make(map[string]string, len(items))
	for _, item := range items {
		titles[item.ID] = item.Title
	}

	keys := make(map[string]struct{}, len(items))
	for _, item := range items {
		keys[item.ID] = struct{}{}
	}
	for key := range media {
		keys[key] = struct{}{}
	}
	for key := range favorites {
		keys[key] = struct{}{}
	}

	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	results := make([]models.CheckResult, 0, len(sorted))
	for _, key := range sorted {
		_, inCatalog := titles[key]
		_, inMedia := media[key]
		results = append(results, models.CheckResult{
			ID:             key,
			Kind:           kind,
			Title:          titles[key],
			CatalogPresent: inCatalog,
			MediaPresent:   inMedia,
			Favorite:       favorites[key],
		})
	}
	return results, nil
}

// InvalidateCache drops cached catalogs and media listings, forcing a
// refetch on the next read.
func (s *Service) InvalidateCache() {
	s.cache.invalidate()
	s.session.Invalidate("library/" + string(models.KindWorkout))
	s.session.Invalidate("library/" + string(models.KindRecipe))
}

const emptyList = `<p class="library-empty">Nothing here yet.</p>`

func itemKey(item models.Item) string {
	return item.ID
}

func itemFragment(item models.Item, favorite bool) *render.Fragment {
	class := "card"
	if favorite {
		class += " favorite"
	}
	var meta []string
	if item.DurationMin > 0 {
		meta = append(meta, fmt.Sprintf("%d min", item.DurationMin))
	}
	if item.Level != "" {
		meta = append(meta, item.Level)
	}
	if item.Kcal > 0 {
		meta = append(meta, fmt.Sprintf("%d kcal", item.Kcal))
	}
	return render.NewFragment(fmt.Sprintf(
		`<article class="%s" data-id="%s" data-category="%s"><h3>%s</h3><p class="meta">%s</p></article>`,
		class, item.ID, item.Category, item.Title, strings.Join(meta, " / "),
	))
}
