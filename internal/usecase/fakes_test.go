package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
)

// memStore — общее состояние фейковых репозиториев в памяти.
type memStore struct {
	mu         sync.Mutex
	categories map[int64]*domain.Category
	items      map[int64]*domain.Item
	catSeq     int64
	itemSeq    int64
}

func newMemStore() *memStore {
	return &memStore{
		categories: make(map[int64]*domain.Category),
		items:      make(map[int64]*domain.Item),
	}
}

func (s *memStore) categoryName(id *int64) *string {
	if id == nil {
		return nil
	}
	if cat, ok := s.categories[*id]; ok {
		name := cat.Name
		return &name
	}
	return nil
}

func (s *memStore) itemInfo(item *domain.Item) *ItemInfo {
	return NewItemInfo(item, s.categoryName(item.CategoryID))
}

type fakeCategoryRepo struct {
	s *memStore
}

func (f *fakeCategoryRepo) ListAll(_ context.Context) ([]domain.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	out := make([]domain.Category, 0, len(f.s.categories))
	for _, cat := range f.s.categories {
		out = append(out, *cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	cat, ok := f.s.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *cat
	return &copied, nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	for _, cat := range f.s.categories {
		if cat.Name == name {
			copied := *cat
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) CountItemsReferencing(_ context.Context, categoryID int64) (int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	var count int64
	for _, item := range f.s.items {
		if item.CategoryID != nil && *item.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCategoryRepo) CreateIfAbsent(_ context.Context, category *domain.Category) (*domain.Category, bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	for _, existing := range f.s.categories {
		if existing.Name == category.Name {
			copied := *existing
			return &copied, false, nil
		}
	}

	f.s.catSeq++
	stored := *category
	stored.ID = f.s.catSeq
	f.s.categories[stored.ID] = &stored

	copied := stored
	return &copied, true, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	stored, ok := f.s.categories[category.ID]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	stored.Name = category.Name
	stored.Description = category.Description

	copied := *stored
	return &copied, nil
}

func (f *fakeCategoryRepo) DeleteByID(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	delete(f.s.categories, id)
	return nil
}

type fakeItemRepo struct {
	s *memStore
}

func (f *fakeItemRepo) ListAll(_ context.Context) ([]ItemInfo, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	out := make([]ItemInfo, 0, len(f.s.items))
	for _, item := range f.s.items {
		out = append(out, *f.s.itemInfo(item))
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := "", ""
		if out[i].CategoryName != nil {
			ci = *out[i].CategoryName
		}
		if out[j].CategoryName != nil {
			cj = *out[j].CategoryName
		}
		if ci != cj {
			return ci < cj
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeItemRepo) ListByCategory(_ context.Context, categoryID int64) ([]ItemInfo, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	var out []ItemInfo
	for _, item := range f.s.items {
		if item.CategoryID != nil && *item.CategoryID == categoryID {
			out = append(out, *f.s.itemInfo(item))
		}
	}
	return out, nil
}

func (f *fakeItemRepo) FindByID(_ context.Context, id int64) (*ItemInfo, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	item, ok := f.s.items[id]
	if !ok {
		return nil, nil
	}
	return f.s.itemInfo(item), nil
}

func (f *fakeItemRepo) FindByName(_ context.Context, name string) (*domain.Item, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	for _, item := range f.s.items {
		if item.Name == name {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) CreateIfAbsent(_ context.Context, item *domain.Item) (*domain.Item, bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	for _, existing := range f.s.items {
		if existing.Name == item.Name {
			copied := *existing
			return &copied, false, nil
		}
	}

	f.s.itemSeq++
	stored := *item
	stored.ID = f.s.itemSeq
	f.s.items[stored.ID] = &stored

	copied := stored
	return &copied, true, nil
}

func (f *fakeItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	if _, ok := f.s.items[item.ID]; !ok {
		return nil, e.ErrItemNotFound
	}
	stored := *item
	f.s.items[item.ID] = &stored

	copied := stored
	return &copied, nil
}

func (f *fakeItemRepo) DeleteByID(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	delete(f.s.items, id)
	return nil
}

type fakeImageRepo struct {
	mu      sync.Mutex
	objects map[string]*domain.Image
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{objects: make(map[string]*domain.Image)}
}

func (f *fakeImageRepo) Upload(_ context.Context, image *domain.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.objects[image.ObjectKey] = image
	return image.ObjectKey, nil
}

func (f *fakeImageRepo) Fetch(_ context.Context, key string) (*domain.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	image, ok := f.objects[key]
	if !ok {
		return nil, e.ErrImageNotFound
	}
	return image, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.objects, key)
	return nil
}

func (f *fakeImageRepo) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.objects[key]
	return ok
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(_ context.Context, _ int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeOutboxRepo) types() []OutboxEventType {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]OutboxEventType, 0, len(f.events))
	for _, event := range f.events {
		out = append(out, event.EventType)
	}
	return out
}

type fakeCacheRepo struct {
	mu      sync.Mutex
	items   map[int64]*ItemInfo
	deleted []int64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{items: make(map[int64]*ItemInfo)}
}

func (f *fakeCacheRepo) GetItem(_ context.Context, id int64) (*ItemInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.items[id], nil
}

func (f *fakeCacheRepo) SetItem(_ context.Context, info *ItemInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := *info
	f.items[info.ID] = &copied
	return nil
}

func (f *fakeCacheRepo) DeleteItems(_ context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range ids {
		delete(f.items, id)
		f.deleted = append(f.deleted, id)
	}
	return nil
}

// fakeTxManager вызывает fn напрямую, без транзакции.
type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// harness собирает оба юзкейса поверх общих фейков.
type harness struct {
	store      *memStore
	images     *fakeImageRepo
	outbox     *fakeOutboxRepo
	cache      *fakeCacheRepo
	categoryUC *CategoryUseCase
	itemUC     *ItemUseCase
}

func newHarness() *harness {
	store := newMemStore()
	catRepo := &fakeCategoryRepo{s: store}
	itemRepo := &fakeItemRepo{s: store}
	images := newFakeImageRepo()
	outbox := &fakeOutboxRepo{}
	cache := newFakeCacheRepo()
	tx := &fakeTxManager{}
	log := nopLogger{}

	return &harness{
		store:      store,
		images:     images,
		outbox:     outbox,
		cache:      cache,
		categoryUC: NewCategoryUC(catRepo, itemRepo, outbox, cache, tx, log),
		itemUC:     NewItemUC(itemRepo, catRepo, images, outbox, cache, tx, log),
	}
}
