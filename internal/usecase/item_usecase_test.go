package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/intake"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
)

func seedCategory(t *testing.T, h *harness, name string) int64 {
	t.Helper()

	res, err := h.categoryUC.Create(context.Background(), NewSaveCategoryReq(name, ""))
	if err != nil {
		t.Fatalf("seed category %q: %v", name, err)
	}
	return res.Category.ID
}

func pngFile(name string, size int64) *intake.File {
	return intake.NewFile(name, "image/png", size, []byte("png-bytes"))
}

func TestItemCreateFormBlockedWithoutCategories(t *testing.T) {
	h := newHarness()

	_, err := h.itemUC.CreateForm(context.Background())
	if !errors.Is(err, e.ErrNoCategories) {
		t.Errorf("expected ErrNoCategories, got %v", err)
	}
}

func TestItemCreateFormListsCategories(t *testing.T) {
	h := newHarness()
	seedCategory(t, h, "Hats")

	res, err := h.itemUC.CreateForm(context.Background())
	if err != nil {
		t.Fatalf("CreateForm: %v", err)
	}
	if len(res.Categories) != 1 {
		t.Errorf("expected 1 category, got %d", len(res.Categories))
	}
}

func TestItemListSortedByCategory(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")
	seedCategory(t, h, "Boots")

	for _, seed := range []struct{ name, category string }{
		{"Fedora", "Hats"},
		{"Chelsea", "Boots"},
		{"Panama", "Hats"},
		{"Loose Button", ""},
	} {
		if _, err := h.itemUC.Create(ctx, &SaveItemReq{Name: seed.name, CategoryName: seed.category, Price: "1"}); err != nil {
			t.Fatalf("Create %q: %v", seed.name, err)
		}
	}

	res, err := h.itemUC.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"Loose Button", "Chelsea", "Fedora", "Panama"}
	if len(res.Items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(res.Items))
	}
	for i, name := range want {
		if res.Items[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, res.Items[i].Name)
		}
	}
	if res.Items[0].CategoryName != nil {
		t.Errorf("expected item without category first, got %q", *res.Items[0].CategoryName)
	}
}

func TestItemCreateNormalizesPrice(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	res, err := h.itemUC.Create(ctx, &SaveItemReq{Name: "Fedora", CategoryName: "Hats", Price: "12"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Item == nil {
		t.Fatalf("expected created item, got %+v", res)
	}
	if res.Item.PriceCents != 1200 {
		t.Errorf("expected 1200 cents, got %d", res.Item.PriceCents)
	}
	if got := domain.PriceString(res.Item.PriceCents); got != "12.00" {
		t.Errorf("expected price '12.00', got %q", got)
	}
}

func TestItemCreateNegativePrice(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	res, err := h.itemUC.Create(ctx, &SaveItemReq{Name: "Fedora", CategoryName: "Hats", Price: "-1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(res.Violations) != 1 || res.Violations[0].Field != "price" {
		t.Fatalf("expected a price violation, got %v", res.Violations)
	}
	if len(h.store.items) != 0 {
		t.Error("invalid submission must not persist")
	}
	if len(res.Categories) != 1 {
		t.Error("re-render payload must carry the category list")
	}
}

func TestItemCreateNegativeSizeCounts(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	res, err := h.itemUC.Create(ctx, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		Small:        "-1",
		Large:        "3",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(res.Violations) != 1 || res.Violations[0].Field != "small" {
		t.Fatalf("expected a field-specific violation on 'small', got %v", res.Violations)
	}

	res, err = h.itemUC.Create(ctx, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		Small:        "0",
		Large:        "3",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Item == nil {
		t.Fatalf("expected created item, got %+v", res)
	}
	if res.Item.Sizes.None != 0 || res.Item.Sizes.Small != 0 || res.Item.Sizes.Large != 3 {
		t.Errorf("unexpected size stock: %+v", res.Item.Sizes)
	}
}

func TestItemCreateDuplicateResolvesToExisting(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")
	seedCategory(t, h, "Shoes")

	first, err := h.itemUC.Create(ctx, &SaveItemReq{Name: "Fedora", CategoryName: "Hats", Price: "10"})
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}

	// Дедупликация по имени не зависит от категории и цены.
	second, err := h.itemUC.Create(ctx, &SaveItemReq{Name: "Fedora", CategoryName: "Shoes", Price: "99"})
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if second.Existing == nil || second.Existing.ID != first.Item.ID {
		t.Fatalf("expected redirect to existing item %d, got %+v", first.Item.ID, second.Existing)
	}
	if len(h.store.items) != 1 {
		t.Errorf("expected exactly one stored item, got %d", len(h.store.items))
	}
}

func TestItemCreateUnknownCategoryStoredWithoutCategory(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	res, err := h.itemUC.Create(ctx, &SaveItemReq{Name: "Fedora", CategoryName: "Nonexistent", Price: "10"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Item == nil {
		t.Fatalf("expected created item, got %+v", res)
	}
	if res.Item.CategoryID != nil {
		t.Errorf("unresolved category name must leave the reference absent, got %v", *res.Item.CategoryID)
	}
}

func TestItemCreateWithImage(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	res, err := h.itemUC.Create(ctx, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		Image:        pngFile("photo.png", 100),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Item.ImageKey == nil {
		t.Fatal("expected stored image key")
	}
	if !h.images.has(*res.Item.ImageKey) {
		t.Error("expected image object in storage")
	}

	types := h.outbox.types()
	if types[len(types)-1] != ItemCreated {
		t.Errorf("expected item.created event, got %v", types)
	}
}

func TestItemCreateRejectsBadImage(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	res, err := h.itemUC.Create(ctx, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		Image:        intake.NewFile("photo.gif", "image/gif", 100, nil),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(res.Violations) != 1 || res.Violations[0].Field != "image" {
		t.Fatalf("expected an image violation, got %v", res.Violations)
	}
	if !strings.Contains(res.Violations[0].Message, "photo.gif") {
		t.Errorf("violation must name the file: %q", res.Violations[0].Message)
	}
	if len(h.store.items) != 0 {
		t.Error("invalid submission must not persist")
	}
}

func TestItemUpdateRetainsImage(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	created, _ := h.itemUC.Create(ctx, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		Image:        pngFile("photo.png", 100),
	})
	oldKey := *created.Item.ImageKey

	// Ни нового файла, ни флага удаления: изображение сохраняется как было.
	res, err := h.itemUC.Update(ctx, created.Item.ID, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "15",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.Item.ImageKey == nil || *res.Item.ImageKey != oldKey {
		t.Errorf("expected retained key %q, got %v", oldKey, res.Item.ImageKey)
	}
	if !h.images.has(oldKey) {
		t.Error("stored image bytes must remain")
	}
}

func TestItemUpdateClearsImage(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	created, _ := h.itemUC.Create(ctx, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		Image:        pngFile("photo.png", 100),
	})
	oldKey := *created.Item.ImageKey

	res, err := h.itemUC.Update(ctx, created.Item.ID, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		RemoveImage:  true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.Item.ImageKey != nil {
		t.Errorf("expected absent image, got %v", *res.Item.ImageKey)
	}
	if h.images.has(oldKey) {
		t.Error("cleared image object must be removed")
	}
}

func TestItemUpdateReplacesImage(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	created, _ := h.itemUC.Create(ctx, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		Image:        pngFile("photo.png", 100),
	})
	oldKey := *created.Item.ImageKey

	// Новый файл имеет приоритет над флагом удаления.
	res, err := h.itemUC.Update(ctx, created.Item.ID, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		Image:        pngFile("better.png", 200),
		RemoveImage:  true,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.Item.ImageKey == nil || *res.Item.ImageKey == oldKey {
		t.Errorf("expected a fresh image key, got %v", res.Item.ImageKey)
	}
	if h.images.has(oldKey) {
		t.Error("replaced image object must be removed")
	}
	if !h.images.has(*res.Item.ImageKey) {
		t.Error("new image object must be stored")
	}
}

func TestItemUpdateInvalidatesCache(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	created, _ := h.itemUC.Create(ctx, &SaveItemReq{Name: "Fedora", CategoryName: "Hats", Price: "10"})
	info, _ := (&fakeItemRepo{s: h.store}).FindByID(ctx, created.Item.ID)
	h.cache.SetItem(ctx, info)

	if _, err := h.itemUC.Update(ctx, created.Item.ID, &SaveItemReq{Name: "Fedora", CategoryName: "Hats", Price: "20"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if cached, _ := h.cache.GetItem(ctx, created.Item.ID); cached != nil {
		t.Error("cache entry must be invalidated after update")
	}
}

func TestItemUpdateNotFound(t *testing.T) {
	h := newHarness()
	seedCategory(t, h, "Hats")

	_, err := h.itemUC.Update(context.Background(), 42, &SaveItemReq{Name: "Fedora", CategoryName: "Hats", Price: "10"})
	if !errors.Is(err, e.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemDelete(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	created, _ := h.itemUC.Create(ctx, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		Image:        pngFile("photo.png", 100),
	})
	key := *created.Item.ImageKey

	if err := h.itemUC.Delete(ctx, created.Item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(h.store.items) != 0 {
		t.Error("item must be removed")
	}
	if h.images.has(key) {
		t.Error("image object must be removed with the item")
	}

	// Повторное удаление не ошибка.
	if err := h.itemUC.Delete(ctx, created.Item.ID); err != nil {
		t.Errorf("repeated Delete: %v", err)
	}
}

func TestItemDetailNotFound(t *testing.T) {
	h := newHarness()

	_, err := h.itemUC.Detail(context.Background(), 42)
	if !errors.Is(err, e.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemDetailBuildsImageDataURI(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	created, _ := h.itemUC.Create(ctx, &SaveItemReq{
		Name:         "Fedora",
		CategoryName: "Hats",
		Price:        "10",
		Image:        pngFile("photo.png", 100),
	})

	res, err := h.itemUC.Detail(ctx, created.Item.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if res.ImageDataURI == nil {
		t.Fatal("expected image data URI")
	}
	if !strings.HasPrefix(*res.ImageDataURI, "data:image/png;base64,") {
		t.Errorf("unexpected data URI prefix: %q", *res.ImageDataURI)
	}
}

func TestItemDetailReadsFromCache(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	seedCategory(t, h, "Hats")

	created, _ := h.itemUC.Create(ctx, &SaveItemReq{Name: "Fedora", CategoryName: "Hats", Price: "10"})

	cached := &ItemInfo{ID: created.Item.ID, Name: "Cached Fedora", PriceCents: 1000}
	h.cache.SetItem(ctx, cached)

	res, err := h.itemUC.Detail(ctx, created.Item.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if res.Item.Name != "Cached Fedora" {
		t.Errorf("expected cached record, got %q", res.Item.Name)
	}
}
