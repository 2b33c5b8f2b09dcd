package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
)

func TestCategoryCreate(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	res, err := h.categoryUC.Create(ctx, NewSaveCategoryReq("Hats", "Headwear"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Category == nil {
		t.Fatalf("expected created category, got %+v", res)
	}
	if res.Category.ID == 0 {
		t.Error("expected assigned id")
	}
	if res.Category.Name != "Hats" {
		t.Errorf("expected name 'Hats', got %q", res.Category.Name)
	}

	types := h.outbox.types()
	if len(types) != 1 || types[0] != CategoryCreated {
		t.Errorf("expected a single category.created event, got %v", types)
	}
}

func TestCategoryCreateDuplicateResolvesToExisting(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	first, err := h.categoryUC.Create(ctx, NewSaveCategoryReq("Hats", ""))
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}

	second, err := h.categoryUC.Create(ctx, NewSaveCategoryReq("Hats", "different"))
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}

	if second.Category != nil {
		t.Error("duplicate create must not persist a second record")
	}
	if second.Existing == nil || second.Existing.ID != first.Category.ID {
		t.Fatalf("expected redirect to first record %d, got %+v", first.Category.ID, second.Existing)
	}
	if second.Existing.Description != "" {
		t.Errorf("original description must stay unchanged, got %q", second.Existing.Description)
	}
	if len(h.store.categories) != 1 {
		t.Errorf("expected exactly one stored record, got %d", len(h.store.categories))
	}
}

func TestCategoryCreateValidation(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	res, err := h.categoryUC.Create(ctx, NewSaveCategoryReq("  ab ", ""))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(res.Violations) == 0 {
		t.Fatal("expected a name length violation")
	}
	if res.Violations[0].Field != "name" {
		t.Errorf("expected violation on 'name', got %q", res.Violations[0].Field)
	}
	if res.Fields["name"] != "ab" {
		t.Errorf("expected trimmed input echoed back, got %q", res.Fields["name"])
	}
	if len(h.store.categories) != 0 {
		t.Error("invalid submission must not persist")
	}
	if len(h.outbox.types()) != 0 {
		t.Error("invalid submission must not emit events")
	}
}

func TestCategoryCreateEscapesMarkup(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	res, err := h.categoryUC.Create(ctx, NewSaveCategoryReq("<b>Hats</b>", ""))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.Category == nil {
		t.Fatalf("expected created category, got %+v", res)
	}
	if res.Category.Name != "&lt;b&gt;Hats&lt;/b&gt;" {
		t.Errorf("expected escaped name, got %q", res.Category.Name)
	}
}

func TestCategoryDetailNotFound(t *testing.T) {
	h := newHarness()

	_, err := h.categoryUC.Detail(context.Background(), 42)
	if !errors.Is(err, e.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryUpdate(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	created, _ := h.categoryUC.Create(ctx, NewSaveCategoryReq("Hats", "old"))

	res, err := h.categoryUC.Update(ctx, created.Category.ID, NewSaveCategoryReq("Caps", "new"))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if res.Category.Name != "Caps" || res.Category.Description != "new" {
		t.Errorf("update not persisted: %+v", res.Category)
	}

	types := h.outbox.types()
	if len(types) != 2 || types[1] != CategoryUpdated {
		t.Errorf("expected category.updated event, got %v", types)
	}
}

func TestCategoryUpdateNotFound(t *testing.T) {
	h := newHarness()

	_, err := h.categoryUC.Update(context.Background(), 42, NewSaveCategoryReq("Hats", ""))
	if !errors.Is(err, e.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryDeleteBlockedByReferencingItems(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	created, _ := h.categoryUC.Create(ctx, NewSaveCategoryReq("Hats", ""))
	if _, err := h.itemUC.Create(ctx, &SaveItemReq{Name: "Fedora", CategoryName: "Hats", Price: "10"}); err != nil {
		t.Fatalf("item Create: %v", err)
	}

	res, err := h.categoryUC.Delete(ctx, created.Category.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if res.Deleted {
		t.Error("deletion must be blocked while items reference the category")
	}
	if len(res.Items) != 1 || res.Items[0].Name != "Fedora" {
		t.Errorf("expected the referencing item to be listed, got %+v", res.Items)
	}
	if len(h.store.categories) != 1 {
		t.Error("category must not be removed")
	}
}

func TestCategoryDeleteWithoutReferences(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	created, _ := h.categoryUC.Create(ctx, NewSaveCategoryReq("Hats", ""))

	res, err := h.categoryUC.Delete(ctx, created.Category.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !res.Deleted {
		t.Error("expected deletion to go through")
	}
	if len(h.store.categories) != 0 {
		t.Error("category must be removed")
	}

	types := h.outbox.types()
	if len(types) != 2 || types[1] != CategoryDeleted {
		t.Errorf("expected category.deleted event, got %v", types)
	}
}

func TestCategoryList(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	h.categoryUC.Create(ctx, NewSaveCategoryReq("Shoes", ""))
	h.categoryUC.Create(ctx, NewSaveCategoryReq("Hats", ""))

	res, err := h.categoryUC.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(res.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(res.Categories))
	}
	if res.Categories[0].Name != "Hats" || res.Categories[1].Name != "Shoes" {
		t.Errorf("expected name-ascending order, got %q, %q", res.Categories[0].Name, res.Categories[1].Name)
	}
}
