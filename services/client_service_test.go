package services

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"digicheese-backend/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Client{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func str(s string) *string { return &s }

func TestCreateAssignsID(t *testing.T) {
	svc := NewClientService(setupTestDB(t))

	first, err := svc.Create(models.ClientCreate{Nom: "Dupont", Prenom: "Jean", Adresse: "123 Rue Exemple"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected generated id")
	}
	if first.Newsletter != 0 {
		t.Fatalf("expected newsletter default 0, got %d", first.Newsletter)
	}

	second, err := svc.Create(models.ClientCreate{Nom: "Martin", Prenom: "Paul", Adresse: "456 Rue Exemple"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("expected distinct ids, both %d", first.ID)
	}
}

func TestGetByIDAbsent(t *testing.T) {
	svc := NewClientService(setupTestDB(t))

	_, err := svc.GetByID(9999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestPatchTouchesOnlySuppliedFields(t *testing.T) {
	svc := NewClientService(setupTestDB(t))

	created, err := svc.Create(models.ClientCreate{
		Nom:     "Martin",
		Prenom:  "Paul",
		Adresse: "456 Rue Exemple",
		Tel:     str("0102030405"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Patch(created.ID, map[string]any{"prenom": "Pierre"})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if updated.Prenom != "Pierre" {
		t.Fatalf("expected prenom Pierre, got %q", updated.Prenom)
	}
	if updated.Nom != "Martin" || updated.Adresse != "456 Rue Exemple" {
		t.Fatal("patch must leave absent fields unchanged")
	}
	if updated.Tel == nil || *updated.Tel != "0102030405" {
		t.Fatal("patch must leave absent nullable fields unchanged")
	}
}

func TestPatchExplicitNullClearsColumn(t *testing.T) {
	svc := NewClientService(setupTestDB(t))

	created, err := svc.Create(models.ClientCreate{
		Nom:     "Durand",
		Prenom:  "Anne",
		Adresse: "1 Place du Marché",
		Email:   str("anne@example.com"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Patch(created.ID, map[string]any{"email": nil})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if updated.Email != nil {
		t.Fatalf("expected email cleared, got %q", *updated.Email)
	}

	reloaded, err := svc.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if reloaded.Email != nil {
		t.Fatal("expected NULL email after reload")
	}
}

func TestPatchAbsentID(t *testing.T) {
	svc := NewClientService(setupTestDB(t))

	_, err := svc.Patch(42, map[string]any{"prenom": "X"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteReturnsLastKnownValues(t *testing.T) {
	svc := NewClientService(setupTestDB(t))

	created, err := svc.Create(models.ClientCreate{Nom: "Petit", Prenom: "Luc", Adresse: "9 Rue Haute"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Nom != "Petit" || deleted.ID != created.ID {
		t.Fatal("delete must return the removed row's values")
	}

	_, err = svc.GetByID(created.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected row gone, got %v", err)
	}

	_, err = svc.Delete(created.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on second delete, got %v", err)
	}
}

func TestGetAllNaturalOrder(t *testing.T) {
	svc := NewClientService(setupTestDB(t))

	for _, nom := range []string{"A", "B", "C"} {
		if _, err := svc.Create(models.ClientCreate{Nom: nom, Prenom: "P", Adresse: "Adr"}); err != nil {
			t.Fatalf("create %s: %v", nom, err)
		}
	}

	clients, err := svc.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(clients) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(clients))
	}
}
