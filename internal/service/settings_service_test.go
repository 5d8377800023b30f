package service_test

import (
	"context"
	"testing"

	"github.com/blog-platform-api/internal/models"
)

func TestSettingsService_Get_DefaultsWhenAbsent(t *testing.T) {
	repos, _, _, _, _ := testRepos()
	svc := newTestServices(repos).Settings

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings == nil {
		t.Fatal("Get must never return nil settings")
	}

	if settings.SiteTitle != "Your Site Title" {
		t.Errorf("Expected default site title, got %q", settings.SiteTitle)
	}
	if settings.PostsPerPage != 10 {
		t.Errorf("Expected 10 posts per page, got %d", settings.PostsPerPage)
	}
	if !settings.AllowComments {
		t.Error("Comments should be allowed by default")
	}
}

func TestSettingsService_AddOrUpdate(t *testing.T) {
	repos, _, _, _, settingsRepo := testRepos()
	svc := newTestServices(repos).Settings
	ctx := context.Background()

	err := svc.AddOrUpdate(ctx, &models.Settings{
		SiteTitle:        "My Blog",
		Tagline:          "words about things",
		PostsPerPage:     5,
		AllowComments:    true,
		ModerateComments: true,
	})
	if err != nil {
		t.Fatalf("AddOrUpdate failed: %v", err)
	}

	stored, _ := svc.Get(ctx)
	if stored.SiteTitle != "My Blog" || stored.PostsPerPage != 5 {
		t.Errorf("Settings not persisted: %+v", stored)
	}
	if stored.ID == "" {
		t.Error("First save should assign an id")
	}
	if stored.LastModifiedDate.IsZero() {
		t.Error("Save should stamp the modification time")
	}

	// A second save updates the same record in place.
	firstID := stored.ID
	stored.SiteTitle = "Renamed Blog"
	if err := svc.AddOrUpdate(ctx, stored); err != nil {
		t.Fatalf("Second AddOrUpdate failed: %v", err)
	}

	updated, _ := svc.Get(ctx)
	if updated.ID != firstID {
		t.Errorf("Settings id changed across saves: %s vs %s", updated.ID, firstID)
	}
	if updated.SiteTitle != "Renamed Blog" {
		t.Errorf("Expected renamed title, got %q", updated.SiteTitle)
	}
	if settingsRepo.UpsertCalls != 2 {
		t.Errorf("Expected 2 upserts, got %d", settingsRepo.UpsertCalls)
	}
}

func TestSettingsService_AddOrUpdate_ReusesExistingID(t *testing.T) {
	repos, _, _, _, settingsRepo := testRepos()
	svc := newTestServices(repos).Settings
	ctx := context.Background()

	settingsRepo.Settings = &models.Settings{ID: "existing-id", SiteTitle: "Old", PostsPerPage: 10}

	if err := svc.AddOrUpdate(ctx, &models.Settings{SiteTitle: "New", PostsPerPage: 10}); err != nil {
		t.Fatalf("AddOrUpdate failed: %v", err)
	}

	if settingsRepo.Settings.ID != "existing-id" {
		t.Errorf("Save without an id should target the existing row, got %s", settingsRepo.Settings.ID)
	}
}
