package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/fileblock/internal/common"
	"github.com/dmitrijs2005/fileblock/internal/extension"
	"github.com/dmitrijs2005/fileblock/internal/server/models"
)

func TestCustomList_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{c: &fakeCustomRepo{
		listOut: []*models.CustomExtension{{ID: "id-1", UserID: "u1", Name: "zip"}},
	}}
	s := NewCustomExtensionService(db, rm)

	got, err := s.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "zip" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestAdd_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeCustomRepo{countOut: 3, listOut: []*models.CustomExtension{
		{ID: "id-1", UserID: "u1", Name: "rar"},
	}}
	s := NewCustomExtensionService(db, &fakeRepoManager{c: repo})

	got, err := s.Add(context.Background(), "u1", " .ZIP ")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got.Name != "zip" {
		t.Fatalf("name not normalized: %q", got.Name)
	}
	if got.ID == "" {
		t.Fatal("id not assigned")
	}
	if got.CreatedAt.IsZero() || time.Since(got.CreatedAt) > time.Minute {
		t.Fatalf("createdAt not set: %v", got.CreatedAt)
	}
	if repo.created == nil || repo.created.UserID != "u1" {
		t.Fatalf("row not persisted for user: %+v", repo.created)
	}
}

func TestAdd_ValidationFailureDoesNotPersist(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	tests := []struct {
		name    string
		raw     string
		repo    *fakeCustomRepo
		wantErr error
	}{
		{"empty", "   ", &fakeCustomRepo{}, extension.ErrNameRequired},
		{"bad charset", "exe.exe", &fakeCustomRepo{}, extension.ErrBadFormat},
		{"too long", strings.Repeat("a", extension.MaxNameLength+1), &fakeCustomRepo{}, extension.ErrNameTooLong},
		{
			"cap reached",
			"zip",
			&fakeCustomRepo{countOut: extension.MaxCustomPerUser},
			extension.ErrLimitReached,
		},
		{
			"duplicate case-insensitive",
			"ZIP",
			&fakeCustomRepo{countOut: 1, listOut: []*models.CustomExtension{{Name: "zip"}}},
			extension.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCustomExtensionService(db, &fakeRepoManager{c: tt.repo})

			_, err := s.Add(context.Background(), "u1", tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
			if tt.repo.created != nil {
				t.Fatalf("row persisted despite validation failure: %+v", tt.repo.created)
			}
		})
	}
}

func TestAdd_CountError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeCustomRepo{countErr: errors.New("db down")}
	s := NewCustomExtensionService(db, &fakeRepoManager{c: repo})

	_, err := s.Add(context.Background(), "u1", "zip")
	if err == nil || extension.IsValidationError(err) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeCustomRepo{findOut: &models.CustomExtension{ID: "id-1", UserID: "u1", Name: "zip"}}
	s := NewCustomExtensionService(db, &fakeRepoManager{c: repo})

	if err := s.Delete(context.Background(), "u1", "id-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if repo.deletedID != "id-1" {
		t.Fatalf("wrong id deleted: %q", repo.deletedID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestDelete_NotFoundOrForeignOwner(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeCustomRepo{findErr: common.ErrorNotFound}
	s := NewCustomExtensionService(db, &fakeRepoManager{c: repo})

	err := s.Delete(context.Background(), "u2", "id-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
	if repo.deletedID != "" {
		t.Fatalf("row deleted despite lookup failure: %q", repo.deletedID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
