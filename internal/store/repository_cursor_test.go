// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/protonpass/ios-pass-sub006/internal/logger"
)

func newTestCursorRepo(t *testing.T) (*eventCursorRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &eventCursorRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetShareLastEventID_MissingCursorIsEmptyString(t *testing.T) {
	repo, mock, db := newTestCursorRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT last_event_id FROM share_events").
		WithArgs("acc-1", "s1").
		WillReturnError(sql.ErrNoRows)

	eventID, err := repo.GetShareLastEventID(context.Background(), "acc-1", "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eventID != "" {
		t.Errorf("expected empty cursor, got %q", eventID)
	}
}

func TestGetShareLastEventID_ReturnsStoredCursor(t *testing.T) {
	repo, mock, db := newTestCursorRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT last_event_id FROM share_events").
		WithArgs("acc-1", "s1").
		WillReturnRows(sqlmock.NewRows([]string{"last_event_id"}).AddRow("cursor-42"))

	eventID, err := repo.GetShareLastEventID(context.Background(), "acc-1", "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eventID != "cursor-42" {
		t.Errorf("expected cursor-42, got %q", eventID)
	}
}

func TestUpsertShareLastEventID(t *testing.T) {
	repo, mock, db := newTestCursorRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO share_events").
		WithArgs("acc-1", "s1", "cursor-43").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertShareLastEventID(context.Background(), "acc-1", "s1", "cursor-43"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetUserLastEventID_MissingCursorIsEmptyString(t *testing.T) {
	repo, mock, db := newTestCursorRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT last_event_id FROM user_events").
		WithArgs("acc-1").
		WillReturnError(sql.ErrNoRows)

	eventID, err := repo.GetUserLastEventID(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eventID != "" {
		t.Errorf("expected empty cursor, got %q", eventID)
	}
}

func TestUpsertUserLastEventID(t *testing.T) {
	repo, mock, db := newTestCursorRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO user_events").
		WithArgs("acc-1", "u-7").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertUserLastEventID(context.Background(), "acc-1", "u-7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
