// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/protonpass/ios-pass-sub006/internal/logger"
	"github.com/protonpass/ios-pass-sub006/models"
)

func newTestShareRepo(t *testing.T) (*shareRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &shareRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetShares_Success(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"account_id", "share_id", "vault_id", "permission", "expire_time", "key_rotation", "content", "create_time", "modify_time"}).
		AddRow("acc-1", "s1", "v1", 7, 0, 2, "blob", 100, 200).
		AddRow("acc-1", "s2", "v2", 1, 0, 1, "blob2", 101, 201)

	mock.ExpectQuery("SELECT .+ FROM shares").
		WithArgs("acc-1").
		WillReturnRows(rows)

	shares, err := repo.GetShares(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shares) != 2 {
		t.Fatalf("expected 2 shares, got %d", len(shares))
	}
	if shares[0].ShareID != "s1" || shares[0].KeyRotation != 2 {
		t.Errorf("unexpected first share: %+v", shares[0])
	}
}

func TestGetShares_Empty(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM shares").
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "share_id", "vault_id", "permission", "expire_time", "key_rotation", "content", "create_time", "modify_time"}))

	shares, err := repo.GetShares(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shares) != 0 {
		t.Fatalf("expected no shares, got %d", len(shares))
	}
}

func TestUpsertShares_ExecutesPerShare(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	shares := []models.Share{
		{ShareID: "s1", VaultID: "v1", Permission: 7, KeyRotation: 1},
		{ShareID: "s2", VaultID: "v2", Permission: 1, KeyRotation: 3},
	}

	mock.ExpectExec("INSERT INTO shares").
		WithArgs("acc-1", "s1", "v1", int64(7), int64(0), int64(1), "", int64(0), int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO shares").
		WithArgs("acc-1", "s2", "v2", int64(1), int64(0), int64(3), "", int64(0), int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpsertShares(context.Background(), "acc-1", shares); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteShareLocally_RemovesEverythingInOneTransaction(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM shares").
		WithArgs("acc-1", "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM items").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM share_events").
		WithArgs("acc-1", "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM share_keys").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := repo.DeleteShareLocally(context.Background(), "acc-1", "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteShareLocally_RollsBackOnFailure(t *testing.T) {
	repo, mock, db := newTestShareRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM shares").
		WithArgs("acc-1", "s1").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	if err := repo.DeleteShareLocally(context.Background(), "acc-1", "s1"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
