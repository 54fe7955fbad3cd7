package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dicerhq/dicer-admin/internal/logger"
	"github.com/dicerhq/dicer-admin/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &accountRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var accountTestColumns = []string{
	"user_id", "name", "phone", "password", "secret_code",
	"device_ids", "ble_ids", "status", "token_version", "last_run_location", "created_at",
}

func accountRow(userID int64, phone, deviceJSON, bleJSON, status string, tokenVersion int) *sqlmock.Rows {
	return sqlmock.
		NewRows(accountTestColumns).
		AddRow(userID, "John", phone, "a1b2c3", "12345", deviceJSON, bleJSON, status, tokenVersion, nil, time.Now())
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()
	account := models.Account{
		Name:       "John",
		Phone:      "+15550001111",
		Password:   "a1b2c3",
		SecretCode: "12345",
	}

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(account.Name, account.Phone, account.Password, account.SecretCode).
		WillReturnRows(accountRow(1001, account.Phone, "[]", "[]", models.StatusInactive, 1))

	created, err := repo.CreateAccount(ctx, account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1001 {
		t.Errorf("expected UserID=1001, got %d", created.UserID)
	}
	if created.Status != models.StatusInactive {
		t.Errorf("expected status %s, got %s", models.StatusInactive, created.Status)
	}
	if len(created.DeviceIDs) != 0 {
		t.Errorf("expected no device ids, got %v", created.DeviceIDs)
	}
}

func TestCreateAccount_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAccount(ctx, models.Account{Phone: "+15550001111"})
	if !errors.Is(err, ErrPhoneAlreadyExists) {
		t.Fatalf("expected ErrPhoneAlreadyExists, got %v", err)
	}
}

func TestCreateAccount_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateAccount(ctx, models.Account{Phone: "+15550001111"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateAccount_ConnectionFailure(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateAccount(ctx, models.Account{Phone: "+15550001111"})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestFindAccountByID_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(1001)).
		WillReturnRows(accountRow(1001, "+15550001111", `["dev-1"]`, `["BLE00001"]`, models.StatusActive, 2))

	found, err := repo.FindAccountByID(ctx, 1001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Phone != "+15550001111" {
		t.Errorf("expected phone +15550001111, got %s", found.Phone)
	}
	if len(found.DeviceIDs) != 1 || found.DeviceIDs[0] != "dev-1" {
		t.Errorf("expected device ids [dev-1], got %v", found.DeviceIDs)
	}
	if found.TokenVersion != 2 {
		t.Errorf("expected token version 2, got %d", found.TokenVersion)
	}
}

func TestFindAccountByID_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(accountTestColumns))

	_, err := repo.FindAccountByID(ctx, 404)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestFindAccountByPhone_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("+15550009999").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAccountByPhone(ctx, "+15550009999")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestFindAccountByDeviceID_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("dev-1").
		WillReturnRows(accountRow(1001, "+15550001111", `["dev-1"]`, "[]", models.StatusActive, 1))

	found, err := repo.FindAccountByDeviceID(ctx, "dev-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 1001 {
		t.Errorf("expected UserID=1001, got %d", found.UserID)
	}
}

func TestUpdateStatus_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(1001), models.StatusActive, "dev-1").
		WillReturnRows(accountRow(1001, "+15550001111", `["dev-1"]`, "[]", models.StatusActive, 1))

	updated, err := repo.UpdateStatus(ctx, 1001, models.StatusActive, "dev-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusActive {
		t.Errorf("expected status Active, got %s", updated.Status)
	}
}

func TestUpdateStatus_AccountNotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(404), models.StatusActive, "").
		WillReturnRows(sqlmock.NewRows(accountTestColumns))

	_, err := repo.UpdateStatus(ctx, 404, models.StatusActive, "")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAddDeviceID_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(1001), "dev-2").
		WillReturnRows(accountRow(1001, "+15550001111", `["dev-1","dev-2"]`, "[]", models.StatusActive, 1))

	updated, err := repo.AddDeviceID(ctx, 1001, "dev-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.DeviceIDs) != 2 {
		t.Errorf("expected 2 device ids, got %v", updated.DeviceIDs)
	}
}

func TestAddDeviceID_AlreadyBound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	// zero rows from the conditional update, follow-up lookup finds the account
	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(1001), "dev-1").
		WillReturnRows(sqlmock.NewRows(accountTestColumns))
	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(1001)).
		WillReturnRows(accountRow(1001, "+15550001111", `["dev-1"]`, "[]", models.StatusActive, 1))

	_, err := repo.AddDeviceID(ctx, 1001, "dev-1")
	if !errors.Is(err, ErrDeviceAlreadyBound) {
		t.Fatalf("expected ErrDeviceAlreadyBound, got %v", err)
	}
}

func TestAddDeviceID_AccountNotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(404), "dev-1").
		WillReturnRows(sqlmock.NewRows(accountTestColumns))
	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(accountTestColumns))

	_, err := repo.AddDeviceID(ctx, 404, "dev-1")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestRemoveDeviceID_NotBound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(1001), "dev-9").
		WillReturnRows(sqlmock.NewRows(accountTestColumns))
	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(1001)).
		WillReturnRows(accountRow(1001, "+15550001111", `["dev-1"]`, "[]", models.StatusActive, 1))

	_, err := repo.RemoveDeviceID(ctx, 1001, "dev-9")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
}

func TestAddBleID_AlreadyBound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(1001), "BLE00001").
		WillReturnRows(sqlmock.NewRows(accountTestColumns))
	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(1001)).
		WillReturnRows(accountRow(1001, "+15550001111", "[]", `["BLE00001"]`, models.StatusActive, 1))

	_, err := repo.AddBleID(ctx, 1001, "BLE00001")
	if !errors.Is(err, ErrBleAlreadyBound) {
		t.Fatalf("expected ErrBleAlreadyBound, got %v", err)
	}
}

func TestRemoveBleID_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(1001), "BLE00001").
		WillReturnRows(accountRow(1001, "+15550001111", "[]", "[]", models.StatusActive, 1))

	updated, err := repo.RemoveBleID(ctx, 1001, "BLE00001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.BleIDs) != 0 {
		t.Errorf("expected no ble ids, got %v", updated.BleIDs)
	}
}

func TestUpdatePassword_BumpsTokenVersion(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(1001), "z9y8x7").
		WillReturnRows(accountRow(1001, "+15550001111", "[]", "[]", models.StatusActive, 3))

	updated, err := repo.UpdatePassword(ctx, 1001, "z9y8x7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.TokenVersion != 3 {
		t.Errorf("expected token version 3, got %d", updated.TokenVersion)
	}
}

func TestUpdateSecretCode_AccountNotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE accounts").
		WithArgs(int64(404), "54321").
		WillReturnRows(sqlmock.NewRows(accountTestColumns))

	_, err := repo.UpdateSecretCode(ctx, 404, "54321")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestUpdateLastRunLocation_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE accounts").
		WithArgs(int64(404), "Berlin").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateLastRunLocation(ctx, 404, "Berlin")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestDeleteAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM accounts").
		WithArgs(int64(1001)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteAccount(ctx, 1001); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteAccount_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM accounts").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteAccount(ctx, 404)
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestListAccounts_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(accountTestColumns).
		AddRow(1001, "John", "+15550001111", "a1b2c3", "12345", "[]", "[]", models.StatusActive, 1, nil, time.Now()).
		AddRow(1002, "Jane", "+15550002222", "d4e5f6", "67890", `["dev-1"]`, "[]", models.StatusInactive, 1, "Berlin", time.Now())

	mock.ExpectQuery("SELECT user_id").
		WillReturnRows(rows)

	accounts, err := repo.ListAccounts(ctx, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[1].LastRunLocation != "Berlin" {
		t.Errorf("expected last run location Berlin, got %q", accounts[1].LastRunLocation)
	}
}

func TestCountAccounts_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	total, err := repo.CountAccounts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 42 {
		t.Errorf("expected 42 accounts, got %d", total)
	}
}
