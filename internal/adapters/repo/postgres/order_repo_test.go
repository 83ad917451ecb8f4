package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peace-Corp/modoo-shop-admin/internal/domain"
)

func TestOrderRepo_UpdateStatus(t *testing.T) {
	db, mock := newTestDB(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET "status"=$1,"updated_at"=$2 WHERE id = $3`)).
		WithArgs("shipped", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewOrderRepo(db).UpdateStatus(context.Background(), id, domain.OrderStatusShipped)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_UpdateStatusNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders" SET "status"=$1,"updated_at"=$2 WHERE id = $3`)).
		WithArgs("cancelled", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := NewOrderRepo(db).UpdateStatus(context.Background(), id, domain.OrderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_ListInRange(t *testing.T) {
	db, mock := newTestDB(t)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" WHERE created_at >= $1 AND created_at < $2 ORDER BY created_at asc`)).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "total", "status", "created_at"}).
			AddRow(id.String(), int64(45000), "pending", from.Add(36*time.Hour)))

	list, err := NewOrderRepo(db).ListInRange(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, int64(45000), list[0].Total)
	assert.Equal(t, domain.OrderStatusPending, list[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
