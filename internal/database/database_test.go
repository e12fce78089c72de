package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockDB, mock, err := sqlmock.NewWithDSN("connect-success", sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = mockDB.Close() }()

		mock.ExpectPing()

		db, err := Connect(ctx, Config{
			Driver:             "sqlmock",
			ConnectionString:   "connect-success",
			MaxOpenConnections: 5,
			MaxIdleConnections: 2,
			ConnMaxLifetime:    time.Hour,
		})
		require.NoError(t, err)
		require.NotNil(t, db)
		assert.Equal(t, 5, db.Stats().MaxOpenConnections)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("PingError", func(t *testing.T) {
		mockDB, mock, err := sqlmock.NewWithDSN("connect-ping-error", sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer func() { _ = mockDB.Close() }()

		mock.ExpectPing().WillReturnError(assert.AnError)

		db, err := Connect(ctx, Config{Driver: "sqlmock", ConnectionString: "connect-ping-error"})
		assert.Nil(t, db)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to ping database")
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		db, err := Connect(ctx, Config{
			Driver:             "invalid",
			ConnectionString:   "invalid",
			MaxOpenConnections: 10,
			MaxIdleConnections: 5,
			ConnMaxLifetime:    time.Hour,
		})
		assert.Error(t, err)
		assert.Nil(t, db)
		assert.Contains(t, err.Error(), "sql: unknown driver")
	})
}
