//go:build integration

package mongodb_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/bank_transaction_service/internal/adapters/database/mongodb"
	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/SscSPs/bank_transaction_service/internal/core/domain"
	"github.com/SscSPs/bank_transaction_service/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupMongo(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

func TestIntegration_MongoTransactionRepository_Lifecycle(t *testing.T) {
	uri := setupMongo(t)
	ctx := context.Background()

	client, err := database.NewMongoClient(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { database.CloseMongoClient(ctx, client) })

	repo := mongodb.NewMongoTransactionRepository(client.Database("transactions_test"))

	tx := domain.Transaction{
		ID:               "txn_1",
		CustomerID:       "C1",
		ProductID:        "P1",
		AvailableBalance: decimal.RequireFromString("99.90"),
	}
	require.NoError(t, repo.Save(ctx, tx))

	got, err := repo.FindByID(ctx, "txn_1")
	require.NoError(t, err)
	assert.Equal(t, "C1", got.CustomerID)
	assert.True(t, got.AvailableBalance.Equal(tx.AvailableBalance))
	assert.Nil(t, got.RetirementDateFixedTerm)

	tx.ProductID = "P2"
	require.NoError(t, repo.Save(ctx, tx))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "P2", all[0].ProductID)

	require.NoError(t, repo.Delete(ctx, "txn_1"))
	_, err = repo.FindByID(ctx, "txn_1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "txn_1"), apperrors.ErrNotFound)
}
