package repository

import (
	"go.uber.org/zap"

	"github.com/rupeebooks/backend/internal/domain/ledger"
	"github.com/rupeebooks/backend/internal/platform/dynamodb/client"
)

// Factory creates repository instances
type Factory struct {
	client    client.Client
	tableName string
	logger    *zap.Logger
}

// NewFactory creates a new repository factory
func NewFactory(client client.Client, tableName string, logger *zap.Logger) *Factory {
	return &Factory{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// LedgerRepository returns an implementation of the ledger.Store interface
func (f *Factory) LedgerRepository() ledger.Store {
	return NewDynamoDBLedgerRepository(f.client, f.tableName, f.logger)
}
