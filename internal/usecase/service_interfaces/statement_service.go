package service_interfaces

import (
	"context"

	"github.com/sthwalo/acc-sub020/internal/domain"
)

type StatementService interface {
	Ingest(ctx context.Context, batch domain.StatementBatch) (domain.IngestReport, error)
	IngestAll(ctx context.Context, batches []domain.StatementBatch) ([]domain.IngestReport, error)
}
