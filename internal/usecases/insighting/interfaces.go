package insighting

import (
	"context"

	"github.com/vfg2006/instagram-insights-api/internal/catalog"
	"github.com/vfg2006/instagram-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/insighter_mock.go -package=mocks

// Insighter define a consulta de insights de conta e o catálogo usado na validação
type Insighter interface {
	// GetInsights valida a requisição e repassa a resposta da Graph API sem alterações
	GetInsights(ctx context.Context, req *domain.InsightsRequest) (domain.Document, error)

	// SampleRequests retorna exemplos de consulta aceitos pela validação
	SampleRequests() map[string]domain.SampleRequest

	Metrics() map[catalog.Category]map[string]catalog.MetricInfo
	Breakdowns() map[string]catalog.BreakdownInfo
}
