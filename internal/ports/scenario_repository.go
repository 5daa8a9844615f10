package ports

import (
	"context"

	"github.com/bnema/malaria-prevalence/internal/domain"
)

type ScenarioRepository interface {
	Load(ctx context.Context) (domain.Scenario, error)
	Save(ctx context.Context, scenario domain.Scenario) error
}
