package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront-api/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const Version = "1.0.0"

// Pinger is any dependency that can report liveness, e.g. the mongo catalog store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Endpoints struct {
	// nil when the catalog lives in postgres
	CatalogStore Pinger
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			// cache and rate limiting degrade, the catalog still serves
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		},
	}

	if endpoints != nil && endpoints.CatalogStore != nil {
		checks = append(checks, health.Config{
			Name:      "mongo",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check:     endpoints.CatalogStore.Ping,
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
