package research

import (
	"context"
)

type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// Health reports component wiring for probes and dashboards.
//
//encore:api public path=/v1/research/health method=GET
func (s *Service) Health(ctx context.Context) (*HealthResponse, error) {
	status := func(ok bool) string {
		if ok {
			return "connected"
		}
		return "disconnected"
	}

	return &HealthResponse{
		Status: "ok",
		Services: map[string]string{
			"storage":   status(s.store != nil),
			"collector": status(s.collector != nil),
			"engine":    status(s.engine != nil),
			"ledger":    status(s.repo != nil),
		},
	}, nil
}
