package workers

import (
	"github.com/MKhiriev/go-resource-sync/internal/config"
	"github.com/MKhiriev/go-resource-sync/internal/logger"
	"github.com/MKhiriev/go-resource-sync/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers wires the application's background workers. Currently that is
// the replay janitor, which purges expired upload response snapshots.
func NewWorkers(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newReplayJanitor(storages.ClientStateRepository, cfg.Workers.JanitorInterval, cfg.Sync.ReplayRetention, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
