// Package worker runs background maintenance for the API server.
package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
)

// Refresher reloads a zone database and reports how many zones it lists
type Refresher interface {
	Refresh() (int, error)
}

// ZoneRefresher reloads the zone database on a cron schedule so that
// zoneinfo updates on the host are picked up without a restart
type ZoneRefresher struct {
	source   Refresher
	schedule string
	logger   *logger.Logger

	mu        sync.Mutex
	scheduler *cron.Cron
	lastCount int
}

// NewZoneRefresher creates a refresher. schedule is a standard five-field
// cron spec or a descriptor such as "@daily".
func NewZoneRefresher(source Refresher, schedule string, log *logger.Logger) *ZoneRefresher {
	return &ZoneRefresher{
		source:   source,
		schedule: schedule,
		logger:   log.WithComponent("zone-refresher"),
	}
}

// Start schedules the refresh and stops it when ctx is done
func (r *ZoneRefresher) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.scheduler != nil {
		return fmt.Errorf("zone refresher is already running")
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(r.schedule, r.RunOnce); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", r.schedule, err)
	}
	scheduler.Start()
	r.scheduler = scheduler

	r.logger.With("schedule", r.schedule).Info("Zone refresher started")

	go func() {
		<-ctx.Done()
		r.Stop()
	}()
	return nil
}

// Stop cancels the schedule and waits for a running refresh to finish
func (r *ZoneRefresher) Stop() {
	r.mu.Lock()
	scheduler := r.scheduler
	r.scheduler = nil
	r.mu.Unlock()

	if scheduler == nil {
		return
	}
	<-scheduler.Stop().Done()
	r.logger.Info("Zone refresher stopped")
}

// RunOnce reloads the database now
func (r *ZoneRefresher) RunOnce() {
	count, err := r.source.Refresh()
	if err != nil {
		r.logger.ErrorWithErr(err, "Failed to refresh zone database")
		return
	}

	r.mu.Lock()
	previous := r.lastCount
	r.lastCount = count
	r.mu.Unlock()

	r.logger.WithFields(map[string]interface{}{
		"zones":    count,
		"previous": previous,
	}).Info("Zone database refreshed")
}

// LastCount returns the zone count seen by the last successful refresh
func (r *ZoneRefresher) LastCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastCount
}
