package metrics

import (
	"time"

	"media-picker/internal/logging"
)

// StatsProvider interface for collecting stats
type StatsProvider interface {
	GetStats() (Stats, error)
}

// Stats holds the current temp directory statistics
type Stats struct {
	OwnedFiles int
	OwnedBytes int64
}

// Collector periodically collects and updates metrics
type Collector struct {
	statsProvider StatsProvider
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.statsProvider == nil {
		return
	}

	stats, err := c.statsProvider.GetStats()
	if err != nil {
		logging.Warn("Metrics collection failed: %v", err)
		return
	}

	TempFilesCount.Set(float64(stats.OwnedFiles))
	TempFilesBytes.Set(float64(stats.OwnedBytes))

	logging.Debug("Metrics collected: temp files=%d, bytes=%d", stats.OwnedFiles, stats.OwnedBytes)
}
