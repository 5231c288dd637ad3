package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled background jobs
type CronService struct {
	cron    *cron.Cron
	metrics *MetricsService
}

// NewCronService creates a new cron service
func NewCronService(metrics *MetricsService) *CronService {
	return &CronService{
		cron:    cron.New(),
		metrics: metrics,
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() {
	// Daily pipeline summary at 08:30
	_, err := s.cron.AddFunc("30 8 * * *", s.logDailySummary)
	if err != nil {
		log.Printf("⚠️ Failed to schedule daily summary: %v", err)
		return
	}

	s.cron.Start()
	log.Println("✅ Cron service started (daily summary 08:30)")
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Cron service stopped")
}

// logDailySummary logs the current loan pipeline counts
func (s *CronService) logDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	metrics, err := s.metrics.GetAdminMetrics(ctx)
	if err != nil {
		log.Printf("⚠️ Daily summary failed: %v", err)
		return
	}

	log.Printf("📊 Daily summary: %d loans total, %d submitted, %d approved, %d rejected",
		metrics.Loans, metrics.Submitted, metrics.Approved, metrics.Rejected)
}
