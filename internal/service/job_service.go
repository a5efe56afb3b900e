package service

import (
	"log"
	"time"

	"movingco/internal/repository"
)

// Leads older than this are considered stale and purged.
const leadRetention = 180 * 24 * time.Hour

type JobService struct {
	Leads *repository.QuoteLeadRepository
}

func NewJobService(leads *repository.QuoteLeadRepository) *JobService {
	return &JobService{Leads: leads}
}

// PurgeStaleLeads deletes quote leads past the retention window.
func (s *JobService) PurgeStaleLeads() error {
	log.Println("Cron Job: purging stale quote leads...")

	purged, err := s.Leads.DeleteOlderThan(time.Now().Add(-leadRetention))
	if err != nil {
		return err
	}
	if purged == 0 {
		log.Println("Cron Job: no stale quote leads found.")
		return nil
	}
	log.Printf("Cron Job: purged %d stale quote leads.", purged)
	return nil
}
