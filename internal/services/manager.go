package services

import (
	"time"

	"life-spheres/internal/database"
)

type ServiceManager struct {
	Sample     *SampleService
	Insight    *InsightService
	repository *database.Repository
}

func NewServiceManager(db *database.Database, loc *time.Location, windowDays int) *ServiceManager {
	repo := database.NewRepository(db)

	return &ServiceManager{
		Sample:     NewSampleService(repo),
		Insight:    NewInsightService(repo, loc, windowDays),
		repository: repo,
	}
}
