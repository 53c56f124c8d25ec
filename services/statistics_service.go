package services

import (
	"pifah-api/models"

	"gorm.io/gorm"
)

// ProjectRef is the per-project tuple included in country statistics.
// Status is only populated in the privileged variant.
type ProjectRef struct {
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Pillar    string `json:"pillar"`
	Status    string `json:"status,omitempty"`
}

// CountryStatistic is the per-country rollup rendered on the map.
type CountryStatistic struct {
	Country       string         `json:"country"`
	TotalProjects int            `json:"totalProjects"`
	PillarCounts  map[string]int `json:"pillarCounts"`
	StatusCounts  map[string]int `json:"statusCounts,omitempty"`
	DisplayStatus string         `json:"displayStatus,omitempty"`
	Projects      []ProjectRef   `json:"projects"`
}

// PillarSplit separates approved from not-yet-approved projects in a pillar.
type PillarSplit struct {
	Approved    int `json:"approved"`
	NotApproved int `json:"notApproved"`
}

// Overview is the platform-wide statistics payload.
type Overview struct {
	TotalProjects       int                    `json:"totalProjects"`
	ApprovedProjects    int                    `json:"approvedProjects"`
	PendingProjects     int                    `json:"pendingProjects"`
	UnderReviewProjects int                    `json:"underReviewProjects"`
	RejectedProjects    int                    `json:"rejectedProjects"`
	PillarBreakdown     map[string]PillarSplit `json:"pillarBreakdown"`
}

// StatisticsService reads the project collection and computes rollups.
// Everything is recomputed per request; at hundreds of projects a single
// pass is cheaper than keeping a materialized view consistent.
type StatisticsService struct {
	db *gorm.DB
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{db: db}
}

// PublicCountryStatistics aggregates approved projects only.
func (s *StatisticsService) PublicCountryStatistics() ([]CountryStatistic, error) {
	var projects []models.Project
	if err := s.db.Where("status = ?", models.StatusApproved).
		Order("approved_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return CountryStatistics(projects, false), nil
}

// PrivilegedCountryStatistics aggregates every project regardless of status.
func (s *StatisticsService) PrivilegedCountryStatistics() ([]CountryStatistic, error) {
	var projects []models.Project
	if err := s.db.Order("create_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return CountryStatistics(projects, true), nil
}

// OverviewStatistics aggregates every project into the platform overview.
func (s *StatisticsService) OverviewStatistics() (Overview, error) {
	var projects []models.Project
	if err := s.db.Find(&projects).Error; err != nil {
		return Overview{}, err
	}
	return ComputeOverview(projects), nil
}

// CountryStatistics groups projects by country in a single pass.
// Countries appear in order of first encounter, as do pillar keys.
func CountryStatistics(projects []models.Project, privileged bool) []CountryStatistic {
	stats := make([]CountryStatistic, 0)
	index := make(map[string]int)

	for _, p := range projects {
		i, ok := index[p.Country]
		if !ok {
			i = len(stats)
			index[p.Country] = i
			stat := CountryStatistic{
				Country:      p.Country,
				PillarCounts: make(map[string]int),
				Projects:     make([]ProjectRef, 0),
			}
			if privileged {
				stat.StatusCounts = make(map[string]int)
			}
			stats = append(stats, stat)
		}

		stats[i].TotalProjects++
		stats[i].PillarCounts[p.PifahPillar]++

		ref := ProjectRef{
			ProjectID: p.ProjectID,
			Title:     p.ProjectTitle,
			Pillar:    p.PifahPillar,
		}
		if privileged {
			stats[i].StatusCounts[p.Status]++
			ref.Status = p.Status
		}
		stats[i].Projects = append(stats[i].Projects, ref)
	}

	if privileged {
		for i := range stats {
			stats[i].DisplayStatus = DisplayStatus(stats[i].StatusCounts)
		}
	}
	return stats
}

// displayStatusPriority orders the map color decision when a country has
// projects in several statuses: any rejection colors the country as
// rejected, then pending, then under_review, then approved. UI policy,
// reproduced exactly from the original map.
var displayStatusPriority = []string{
	models.StatusRejected,
	models.StatusPending,
	models.StatusUnderReview,
	models.StatusApproved,
}

// DisplayStatus picks the status that colors a country on the
// privileged map view.
func DisplayStatus(statusCounts map[string]int) string {
	for _, status := range displayStatusPriority {
		if statusCounts[status] > 0 {
			return status
		}
	}
	return ""
}

// ComputeOverview tallies status counts and the per-pillar
// approved/not-approved split in one pass. Every pillar appears in the
// breakdown even with zero projects.
func ComputeOverview(projects []models.Project) Overview {
	overview := Overview{
		PillarBreakdown: make(map[string]PillarSplit, len(models.Pillars)),
	}
	for _, pillar := range models.Pillars {
		overview.PillarBreakdown[pillar] = PillarSplit{}
	}

	for _, p := range projects {
		overview.TotalProjects++
		switch p.Status {
		case models.StatusApproved:
			overview.ApprovedProjects++
		case models.StatusPending:
			overview.PendingProjects++
		case models.StatusUnderReview:
			overview.UnderReviewProjects++
		case models.StatusRejected:
			overview.RejectedProjects++
		}

		split := overview.PillarBreakdown[p.PifahPillar]
		if p.Status == models.StatusApproved {
			split.Approved++
		} else {
			split.NotApproved++
		}
		overview.PillarBreakdown[p.PifahPillar] = split
	}
	return overview
}
