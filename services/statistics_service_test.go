package services

import (
	"database/sql/driver"
	"regexp"
	"testing"

	"pifah-api/models"
)

func project(country, pillar, status string) models.Project {
	return models.Project{
		ProjectID:    country + "-" + pillar + "-" + status,
		ProjectTitle: pillar + " in " + country,
		Country:      country,
		PifahPillar:  pillar,
		Status:       status,
	}
}

func TestCountryStatisticsPublicVariant(t *testing.T) {
	// The public variant is fed approved projects only; one country, one
	// pillar, one project.
	projects := []models.Project{
		project("Kenya", models.PillarHealthInfrastructure, models.StatusApproved),
	}

	stats := CountryStatistics(projects, false)
	if len(stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(stats))
	}

	kenya := stats[0]
	if kenya.Country != "Kenya" {
		t.Errorf("country = %q, want Kenya", kenya.Country)
	}
	if kenya.TotalProjects != 1 {
		t.Errorf("totalProjects = %d, want 1", kenya.TotalProjects)
	}
	if kenya.PillarCounts[models.PillarHealthInfrastructure] != 1 {
		t.Errorf("pillarCounts = %v, want Health Infrastructure:1", kenya.PillarCounts)
	}
	if kenya.StatusCounts != nil {
		t.Error("public variant must not expose status counts")
	}
	if kenya.DisplayStatus != "" {
		t.Error("public variant must not expose a display status")
	}
	if len(kenya.Projects) != 1 || kenya.Projects[0].Status != "" {
		t.Errorf("public project tuples must omit status, got %+v", kenya.Projects)
	}
}

func TestCountryStatisticsPrivilegedVariant(t *testing.T) {
	// Two Nigerian projects in different pillars, one approved and one
	// rejected.
	projects := []models.Project{
		project("Nigeria", models.PillarLocalManufacturing, models.StatusApproved),
		project("Nigeria", models.PillarDigitalHealthAI, models.StatusRejected),
	}

	stats := CountryStatistics(projects, true)
	if len(stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(stats))
	}

	nigeria := stats[0]
	if nigeria.TotalProjects != 2 {
		t.Errorf("totalProjects = %d, want 2", nigeria.TotalProjects)
	}
	if nigeria.StatusCounts[models.StatusApproved] != 1 || nigeria.StatusCounts[models.StatusRejected] != 1 {
		t.Errorf("statusCounts = %v, want approved:1 rejected:1", nigeria.StatusCounts)
	}

	// Status counts always sum to the country total.
	sum := 0
	for _, n := range nigeria.StatusCounts {
		sum += n
	}
	if sum != nigeria.TotalProjects {
		t.Errorf("statusCounts sum = %d, want %d", sum, nigeria.TotalProjects)
	}

	// Any rejection colors the whole country as rejected.
	if nigeria.DisplayStatus != models.StatusRejected {
		t.Errorf("displayStatus = %q, want %q", nigeria.DisplayStatus, models.StatusRejected)
	}
}

func TestCountryStatisticsGroupsCountriesInEncounterOrder(t *testing.T) {
	projects := []models.Project{
		project("Ghana", models.PillarHealthInfrastructure, models.StatusApproved),
		project("Kenya", models.PillarDigitalHealthAI, models.StatusApproved),
		project("Ghana", models.PillarDigitalHealthAI, models.StatusApproved),
	}

	stats := CountryStatistics(projects, false)
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}
	if stats[0].Country != "Ghana" || stats[1].Country != "Kenya" {
		t.Errorf("country order = [%s %s], want [Ghana Kenya]", stats[0].Country, stats[1].Country)
	}
	if stats[0].TotalProjects != 2 {
		t.Errorf("Ghana totalProjects = %d, want 2", stats[0].TotalProjects)
	}
}

func TestDisplayStatusPriority(t *testing.T) {
	cases := []struct {
		name   string
		counts map[string]int
		want   string
	}{
		{
			name:   "rejection wins over everything",
			counts: map[string]int{models.StatusApproved: 5, models.StatusRejected: 1},
			want:   models.StatusRejected,
		},
		{
			name:   "pending wins over under_review and approved",
			counts: map[string]int{models.StatusApproved: 3, models.StatusUnderReview: 2, models.StatusPending: 1},
			want:   models.StatusPending,
		},
		{
			name:   "under_review wins over approved",
			counts: map[string]int{models.StatusApproved: 1, models.StatusUnderReview: 1},
			want:   models.StatusUnderReview,
		},
		{
			name:   "approved only",
			counts: map[string]int{models.StatusApproved: 4},
			want:   models.StatusApproved,
		},
		{
			name:   "no projects",
			counts: map[string]int{},
			want:   "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DisplayStatus(tc.counts); got != tc.want {
				t.Errorf("DisplayStatus(%v) = %q, want %q", tc.counts, got, tc.want)
			}
		})
	}
}

func TestComputeOverviewStatusCounts(t *testing.T) {
	var projects []models.Project
	add := func(n int, status string) {
		for i := 0; i < n; i++ {
			projects = append(projects, project("Kenya", models.PillarHealthInfrastructure, status))
		}
	}
	add(3, models.StatusPending)
	add(2, models.StatusUnderReview)
	add(4, models.StatusApproved)
	add(1, models.StatusRejected)

	overview := ComputeOverview(projects)
	if overview.TotalProjects != 10 {
		t.Errorf("totalProjects = %d, want 10", overview.TotalProjects)
	}
	if overview.ApprovedProjects != 4 {
		t.Errorf("approvedProjects = %d, want 4", overview.ApprovedProjects)
	}
	if overview.PendingProjects != 3 {
		t.Errorf("pendingProjects = %d, want 3", overview.PendingProjects)
	}
	if overview.UnderReviewProjects != 2 {
		t.Errorf("underReviewProjects = %d, want 2", overview.UnderReviewProjects)
	}
	if overview.RejectedProjects != 1 {
		t.Errorf("rejectedProjects = %d, want 1", overview.RejectedProjects)
	}
}

func TestComputeOverviewPillarBreakdown(t *testing.T) {
	projects := []models.Project{
		project("Kenya", models.PillarHealthInfrastructure, models.StatusApproved),
		project("Kenya", models.PillarHealthInfrastructure, models.StatusPending),
		project("Ghana", models.PillarLocalManufacturing, models.StatusRejected),
	}

	overview := ComputeOverview(projects)

	infra := overview.PillarBreakdown[models.PillarHealthInfrastructure]
	if infra.Approved != 1 || infra.NotApproved != 1 {
		t.Errorf("Health Infrastructure split = %+v, want approved:1 notApproved:1", infra)
	}

	manufacturing := overview.PillarBreakdown[models.PillarLocalManufacturing]
	if manufacturing.Approved != 0 || manufacturing.NotApproved != 1 {
		t.Errorf("Local Manufacturing split = %+v, want approved:0 notApproved:1", manufacturing)
	}

	// Every pillar is present even with no projects.
	if len(overview.PillarBreakdown) != len(models.Pillars) {
		t.Errorf("pillarBreakdown has %d entries, want %d", len(overview.PillarBreakdown), len(models.Pillars))
	}
}

func TestPublicCountryStatisticsQueriesApprovedOnly(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `projects` WHERE status = \\?"),
			columns: []string{"project_id", "project_title", "country", "pifah_pillar", "status"},
			rows: [][]driver.Value{
				{"p-1", "Mobile Clinics", "Kenya", models.PillarHealthInfrastructure, models.StatusApproved},
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewStatisticsService(db)
	stats, err := svc.PublicCountryStatistics()
	if err != nil {
		t.Fatalf("PublicCountryStatistics returned error: %v", err)
	}
	if len(stats) != 1 || stats[0].TotalProjects != 1 {
		t.Errorf("stats = %+v, want one Kenya rollup with one project", stats)
	}
	if err := state.verifyComplete(); err != nil {
		t.Error(err)
	}
}
