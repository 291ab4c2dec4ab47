package models

import "time"

// DashboardSummary aggregates the headline counts shown on the analytics
// dashboard.
type DashboardSummary struct {
	TotalCourses        int       `json:"total_courses"`
	TotalTopics         int       `json:"total_topics"`
	TotalCertifications int       `json:"total_certifications"`
	TotalJobs           int       `json:"total_jobs"`
	TotalOrganizations  int       `json:"total_organizations"`
	ActiveStudents      int       `json:"active_students"`
	GeneratedAt         time.Time `json:"generated_at"`
}

// DashboardActivity is one recent-activity feed entry.
type DashboardActivity struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	OccurredAt time.Time `json:"occurred_at"`
}
