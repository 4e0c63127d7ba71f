package domain

import "time"

// Job types offered by the portal. JobTypeAll is a filter value, never stored.
const (
	JobTypeAll      = "all"
	JobTypeFullTime = "Full-time"
	JobTypePartTime = "Part-time"
	JobTypeContract = "Contract"
	JobTypeRemote   = "Remote"
	DefaultJobType  = JobTypeFullTime
)

// Job is a vacancy as served by the remote API.
type Job struct {
	ID           string     `json:"_id"`
	Title        string     `json:"title"`
	Department   string     `json:"department"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements,omitempty"`
	Salary       string     `json:"salary,omitempty"`
	Location     string     `json:"location,omitempty"`
	JobType      string     `json:"jobType,omitempty"`
	Benefits     string     `json:"benefits,omitempty"`
	Deadline     time.Time  `json:"deadline"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

// DeadlinePassed reports whether applications for the job have closed.
func (j Job) DeadlinePassed(now time.Time) bool {
	return j.Deadline.Before(now)
}

// EffectiveType returns the job type, defaulting to full-time when unset.
func (j Job) EffectiveType() string {
	if j.JobType == "" {
		return DefaultJobType
	}
	return j.JobType
}

// JobInput is the body of a create or full update.
type JobInput struct {
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Salary       string    `json:"salary,omitempty"`
	Location     string    `json:"location,omitempty"`
	JobType      string    `json:"jobType,omitempty"`
	Benefits     string    `json:"benefits,omitempty"`
	Deadline     time.Time `json:"deadline"`
}
