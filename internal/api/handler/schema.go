package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/jobportal/portal/internal/core/domain"
)

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type applyRequest struct {
	ApplicantName string  `json:"applicantName" validate:"required"`
	Email         string  `json:"email"         validate:"required,email"`
	Phone         string  `json:"phone"         validate:"required"`
	GPA           float64 `json:"gpa"           validate:"gte=0,lte=4"`
	ExitExam      string  `json:"exitExam"      validate:"required"`
}

func (r applyRequest) toForm(jobID string) domain.ApplicationForm {
	return domain.ApplicationForm{
		JobID:         jobID,
		ApplicantName: strings.TrimSpace(r.ApplicantName),
		Email:         strings.TrimSpace(r.Email),
		Phone:         strings.TrimSpace(r.Phone),
		GPA:           r.GPA,
		ExitExam:      strings.TrimSpace(r.ExitExam),
	}
}

type profileRequest struct {
	FaydaID    string `json:"faydaId"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Department string `json:"department"`
}

type photoRequest struct {
	Photo string `json:"photo" validate:"required"`
}

type jobRequest struct {
	Title        string `json:"title"        validate:"required"`
	Department   string `json:"department"   validate:"required"`
	JobType      string `json:"jobType"      validate:"required,oneof=Full-time Part-time Contract Remote"`
	Location     string `json:"location"     validate:"required"`
	Salary       string `json:"salary"       validate:"required"`
	Benefits     string `json:"benefits"`
	Description  string `json:"description"  validate:"required"`
	Requirements string `json:"requirements" validate:"required"`
	// Deadline is a date (2006-01-02) or an RFC 3339 timestamp.
	Deadline string `json:"deadline" validate:"required"`
}

func (r jobRequest) toInput() (domain.JobInput, error) {
	deadline, err := parseDeadline(r.Deadline)
	if err != nil {
		return domain.JobInput{}, err
	}
	return domain.JobInput{
		Title:        r.Title,
		Department:   r.Department,
		Description:  r.Description,
		Requirements: r.Requirements,
		Salary:       r.Salary,
		Location:     r.Location,
		JobType:      r.JobType,
		Benefits:     r.Benefits,
		Deadline:     deadline,
	}, nil
}

func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: deadline must be a date (YYYY-MM-DD) or RFC 3339 timestamp", domain.ErrInvalidForm)
}

// jobResponse adds the derived fields the job pages render.
type jobResponse struct {
	domain.Job
	DeadlinePassed bool   `json:"deadlinePassed"`
	EffectiveType  string `json:"effectiveType"`
}

func newJobResponse(j domain.Job, now time.Time) jobResponse {
	return jobResponse{Job: j, DeadlinePassed: j.DeadlinePassed(now), EffectiveType: j.EffectiveType()}
}

func newJobResponses(jobs []domain.Job, now time.Time) []jobResponse {
	out := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, newJobResponse(j, now))
	}
	return out
}

type toggleResponse struct {
	ID       string `json:"id"`
	IsActive bool   `json:"isActive"`
}

type messageResponse struct {
	Message string `json:"message"`
}
