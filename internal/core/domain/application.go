package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// ApplicationStatus is the review state of a job application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// JobRef is the job an application points at. The API sends either the bare
// id or a populated {_id, title, department} object.
type JobRef struct {
	ID         string `json:"_id,omitempty"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
}

func (r *JobRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = JobRef{ID: id}
		return nil
	}
	type plain JobRef
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = JobRef(p)
	return nil
}

// Application is a submitted application as served by the remote API.
type Application struct {
	ID            string            `json:"_id"`
	Job           *JobRef           `json:"jobId,omitempty"`
	ApplicantName string            `json:"applicantName"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	GPA           float64           `json:"gpa"`
	ExitExam      string            `json:"exitExam"`
	Status        ApplicationStatus `json:"status"`
	AppliedAt     *time.Time        `json:"appliedAt,omitempty"`
}

// ApplicationForm is what an applicant submits for a job. Submission is
// public; no session is required.
type ApplicationForm struct {
	JobID         string  `json:"jobId"`
	ApplicantName string  `json:"applicantName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	GPA           float64 `json:"gpa"`
	ExitExam      string  `json:"exitExam"`
}
