package handler

import (
	"net/http"
	"testing"

	"github.com/jobportal/portal/internal/core/domain"
)

func TestApplicantHandler_UpdateProfile(t *testing.T) {
	var got domain.ProfileUpdate
	h := NewApplicantHandler(&stubApplicant{profileFn: func(in domain.ProfileUpdate) (*domain.User, error) {
		got = in
		return &domain.User{ID: "u1", FaydaID: in.FaydaID}, nil
	}})

	c, rec := request(newEcho(), http.MethodPut, "/applicant/profile", `{"faydaId":"F-1","phone":"0911","address":"Addis","department":"IT"}`)
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK || got.FaydaID != "F-1" || got.Department != "IT" {
		t.Fatalf("unexpected update %d %+v", rec.Code, got)
	}
}

func TestApplicantHandler_UploadPhoto(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		uploadErr  error
		wantStatus int
	}{
		{"uploaded", `{"photo":"data:image/png;base64,AA"}`, nil, http.StatusOK},
		{"missing photo", `{}`, nil, http.StatusUnprocessableEntity},
		{"rejected upstream", `{"photo":"x"}`, &domain.RemoteError{Status: http.StatusBadRequest, Message: "Invalid image"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewApplicantHandler(&stubApplicant{photoFn: func(string) error { return tt.uploadErr }})

			c, rec := request(newEcho(), http.MethodPost, "/applicant/photo", tt.body)
			err := h.UploadPhoto(c)
			if status := statusFor(rec, err); status != tt.wantStatus {
				t.Fatalf("expected %d, got %d (%v)", tt.wantStatus, status, err)
			}
		})
	}
}
