package domain

import (
	"encoding/json"
	"time"
)

// Role is the closed set of classifications a session can carry.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleApplicant Role = "applicant"
)

// IDStatus is the review state of an applicant's ID card.
type IDStatus string

const (
	IDStatusPending  IDStatus = "pending"
	IDStatusActive   IDStatus = "active"
	IDStatusRejected IDStatus = "rejected"
)

// Document is a file an applicant attached to their profile.
type Document struct {
	URL        string     `json:"url"`
	Type       string     `json:"type"`
	UploadedAt *time.Time `json:"uploadedAt,omitempty"`
}

// User is the identity record served by the remote API. The portal reads the
// fields below; anything else the API sends is kept in Extra and written back
// out unchanged.
type User struct {
	ID           string
	Name         string
	Username     string
	Email        string
	Role         Role
	Phone        string
	Address      string
	Department   string
	FaydaID      string
	IsApproved   bool
	IDNumber     string
	IDPhoto      string
	IDStatus     IDStatus
	IDIssueDate  *time.Time
	IDExpiryDate *time.Time
	Documents    []Document
	CreatedAt    *time.Time

	Extra map[string]json.RawMessage
}

// userJSON is the wire shape. The API is inconsistent about "id" vs "_id",
// both are accepted.
type userJSON struct {
	ID           string     `json:"id,omitempty"`
	MongoID      string     `json:"_id,omitempty"`
	Name         string     `json:"name,omitempty"`
	Username     string     `json:"username,omitempty"`
	Email        string     `json:"email,omitempty"`
	Role         Role       `json:"role,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	Department   string     `json:"department,omitempty"`
	FaydaID      string     `json:"faydaId,omitempty"`
	IsApproved   bool       `json:"isApproved"`
	IDNumber     string     `json:"idNumber,omitempty"`
	IDPhoto      string     `json:"idPhoto,omitempty"`
	IDStatus     IDStatus   `json:"idStatus,omitempty"`
	IDIssueDate  *time.Time `json:"idIssueDate,omitempty"`
	IDExpiryDate *time.Time `json:"idExpiryDate,omitempty"`
	Documents    []Document `json:"documents,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

var userFields = map[string]struct{}{
	"id": {}, "_id": {}, "name": {}, "username": {}, "email": {}, "role": {},
	"phone": {}, "address": {}, "department": {}, "faydaId": {}, "isApproved": {},
	"idNumber": {}, "idPhoto": {}, "idStatus": {}, "idIssueDate": {}, "idExpiryDate": {},
	"documents": {}, "createdAt": {},
}

func (u *User) UnmarshalJSON(b []byte) error {
	var w userJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}

	id := w.ID
	if id == "" {
		id = w.MongoID
	}
	*u = User{
		ID:           id,
		Name:         w.Name,
		Username:     w.Username,
		Email:        w.Email,
		Role:         w.Role,
		Phone:        w.Phone,
		Address:      w.Address,
		Department:   w.Department,
		FaydaID:      w.FaydaID,
		IsApproved:   w.IsApproved,
		IDNumber:     w.IDNumber,
		IDPhoto:      w.IDPhoto,
		IDStatus:     w.IDStatus,
		IDIssueDate:  w.IDIssueDate,
		IDExpiryDate: w.IDExpiryDate,
		Documents:    w.Documents,
		CreatedAt:    w.CreatedAt,
	}
	for k, v := range all {
		if _, known := userFields[k]; known {
			continue
		}
		if u.Extra == nil {
			u.Extra = make(map[string]json.RawMessage)
		}
		u.Extra[k] = v
	}
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(userJSON{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		Phone:        u.Phone,
		Address:      u.Address,
		Department:   u.Department,
		FaydaID:      u.FaydaID,
		IsApproved:   u.IsApproved,
		IDNumber:     u.IDNumber,
		IDPhoto:      u.IDPhoto,
		IDStatus:     u.IDStatus,
		IDIssueDate:  u.IDIssueDate,
		IDExpiryDate: u.IDExpiryDate,
		Documents:    u.Documents,
		CreatedAt:    u.CreatedAt,
	})
	if err != nil || len(u.Extra) == 0 {
		return known, err
	}

	out := make(map[string]json.RawMessage, len(u.Extra)+len(userFields))
	for k, v := range u.Extra {
		out[k] = v
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		out[k] = v
	}
	return json.Marshal(out)
}

// Clone returns a deep enough copy that callers cannot mutate session state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Documents != nil {
		c.Documents = append([]Document(nil), u.Documents...)
	}
	if u.Extra != nil {
		c.Extra = make(map[string]json.RawMessage, len(u.Extra))
		for k, v := range u.Extra {
			c.Extra[k] = v
		}
	}
	return &c
}

// ProfileUpdate carries the fields an applicant may edit on their own profile.
type ProfileUpdate struct {
	FaydaID    string `json:"faydaId"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Department string `json:"department"`
}

// EmployeeProfile is passed through from the API without interpretation.
type EmployeeProfile map[string]any
