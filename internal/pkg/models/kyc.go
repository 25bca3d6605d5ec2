package models

import (
	"time"

	"github.com/google/uuid"
)

// KYCStatus is the review state of a submission
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCApproved KYCStatus = "approved"
	KYCRejected KYCStatus = "rejected"
)

// KYCVerification is an identity submission reviewed by an admin
type KYCVerification struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	UserID          uuid.UUID  `json:"user_id" db:"user_id"`
	BVN             string     `json:"bvn" db:"bvn"`
	FullName        string     `json:"full_name" db:"full_name"`
	DateOfBirth     string     `json:"date_of_birth" db:"date_of_birth"`
	Status          KYCStatus  `json:"status" db:"status"`
	RejectionReason string     `json:"rejection_reason" db:"rejection_reason"`
	ReviewedBy      *uuid.UUID `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

// SubmitKYCRequest is the payload for an identity submission
type SubmitKYCRequest struct {
	BVN         string `json:"bvn" validate:"required,numeric,len=11"`
	FullName    string `json:"full_name" validate:"required,max=120"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
}

// KYCReview is an admin decision on a pending submission
type KYCReview struct {
	ID         uuid.UUID
	Status     KYCStatus
	Reason     string
	ReviewerID uuid.UUID
	Now        time.Time
}
