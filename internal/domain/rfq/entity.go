package rfq

import (
	"errors"
	"strings"
	"time"

	"greenrfq/internal/domain/geo"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrBuyerRequired      = errors.New("buyer is required")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrDeadlineInPast     = errors.New("deadline is in the past")
	ErrInvalidStatus      = errors.New("invalid rfq status")
	ErrNotOpen            = errors.New("rfq is not open")
)

type Status string

const (
	StatusOpen        Status = "open"
	StatusDistributed Status = "distributed"
	StatusClosed      Status = "closed"
	StatusArchived    Status = "archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusDistributed, StatusClosed, StatusArchived:
		return true
	default:
		return false
	}
}

type RFQ struct {
	id                     uuid.UUID
	buyerID                uuid.UUID
	title                  string
	description            string
	category               string
	materials              []string
	certificationsRequired []string
	location               *geo.Coordinates
	projectAddress         string
	budgetMaxCents         *int64
	deadline               *time.Time
	status                 Status
	createdAt              time.Time
	updatedAt              time.Time
}

type Spec struct {
	BuyerID                uuid.UUID
	Title                  string
	Description            string
	Category               string
	Materials              []string
	CertificationsRequired []string
	Location               *geo.Coordinates
	ProjectAddress         string
	BudgetMaxCents         *int64
	Deadline               *time.Time
}

func New(spec Spec, now time.Time) (*RFQ, error) {
	title := strings.TrimSpace(spec.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if spec.BuyerID == uuid.Nil {
		return nil, ErrBuyerRequired
	}
	if spec.Location != nil {
		if spec.Location.Latitude < -90 || spec.Location.Latitude > 90 ||
			spec.Location.Longitude < -180 || spec.Location.Longitude > 180 {
			return nil, ErrInvalidCoordinates
		}
	}
	if spec.Deadline != nil && spec.Deadline.Before(now) {
		return nil, ErrDeadlineInPast
	}

	return &RFQ{
		id:                     uuid.New(),
		buyerID:                spec.BuyerID,
		title:                  title,
		description:            spec.Description,
		category:               strings.TrimSpace(spec.Category),
		materials:              spec.Materials,
		certificationsRequired: spec.CertificationsRequired,
		location:               spec.Location,
		projectAddress:         spec.ProjectAddress,
		budgetMaxCents:         spec.BudgetMaxCents,
		deadline:               spec.Deadline,
		status:                 StatusOpen,
	}, nil
}

func Reconstruct(
	id, buyerID uuid.UUID,
	title, description, category string,
	materials, certificationsRequired []string,
	location *geo.Coordinates,
	projectAddress string,
	budgetMaxCents *int64,
	deadline *time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *RFQ {
	return &RFQ{
		id:                     id,
		buyerID:                buyerID,
		title:                  title,
		description:            description,
		category:               category,
		materials:              materials,
		certificationsRequired: certificationsRequired,
		location:               location,
		projectAddress:         projectAddress,
		budgetMaxCents:         budgetMaxCents,
		deadline:               deadline,
		status:                 status,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}
}

func (r *RFQ) IsOpen() bool {
	return r.status == StatusOpen || r.status == StatusDistributed
}

func (r *RFQ) CanDistribute() error {
	if !r.IsOpen() {
		return ErrNotOpen
	}
	return nil
}

func (r *RFQ) ID() uuid.UUID                     { return r.id }
func (r *RFQ) BuyerID() uuid.UUID                { return r.buyerID }
func (r *RFQ) Title() string                     { return r.title }
func (r *RFQ) Description() string               { return r.description }
func (r *RFQ) Category() string                  { return r.category }
func (r *RFQ) Materials() []string               { return r.materials }
func (r *RFQ) CertificationsRequired() []string  { return r.certificationsRequired }
func (r *RFQ) Location() *geo.Coordinates        { return r.location }
func (r *RFQ) ProjectAddress() string            { return r.projectAddress }
func (r *RFQ) BudgetMaxCents() *int64            { return r.budgetMaxCents }
func (r *RFQ) Deadline() *time.Time              { return r.deadline }
func (r *RFQ) Status() Status                    { return r.status }
func (r *RFQ) CreatedAt() time.Time              { return r.createdAt }
func (r *RFQ) UpdatedAt() time.Time              { return r.updatedAt }
