package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RepairStatus string

const (
	RepairReceived   RepairStatus = "received"
	RepairDiagnosed  RepairStatus = "diagnosed"
	RepairInProgress RepairStatus = "in_progress"
	RepairQC         RepairStatus = "qc"
	RepairCompleted  RepairStatus = "completed"
)

func ParseRepairStatus(s string) (RepairStatus, bool) {
	switch st := RepairStatus(s); st {
	case RepairReceived, RepairDiagnosed, RepairInProgress, RepairQC, RepairCompleted:
		return st, true
	}
	return "", false
}

// StatusEntry is one line of a ticket's history.
type StatusEntry struct {
	Status    RepairStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Notes     string       `json:"notes,omitempty"`
}

// RepairTicket tracks a customer repair by its public ticket id.
type RepairTicket struct {
	ID                  uint                              `json:"id" gorm:"primaryKey"`
	TicketID            string                            `json:"ticketId" gorm:"uniqueIndex;not null"`
	SerialNumber        string                            `json:"serialNumber" gorm:"not null;index"`
	DeviceModel         string                            `json:"deviceModel" gorm:"not null"`
	IssueDescription    string                            `json:"issueDescription" gorm:"not null"`
	Status              RepairStatus                      `json:"status" gorm:"type:varchar(16);not null;default:received"`
	AssignedTechnician  string                            `json:"assignedTechnician,omitempty"`
	EstimatedCompletion *time.Time                        `json:"estimatedCompletion,omitempty"`
	RepairNotes         string                            `json:"repairNotes,omitempty"`
	CustomerInfo        datatypes.JSONType[Customer]      `json:"customerInfo" swaggertype:"object"`
	StatusHistory       datatypes.JSONType[[]StatusEntry] `json:"statusHistory" swaggertype:"array,object"`
	CreatedAt           time.Time                         `json:"createdAt"`
	UpdatedAt           time.Time                         `json:"updatedAt"`
}

// NewTicketID returns a public ticket id of the form RPR-<year>-<6 hex>.
func NewTicketID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("RPR-%d-%s", now.Year(), suffix)
}

// Open validates t and starts it at received with a seeded history.
func (t *RepairTicket) Open(now time.Time) error {
	var errs ValidationErrors
	required(&errs, "serialNumber", t.SerialNumber)
	required(&errs, "deviceModel", t.DeviceModel)
	required(&errs, "issueDescription", t.IssueDescription)
	if len(errs) > 0 {
		return errs
	}

	t.TicketID = NewTicketID(now)
	t.Status = RepairReceived
	t.StatusHistory = datatypes.NewJSONType([]StatusEntry{{
		Status:    RepairReceived,
		Timestamp: now,
		Notes:     "Repair request submitted",
	}})
	return nil
}

// Record moves the ticket to status and appends it to the history.
func (t *RepairTicket) Record(status RepairStatus, notes string, now time.Time) {
	t.Status = status
	if notes != "" {
		t.RepairNotes = notes
	}
	history := append(t.StatusHistory.Data(), StatusEntry{Status: status, Timestamp: now, Notes: notes})
	t.StatusHistory = datatypes.NewJSONType(history)
}

type RepairTicketRepository interface {
	Create(ctx context.Context, ticket *RepairTicket) error
	FindByTicketID(ctx context.Context, ticketID string) (*RepairTicket, error)
	Update(ctx context.Context, ticket *RepairTicket) error
}
