package domain

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// DeviceStatus is the stage of a device on the intake board.
type DeviceStatus string

const (
	DeviceReceived  DeviceStatus = "received"
	DeviceDiagnosed DeviceStatus = "diagnosed"
	DeviceRepaired  DeviceStatus = "repaired"
	DeviceQC        DeviceStatus = "qc"
	DeviceReady     DeviceStatus = "ready"
)

func ParseDeviceStatus(s string) (DeviceStatus, bool) {
	switch st := DeviceStatus(s); st {
	case DeviceReceived, DeviceDiagnosed, DeviceRepaired, DeviceQC, DeviceReady:
		return st, true
	}
	return "", false
}

// Device is a unit on the refurbishment intake board.
type Device struct {
	ID                 uint                         `json:"id" gorm:"primaryKey"`
	SerialNumber       string                       `json:"serialNumber" gorm:"uniqueIndex;not null"`
	Model              string                       `json:"model" gorm:"not null"`
	Brand              string                       `json:"brand" gorm:"not null"`
	DeviceType         string                       `json:"deviceType" gorm:"not null"`
	Status             DeviceStatus                 `json:"status" gorm:"type:varchar(16);not null;default:received;index"`
	AssignedTechnician string                       `json:"assignedTechnician,omitempty" gorm:"index"`
	CustomerInfo       datatypes.JSONType[Customer] `json:"customerInfo" swaggertype:"object"`
	RepairNotes        string                       `json:"repairNotes,omitempty"`
	EstimatedValue     *float64                     `json:"estimatedValue,omitempty"`
	CompletionDate     *time.Time                   `json:"completionDate,omitempty"`
	CreatedAt          time.Time                    `json:"createdAt"`
	UpdatedAt          time.Time                    `json:"updatedAt"`
}

// Validate checks a device before it is put on the board. An empty status
// defaults to received.
func (d *Device) Validate() error {
	var errs ValidationErrors
	required(&errs, "serialNumber", d.SerialNumber)
	required(&errs, "model", d.Model)
	required(&errs, "brand", d.Brand)
	required(&errs, "deviceType", d.DeviceType)
	if d.Status == "" {
		d.Status = DeviceReceived
	} else if _, ok := ParseDeviceStatus(string(d.Status)); !ok {
		errs = append(errs, FieldError{Field: "status", Message: "Status must be received, diagnosed, repaired, qc, or ready"})
	}
	return errs.orNil()
}

// DeviceUpdate is a partial change to a device. Nil fields are untouched.
type DeviceUpdate struct {
	Status             *DeviceStatus `json:"status"`
	AssignedTechnician *string       `json:"assignedTechnician"`
	RepairNotes        *string       `json:"repairNotes"`
	EstimatedValue     *float64      `json:"estimatedValue"`
}

// Apply merges u into d. Reaching ready stamps the completion date.
func (d *Device) Apply(u DeviceUpdate, now time.Time) error {
	if u.Status != nil {
		st, ok := ParseDeviceStatus(string(*u.Status))
		if !ok {
			return ValidationErrors{{Field: "status", Message: fmt.Sprintf("Unknown status %q", *u.Status)}}
		}
		d.Status = st
		if st == DeviceReady && d.CompletionDate == nil {
			d.CompletionDate = &now
		}
	}
	if u.AssignedTechnician != nil {
		d.AssignedTechnician = *u.AssignedTechnician
	}
	if u.RepairNotes != nil {
		d.RepairNotes = *u.RepairNotes
	}
	if u.EstimatedValue != nil {
		d.EstimatedValue = u.EstimatedValue
	}
	return nil
}

type DeviceFilter struct {
	Status     DeviceStatus
	Technician string
}

// BoardStats counts the intake board by stage. InRepair counts devices
// whose repair is done but not yet through QC.
type BoardStats struct {
	Received  int `json:"received"`
	Diagnosed int `json:"diagnosed"`
	InRepair  int `json:"in_repair"`
	QC        int `json:"qc"`
	Ready     int `json:"ready"`
	Total     int `json:"total"`
}

func ComputeBoardStats(devices []Device) BoardStats {
	s := BoardStats{Total: len(devices)}
	for _, d := range devices {
		switch d.Status {
		case DeviceReceived:
			s.Received++
		case DeviceDiagnosed:
			s.Diagnosed++
		case DeviceRepaired:
			s.InRepair++
		case DeviceQC:
			s.QC++
		case DeviceReady:
			s.Ready++
		}
	}
	return s
}

// DeviceRepository stores intake board devices. FindAll returns the most
// recently updated first.
type DeviceRepository interface {
	Create(ctx context.Context, device *Device) error
	FindByID(ctx context.Context, id uint) (*Device, error)
	FindBySerial(ctx context.Context, serial string) (*Device, error)
	FindAll(ctx context.Context, filter DeviceFilter) ([]Device, error)
	Update(ctx context.Context, device *Device) error
}
