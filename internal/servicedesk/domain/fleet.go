package domain

import (
	"context"
	"time"
)

type FleetStatus string

const (
	FleetActive      FleetStatus = "active"
	FleetMaintenance FleetStatus = "maintenance"
	FleetRetired     FleetStatus = "retired"
)

func ParseFleetStatus(s string) (FleetStatus, bool) {
	switch st := FleetStatus(s); st {
	case FleetActive, FleetMaintenance, FleetRetired:
		return st, true
	}
	return "", false
}

// FleetDevice is a device deployed to a business customer.
type FleetDevice struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	CompanyID       string      `json:"companyId" gorm:"not null;index"`
	DeviceID        string      `json:"deviceId" gorm:"not null"`
	DeviceModel     string      `json:"deviceModel" gorm:"not null"`
	AssignedUser    string      `json:"assignedUser,omitempty"`
	Status          FleetStatus `json:"status" gorm:"type:varchar(16);not null;default:active"`
	WarrantyExpiry  *time.Time  `json:"warrantyExpiry,omitempty"`
	LastMaintenance *time.Time  `json:"lastMaintenance,omitempty"`
	DeploymentDate  time.Time   `json:"deploymentDate"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Validate checks d before it joins a fleet. Status defaults to active and
// the deployment date to now.
func (d *FleetDevice) Validate(now time.Time) error {
	var errs ValidationErrors
	required(&errs, "companyId", d.CompanyID)
	required(&errs, "deviceId", d.DeviceID)
	required(&errs, "deviceModel", d.DeviceModel)
	if d.Status == "" {
		d.Status = FleetActive
	} else if _, ok := ParseFleetStatus(string(d.Status)); !ok {
		errs = append(errs, FieldError{Field: "status", Message: "Status must be active, maintenance, or retired"})
	}
	if d.DeploymentDate.IsZero() {
		d.DeploymentDate = now
	}
	return errs.orNil()
}

type FleetStats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Maintenance int `json:"maintenance"`
	Retired     int `json:"retired"`
	Expired     int `json:"expired"`
}

// ComputeFleetStats counts a fleet by status. Expired counts devices whose
// warranty ended before now, whatever their status.
func ComputeFleetStats(devices []FleetDevice, now time.Time) FleetStats {
	s := FleetStats{Total: len(devices)}
	for _, d := range devices {
		switch d.Status {
		case FleetActive:
			s.Active++
		case FleetMaintenance:
			s.Maintenance++
		case FleetRetired:
			s.Retired++
		}
		if d.WarrantyExpiry != nil && d.WarrantyExpiry.Before(now) {
			s.Expired++
		}
	}
	return s
}

// FleetRepository stores fleet devices. FindByCompany returns the newest
// first.
type FleetRepository interface {
	Create(ctx context.Context, device *FleetDevice) error
	FindByCompany(ctx context.Context, companyID string) ([]FleetDevice, error)
}
