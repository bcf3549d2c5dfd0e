package client

import (
	"context"
	"net/url"

	"github.com/bluejays/schoolsys/core"
)

// TimeSlot is one daily scheduling block.
type TimeSlot struct {
	ID        string `json:"_id"`
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`
	BranchID  string `json:"branchId,omitempty"`
}

type NewTimeSlot struct {
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	BranchID  string `json:"branchId,omitempty"`
}

type TimeSlotService struct {
	resource[TimeSlot]
}

func (c *Client) TimeSlots() TimeSlotService {
	return TimeSlotService{resource[TimeSlot]{
		c:        c,
		base:     "/time-slot",
		listKeys: []string{"data", "data", "timeSlots"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s TimeSlotService) ListByBranch(ctx context.Context, branchID string) ([]TimeSlot, error) {
	return s.list(ctx, url.Values{"branchId": {branchID}})
}

func (s TimeSlotService) Create(ctx context.Context, nt NewTimeSlot) (TimeSlot, error) {
	if err := core.CheckStruct(nt); err != nil {
		return TimeSlot{}, err
	}
	return s.create(ctx, nt)
}

func (s TimeSlotService) Update(ctx context.Context, id string, nt NewTimeSlot) (TimeSlot, error) {
	if err := core.CheckStruct(nt); err != nil {
		return TimeSlot{}, err
	}
	return s.update(ctx, id, nt)
}

func (s TimeSlotService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
