package client

import (
	"context"
	"net/url"

	"github.com/bluejays/schoolsys/core"
)

// Leave statuses.
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

type Leave struct {
	ID       string `json:"_id"`
	PersonID string `json:"personId"`
	From     string `json:"from"` // YYYY-MM-DD
	To       string `json:"to"`
	Reason   string `json:"reason"`
	Status   string `json:"status"`
	BranchID string `json:"branchId,omitempty"`
}

type LeaveDraft struct {
	PersonID string `json:"personId" validate:"required"`
	From     string `json:"from" validate:"required"`
	To       string `json:"to" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
}

type LeaveService struct {
	resource[Leave]
}

func (c *Client) Leaves() LeaveService {
	return LeaveService{resource[Leave]{
		c:        c,
		base:     "/leave",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s LeaveService) ListByBranch(ctx context.Context, branchID string) ([]Leave, error) {
	return s.list(ctx, url.Values{"branchId": {branchID}})
}

func (s LeaveService) Get(ctx context.Context, id string) (Leave, error) {
	return s.get(ctx, id)
}

func (s LeaveService) Apply(ctx context.Context, d LeaveDraft) (Leave, error) {
	if err := core.CheckStruct(d); err != nil {
		return Leave{}, err
	}
	return s.create(ctx, d)
}

// SetStatus approves or rejects a pending leave.
func (s LeaveService) SetStatus(ctx context.Context, id, status string) (Leave, error) {
	payload := struct {
		Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	}{Status: status}
	if err := core.CheckStruct(payload); err != nil {
		return Leave{}, err
	}
	return s.update(ctx, id, payload)
}

func (s LeaveService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
