package client

import (
	"context"
	"net/url"

	"github.com/volatiletech/null/v8"

	"github.com/bluejays/schoolsys/core"
)

type Teacher struct {
	ID            string      `json:"_id"`
	Name          string      `json:"name"`
	CNIC          string      `json:"cnic"`
	Phone         null.String `json:"phone,omitempty"`
	Qualification null.String `json:"qualification,omitempty"`
	BranchID      string      `json:"branchId"`
	PhotoURL      null.String `json:"photoUrl,omitempty"`
	CreatedAt     string      `json:"createdAt,omitempty"`
}

type TeacherDraft struct {
	Name          string `json:"name" validate:"required"`
	CNIC          string `json:"cnic" validate:"required,cnic"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,phone"`
	Qualification string `json:"qualification,omitempty"`
	BranchID      string `json:"branchId" validate:"required"`
}

type TeacherService struct {
	resource[Teacher]
}

func (c *Client) Teachers() TeacherService {
	return TeacherService{resource[Teacher]{
		c:        c,
		base:     "/teacher",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s TeacherService) ListByBranch(ctx context.Context, branchID string) ([]Teacher, error) {
	return s.list(ctx, url.Values{"branchId": {branchID}})
}

func (s TeacherService) Get(ctx context.Context, id string) (Teacher, error) {
	return s.get(ctx, id)
}

func (s TeacherService) Create(ctx context.Context, d TeacherDraft) (Teacher, error) {
	if err := core.CheckStruct(d); err != nil {
		return Teacher{}, err
	}
	return s.create(ctx, d)
}

func (s TeacherService) Update(ctx context.Context, id string, d TeacherDraft) (Teacher, error) {
	if err := core.CheckStruct(d); err != nil {
		return Teacher{}, err
	}
	return s.update(ctx, id, d)
}

func (s TeacherService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
