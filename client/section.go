package client

import (
	"context"
	"net/url"

	"github.com/bluejays/schoolsys/core"
)

type Section struct {
	ID          string `json:"_id"`
	SectionName string `json:"sectionName"`
	ClassID     string `json:"classId"`
	BranchID    string `json:"branchId,omitempty"`
}

type NewSection struct {
	SectionName string `json:"sectionName" validate:"required"`
	ClassID     string `json:"classId" validate:"required"`
	BranchID    string `json:"branchId,omitempty"`
}

type SectionService struct {
	resource[Section]
}

func (c *Client) Sections() SectionService {
	return SectionService{resource[Section]{
		c:        c,
		base:     "/section",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s SectionService) ListByClass(ctx context.Context, classID string) ([]Section, error) {
	return s.list(ctx, url.Values{"classId": {classID}})
}

func (s SectionService) Get(ctx context.Context, id string) (Section, error) {
	return s.get(ctx, id)
}

func (s SectionService) Create(ctx context.Context, ns NewSection) (Section, error) {
	if err := core.CheckStruct(ns); err != nil {
		return Section{}, err
	}
	return s.create(ctx, ns)
}

func (s SectionService) Update(ctx context.Context, id string, ns NewSection) (Section, error) {
	if err := core.CheckStruct(ns); err != nil {
		return Section{}, err
	}
	return s.update(ctx, id, ns)
}

func (s SectionService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
