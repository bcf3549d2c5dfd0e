package client

import (
	"context"
	"net/url"

	"github.com/volatiletech/null/v8"

	"github.com/bluejays/schoolsys/core"
)

type Class struct {
	ID          string      `json:"_id"`
	ClassName   string      `json:"className"`
	Description null.String `json:"description,omitempty"`
	BranchID    string      `json:"branchId,omitempty"`
	CreatedAt   string      `json:"createdAt,omitempty"`
}

type NewClass struct {
	ClassName   string `json:"className" validate:"required"`
	Description string `json:"description,omitempty"`
	BranchID    string `json:"branchId,omitempty"`
}

type ClassService struct {
	resource[Class]
}

func (c *Client) Classes() ClassService {
	return ClassService{resource[Class]{
		c:        c,
		base:     "/class",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s ClassService) List(ctx context.Context) ([]Class, error) {
	return s.list(ctx, nil)
}

// ListByBranch scopes the collection to one branch.
func (s ClassService) ListByBranch(ctx context.Context, branchID string) ([]Class, error) {
	return s.list(ctx, url.Values{"branchId": {branchID}})
}

func (s ClassService) Get(ctx context.Context, id string) (Class, error) {
	return s.get(ctx, id)
}

func (s ClassService) Create(ctx context.Context, nc NewClass) (Class, error) {
	if err := core.CheckStruct(nc); err != nil {
		return Class{}, err
	}
	return s.create(ctx, nc)
}

func (s ClassService) Update(ctx context.Context, id string, nc NewClass) (Class, error) {
	if err := core.CheckStruct(nc); err != nil {
		return Class{}, err
	}
	return s.update(ctx, id, nc)
}

func (s ClassService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
