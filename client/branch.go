package client

import (
	"context"

	"github.com/volatiletech/null/v8"

	"github.com/bluejays/schoolsys/core"
)

// Branch is one campus of the school system; every other entity is scoped to
// a branch.
type Branch struct {
	ID         string      `json:"_id"`
	BranchName string      `json:"branchName"`
	Address    null.String `json:"address,omitempty"`
	Phone      null.String `json:"phone,omitempty"`
	Email      null.String `json:"email,omitempty"`
	CreatedAt  string      `json:"createdAt,omitempty"`
}

type NewBranch struct {
	BranchName string `json:"branchName" validate:"required"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,phone"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
}

type BranchService struct {
	resource[Branch]
}

func (c *Client) Branches() BranchService {
	return BranchService{resource[Branch]{
		c:        c,
		base:     "/branch",
		listKeys: []string{"data", "data", "branches"},
		itemKeys: []string{"data", "data", "branch"},
	}}
}

func (s BranchService) List(ctx context.Context) ([]Branch, error) {
	return s.list(ctx, nil)
}

func (s BranchService) Get(ctx context.Context, id string) (Branch, error) {
	return s.get(ctx, id)
}

func (s BranchService) Create(ctx context.Context, nb NewBranch) (Branch, error) {
	if err := core.CheckStruct(nb); err != nil {
		return Branch{}, err
	}
	return s.create(ctx, nb)
}

func (s BranchService) Update(ctx context.Context, id string, nb NewBranch) (Branch, error) {
	if err := core.CheckStruct(nb); err != nil {
		return Branch{}, err
	}
	return s.update(ctx, id, nb)
}

func (s BranchService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
