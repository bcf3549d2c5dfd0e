package client

import (
	"context"
	"net/url"

	"github.com/bluejays/schoolsys/core"
)

// Promotion moves a set of students from one class/section to the next.
type Promotion struct {
	ID          string   `json:"_id"`
	StudentIDs  []string `json:"studentIds"`
	FromClassID string   `json:"fromClassId"`
	ToClassID   string   `json:"toClassId"`
	FromSection string   `json:"fromSectionId,omitempty"`
	ToSection   string   `json:"toSectionId,omitempty"`
	Year        string   `json:"year,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

type PromotionDraft struct {
	StudentIDs  []string `json:"studentIds" validate:"required,min=1"`
	FromClassID string   `json:"fromClassId" validate:"required"`
	ToClassID   string   `json:"toClassId" validate:"required"`
	FromSection string   `json:"fromSectionId,omitempty"`
	ToSection   string   `json:"toSectionId,omitempty"`
	Year        string   `json:"year,omitempty"`
}

type PromotionService struct {
	resource[Promotion]
}

func (c *Client) Promotions() PromotionService {
	return PromotionService{resource[Promotion]{
		c:        c,
		base:     "/promotion",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s PromotionService) ListByClass(ctx context.Context, classID string) ([]Promotion, error) {
	return s.list(ctx, url.Values{"classId": {classID}})
}

func (s PromotionService) Promote(ctx context.Context, d PromotionDraft) (Promotion, error) {
	if err := core.CheckStruct(d); err != nil {
		return Promotion{}, err
	}
	return s.create(ctx, d)
}
