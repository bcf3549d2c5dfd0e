package client

import (
	"context"

	"github.com/bluejays/schoolsys/core"
)

type Holiday struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Date  string `json:"date"` // YYYY-MM-DD
}

type NewHoliday struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required"`
}

type HolidayService struct {
	resource[Holiday]
}

func (c *Client) Holidays() HolidayService {
	return HolidayService{resource[Holiday]{
		c:        c,
		base:     "/holiday",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s HolidayService) List(ctx context.Context) ([]Holiday, error) {
	return s.list(ctx, nil)
}

func (s HolidayService) Create(ctx context.Context, nh NewHoliday) (Holiday, error) {
	if err := core.CheckStruct(nh); err != nil {
		return Holiday{}, err
	}
	return s.create(ctx, nh)
}

func (s HolidayService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
