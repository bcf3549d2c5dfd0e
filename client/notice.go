package client

import (
	"context"
	"net/url"

	"github.com/bluejays/schoolsys/core"
)

type Notice struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	BranchID    string `json:"branchId,omitempty"`
	Date        string `json:"date,omitempty"`
}

type NewNotice struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	BranchID    string `json:"branchId,omitempty"`
	Date        string `json:"date,omitempty"`
}

type NoticeService struct {
	resource[Notice]
}

// Notices is the board visible to students and guardians.
func (c *Client) Notices() NoticeService {
	return NoticeService{resource[Notice]{
		c:        c,
		base:     "/notice",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

// TeacherNotices is the staff-room board. Update/delete use conventional
// path parameters; the legacy "&id=" suffix form is not carried over.
func (c *Client) TeacherNotices() NoticeService {
	return NoticeService{resource[Notice]{
		c:        c,
		base:     "/teacher-notice",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s NoticeService) List(ctx context.Context) ([]Notice, error) {
	return s.list(ctx, nil)
}

func (s NoticeService) ListByBranch(ctx context.Context, branchID string) ([]Notice, error) {
	return s.list(ctx, url.Values{"branchId": {branchID}})
}

func (s NoticeService) Get(ctx context.Context, id string) (Notice, error) {
	return s.get(ctx, id)
}

func (s NoticeService) Create(ctx context.Context, nn NewNotice) (Notice, error) {
	if err := core.CheckStruct(nn); err != nil {
		return Notice{}, err
	}
	return s.create(ctx, nn)
}

func (s NoticeService) Update(ctx context.Context, id string, nn NewNotice) (Notice, error) {
	if err := core.CheckStruct(nn); err != nil {
		return Notice{}, err
	}
	return s.update(ctx, id, nn)
}

func (s NoticeService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
