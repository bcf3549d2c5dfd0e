package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/volatiletech/null/v8"

	"github.com/bluejays/schoolsys/core"
)

type Staff struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	CNIC        string      `json:"cnic"`
	Phone       null.String `json:"phone,omitempty"`
	Designation string      `json:"designation"`
	Salary      int64       `json:"salary"`
	BranchID    string      `json:"branchId"`
	PhotoURL    null.String `json:"photoUrl,omitempty"`
	DocumentURL null.String `json:"documentUrl,omitempty"`
	CreatedAt   string      `json:"createdAt,omitempty"`
}

// StaffDraft is the staff create/update form payload. When Photo or Document
// is attached, the draft goes out as multipart/form-data with every scalar
// field string-coerced; otherwise as JSON.
type StaffDraft struct {
	Name        string `json:"name" validate:"required"`
	CNIC        string `json:"cnic" validate:"required,cnic"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,phone"`
	Designation string `json:"designation" validate:"required"`
	Salary      int64  `json:"salary" validate:"gte=0"`
	BranchID    string `json:"branchId" validate:"required"`

	Photo    *Attachment `json:"-"`
	Document *Attachment `json:"-"`
}

func (d StaffDraft) fields() map[string]string {
	return map[string]string{
		"name":        d.Name,
		"cnic":        d.CNIC,
		"phone":       d.Phone,
		"designation": d.Designation,
		"salary":      strconv.FormatInt(d.Salary, 10),
		"branchId":    d.BranchID,
	}
}

func (d StaffDraft) attachments() []Attachment {
	var files []Attachment
	if d.Photo != nil {
		f := *d.Photo
		f.Field = "photo"
		files = append(files, f)
	}
	if d.Document != nil {
		f := *d.Document
		f.Field = "document"
		files = append(files, f)
	}
	return files
}

type StaffService struct {
	resource[Staff]
}

func (c *Client) Staff() StaffService {
	return StaffService{resource[Staff]{
		c:        c,
		base:     "/staff",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s StaffService) ListByBranch(ctx context.Context, branchID string) ([]Staff, error) {
	return s.list(ctx, url.Values{"branchId": {branchID}})
}

func (s StaffService) Get(ctx context.Context, id string) (Staff, error) {
	return s.get(ctx, id)
}

func (s StaffService) Create(ctx context.Context, d StaffDraft) (Staff, error) {
	if err := core.CheckStruct(d); err != nil {
		return Staff{}, err
	}
	if files := d.attachments(); len(files) > 0 {
		body, err := s.c.postMultipart(ctx, http.MethodPost, s.base+"/create", d.fields(), files)
		if err != nil {
			return Staff{}, err
		}
		return decode[Staff](body, s.itemKeys...)
	}
	return s.create(ctx, d)
}

func (s StaffService) Update(ctx context.Context, id string, d StaffDraft) (Staff, error) {
	if err := core.CheckStruct(d); err != nil {
		return Staff{}, err
	}
	if files := d.attachments(); len(files) > 0 {
		body, err := s.c.postMultipart(ctx, http.MethodPut, s.base+"/update/"+url.PathEscape(id), d.fields(), files)
		if err != nil {
			return Staff{}, err
		}
		return decode[Staff](body, s.itemKeys...)
	}
	return s.update(ctx, id, d)
}

func (s StaffService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
