package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/volatiletech/null/v8"

	"github.com/bluejays/schoolsys/core"
)

type Student struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	FatherName  null.String `json:"fatherName,omitempty"`
	BFormNumber null.String `json:"bFormNumber,omitempty"`
	AdmissionNo string      `json:"admissionNo,omitempty"`
	GuardianID  string      `json:"guardianId"`
	ClassID     string      `json:"classId"`
	SectionID   string      `json:"sectionId"`
	BranchID    string      `json:"branchId"`
	PhotoURL    null.String `json:"photoUrl,omitempty"`
	CreatedAt   string      `json:"createdAt,omitempty"`
}

// AdmissionDraft is the multi-step student-admission payload: step 1 collects
// the student's own particulars, step 2 the guardian link, step 3 fees and
// documents. The wizard in package ui gates the steps; this type is the final
// flattened submission.
type AdmissionDraft struct {
	// step 1: student info
	Name        string `json:"name" validate:"required"`
	FatherName  string `json:"fatherName,omitempty"`
	BFormNumber string `json:"bFormNumber,omitempty"`
	ClassID     string `json:"classId" validate:"required"`
	SectionID   string `json:"sectionId" validate:"required"`
	BranchID    string `json:"branchId" validate:"required"`

	// step 2: guardian info
	GuardianID string `json:"guardianId" validate:"required"`

	// step 3: fees & documents
	SemesterFee int64 `json:"semesterFee" validate:"gte=0"`
	Discount    int64 `json:"discount" validate:"gte=0"`

	Photo    *Attachment `json:"-"`
	Document *Attachment `json:"-"`
}

func (d AdmissionDraft) fields() map[string]string {
	return stringFields(d)
}

func (d AdmissionDraft) attachments() []Attachment {
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

type StudentService struct {
	resource[Student]
}

func (c *Client) Students() StudentService {
	return StudentService{resource[Student]{
		c:        c,
		base:     "/student",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s StudentService) ListByBranch(ctx context.Context, branchID string) ([]Student, error) {
	return s.list(ctx, url.Values{"branchId": {branchID}})
}

// ListBySection scopes the collection to one class section.
func (s StudentService) ListBySection(ctx context.Context, classID, sectionID string) ([]Student, error) {
	return s.list(ctx, url.Values{"classId": {classID}, "sectionId": {sectionID}})
}

func (s StudentService) Get(ctx context.Context, id string) (Student, error) {
	return s.get(ctx, id)
}

// Admit submits a completed admission draft. File-bearing drafts go out as
// multipart; otherwise plain JSON.
func (s StudentService) Admit(ctx context.Context, d AdmissionDraft) (Student, error) {
	if err := core.CheckStruct(d); err != nil {
		return Student{}, err
	}
	if files := d.attachments(); len(files) > 0 {
		body, err := s.c.postMultipart(ctx, http.MethodPost, s.base+"/create", d.fields(), files)
		if err != nil {
			return Student{}, err
		}
		return decode[Student](body, s.itemKeys...)
	}
	return s.create(ctx, d)
}

func (s StudentService) Update(ctx context.Context, id string, d AdmissionDraft) (Student, error) {
	if err := core.CheckStruct(d); err != nil {
		return Student{}, err
	}
	return s.update(ctx, id, d)
}

func (s StudentService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
