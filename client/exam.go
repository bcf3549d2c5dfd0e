package client

import (
	"context"
	"net/url"

	"github.com/bluejays/schoolsys/core"
)

// TestRecord is one scheduled or graded class test.
type TestRecord struct {
	ID         string `json:"_id"`
	TestName   string `json:"testName"`
	ClassID    string `json:"classId"`
	SectionID  string `json:"sectionId,omitempty"`
	SubjectID  string `json:"subjectId"`
	TotalMarks int    `json:"totalMarks"`
	Date       string `json:"date,omitempty"`
}

type TestDraft struct {
	TestName   string `json:"testName" validate:"required"`
	ClassID    string `json:"classId" validate:"required"`
	SectionID  string `json:"sectionId,omitempty"`
	SubjectID  string `json:"subjectId" validate:"required"`
	TotalMarks int    `json:"totalMarks" validate:"gt=0"`
	Date       string `json:"date,omitempty"`
}

type TestService struct {
	resource[TestRecord]
}

// Tests wraps the test-management resource. Update/delete use conventional
// path parameters; the legacy "&id=" suffix form is not carried over.
func (c *Client) Tests() TestService {
	return TestService{resource[TestRecord]{
		c:        c,
		base:     "/test-management",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s TestService) ListByClass(ctx context.Context, classID string) ([]TestRecord, error) {
	return s.list(ctx, url.Values{"classId": {classID}})
}

func (s TestService) Get(ctx context.Context, id string) (TestRecord, error) {
	return s.get(ctx, id)
}

func (s TestService) Create(ctx context.Context, d TestDraft) (TestRecord, error) {
	if err := core.CheckStruct(d); err != nil {
		return TestRecord{}, err
	}
	return s.create(ctx, d)
}

func (s TestService) Update(ctx context.Context, id string, d TestDraft) (TestRecord, error) {
	if err := core.CheckStruct(d); err != nil {
		return TestRecord{}, err
	}
	return s.update(ctx, id, d)
}

func (s TestService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
