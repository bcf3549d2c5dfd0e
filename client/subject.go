package client

import (
	"context"
	"net/url"

	"github.com/volatiletech/null/v8"

	"github.com/bluejays/schoolsys/core"
)

type Subject struct {
	ID          string      `json:"_id"`
	SubjectName string      `json:"subjectName"`
	ClassID     string      `json:"classId"`
	TeacherID   null.String `json:"teacherId,omitempty"`
}

type NewSubject struct {
	SubjectName string `json:"subjectName" validate:"required"`
	ClassID     string `json:"classId" validate:"required"`
	TeacherID   string `json:"teacherId,omitempty"`
}

type SubjectService struct {
	resource[Subject]
}

func (c *Client) Subjects() SubjectService {
	return SubjectService{resource[Subject]{
		c:        c,
		base:     "/subject",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s SubjectService) ListByClass(ctx context.Context, classID string) ([]Subject, error) {
	return s.list(ctx, url.Values{"classId": {classID}})
}

func (s SubjectService) Get(ctx context.Context, id string) (Subject, error) {
	return s.get(ctx, id)
}

func (s SubjectService) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	if err := core.CheckStruct(ns); err != nil {
		return Subject{}, err
	}
	return s.create(ctx, ns)
}

func (s SubjectService) Update(ctx context.Context, id string, ns NewSubject) (Subject, error) {
	if err := core.CheckStruct(ns); err != nil {
		return Subject{}, err
	}
	return s.update(ctx, id, ns)
}

func (s SubjectService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
