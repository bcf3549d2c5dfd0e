package client

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bluejays/schoolsys/core"
)

// Attendance statuses as the backend spells them.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLeave   = "leave"
)

type AttendanceRecord struct {
	ID        string `json:"_id"`
	PersonID  string `json:"personId"` // student, teacher or staff id
	Date      string `json:"date"`     // YYYY-MM-DD
	Status    string `json:"status"`
	ClassID   string `json:"classId,omitempty"`
	SectionID string `json:"sectionId,omitempty"`
	BranchID  string `json:"branchId,omitempty"`
}

type AttendanceMark struct {
	PersonID string `json:"personId" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=present absent leave"`
}

// AttendanceStats summarizes one person's attendance over a period.
type AttendanceStats struct {
	PersonID string `json:"personId"`
	Present  int    `json:"present"`
	Absent   int    `json:"absent"`
	Leaves   int    `json:"leaves"`
}

// AttendanceService covers the backend's attendance variants; kind selects
// the resource ("student", "teacher" or "staff").
type AttendanceService struct {
	c    *Client
	base string
}

func (c *Client) StudentAttendance() AttendanceService {
	return AttendanceService{c: c, base: "/student-attendance"}
}

func (c *Client) TeacherAttendance() AttendanceService {
	return AttendanceService{c: c, base: "/teacher-attendance"}
}

func (c *Client) StaffAttendance() AttendanceService {
	return AttendanceService{c: c, base: "/staff-attendance"}
}

// ListRange fetches the records for a scope over an inclusive date range.
// Pass empty scope values to leave them unconstrained.
func (s AttendanceService) ListRange(ctx context.Context, branchID, classID, sectionID, from, to string) ([]AttendanceRecord, error) {
	q := url.Values{}
	for k, v := range map[string]string{
		"branchId": branchID, "classId": classID, "sectionId": sectionID,
		"from": from, "to": to,
	} {
		if v != "" {
			q.Set(k, v)
		}
	}
	body, err := s.c.get(ctx, s.base+"/get-all", q)
	if err != nil {
		return nil, err
	}
	return decode[[]AttendanceRecord](body, "data", "data")
}

// Mark records attendance for a set of people on one date; one HTTP call for
// the whole batch.
func (s AttendanceService) Mark(ctx context.Context, marks []AttendanceMark) error {
	for _, m := range marks {
		if err := core.CheckStruct(m); err != nil {
			return err
		}
	}
	_, err := s.c.postJSON(ctx, s.base+"/create", map[string]interface{}{"records": marks})
	return err
}

// Stats fetches the attendance summary for one person.
func (s AttendanceService) Stats(ctx context.Context, personID string) (AttendanceStats, error) {
	body, err := s.c.get(ctx, s.base+"/stats/"+url.PathEscape(personID), nil)
	if err != nil {
		return AttendanceStats{}, err
	}
	return decode[AttendanceStats](body, "data")
}

// statsConcurrency bounds BulkStats fan-out.
const statsConcurrency = 4

// BulkStats enriches a list of people with their attendance summaries using a
// bounded worker pool; results keep no particular order guarantee and are
// keyed by person id. The first failure cancels the remaining fetches.
func (s AttendanceService) BulkStats(ctx context.Context, personIDs []string) (map[string]AttendanceStats, error) {
	out := make(map[string]AttendanceStats, len(personIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statsConcurrency)
	for _, id := range personIDs {
		id := id
		g.Go(func() error {
			stats, err := s.Stats(ctx, id)
			if err != nil {
				return err
			}
			mu.Lock()
			out[id] = stats
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
