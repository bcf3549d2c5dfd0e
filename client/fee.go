package client

import (
	"context"
	"net/url"

	"github.com/bluejays/schoolsys/core"
)

type FeeDetail struct {
	ID                string `json:"_id"`
	StudentID         string `json:"studentId"`
	Semester          string `json:"semester,omitempty"`
	SemesterFee       int64  `json:"semesterFee"`
	SemesterFeesPaid  int64  `json:"semesterFeesPaid"`
	Discount          int64  `json:"discount"`
	LateFeeSurcharged int64  `json:"lateFeeSurcharged"`
	OtherPenalties    int64  `json:"otherPenalties"`
	CreatedAt         string `json:"createdAt,omitempty"`
}

// Remaining is the outstanding balance on this fee record.
func (f FeeDetail) Remaining() int64 {
	return core.RemainingFee(f.SemesterFee, f.SemesterFeesPaid, f.Discount, f.LateFeeSurcharged, f.OtherPenalties)
}

type FeeDraft struct {
	StudentID         string `json:"studentId" validate:"required"`
	Semester          string `json:"semester,omitempty"`
	SemesterFee       int64  `json:"semesterFee" validate:"gte=0"`
	SemesterFeesPaid  int64  `json:"semesterFeesPaid" validate:"gte=0"`
	Discount          int64  `json:"discount" validate:"gte=0"`
	LateFeeSurcharged int64  `json:"lateFeeSurcharged" validate:"gte=0"`
	OtherPenalties    int64  `json:"otherPenalties" validate:"gte=0"`
}

type FeeService struct {
	resource[FeeDetail]
}

func (c *Client) Fees() FeeService {
	return FeeService{resource[FeeDetail]{
		c:        c,
		base:     "/fee-detail",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s FeeService) ListByStudent(ctx context.Context, studentID string) ([]FeeDetail, error) {
	return s.list(ctx, url.Values{"studentId": {studentID}})
}

func (s FeeService) ListByBranch(ctx context.Context, branchID string) ([]FeeDetail, error) {
	return s.list(ctx, url.Values{"branchId": {branchID}})
}

func (s FeeService) Get(ctx context.Context, id string) (FeeDetail, error) {
	return s.get(ctx, id)
}

func (s FeeService) Create(ctx context.Context, d FeeDraft) (FeeDetail, error) {
	if err := core.CheckStruct(d); err != nil {
		return FeeDetail{}, err
	}
	return s.create(ctx, d)
}

func (s FeeService) Update(ctx context.Context, id string, d FeeDraft) (FeeDetail, error) {
	if err := core.CheckStruct(d); err != nil {
		return FeeDetail{}, err
	}
	return s.update(ctx, id, d)
}

func (s FeeService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
