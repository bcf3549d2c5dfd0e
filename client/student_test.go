package client

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/bluejays/schoolsys/core"
)

func validAdmission() AdmissionDraft {
	return AdmissionDraft{
		Name:        "Bilal Ahmed",
		FatherName:  "Tariq Ahmed",
		ClassID:     "c-1",
		SectionID:   "s-1",
		BranchID:    "b-1",
		GuardianID:  "g-1",
		SemesterFee: 10000,
	}
}

func TestAdmitJSON(t *testing.T) {
	fx := setup(t)
	fx.app.POST("/student/create", func(c echo.Context) error {
		assert.Contains(t, c.Request().Header.Get("Content-Type"), "application/json")
		var d AdmissionDraft
		if err := c.Bind(&d); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, env2(Student{ID: "stu-1", Name: d.Name, GuardianID: d.GuardianID}))
	})
	_ = fx.store.SetToken("tok")

	stu, err := fx.client.Students().Admit(context.Background(), validAdmission())
	assert.NoError(t, err)
	assert.Equal(t, "stu-1", stu.ID)
	assert.Equal(t, "Bilal Ahmed", stu.Name)
}

func TestAdmitMultipartWithPhoto(t *testing.T) {
	fx := setup(t)
	fx.app.POST("/student/create", func(c echo.Context) error {
		assert.Contains(t, c.Request().Header.Get("Content-Type"), "multipart/form-data")

		// scalar fields arrive string-coerced
		assert.Equal(t, "Bilal Ahmed", c.FormValue("name"))
		assert.Equal(t, "10000", c.FormValue("semesterFee"))
		assert.Equal(t, "g-1", c.FormValue("guardianId"))

		file, err := c.FormFile("photo")
		if assert.NoError(t, err) {
			assert.Equal(t, "bilal.jpg", file.Filename)
		}
		return c.JSON(http.StatusOK, env2(Student{ID: "stu-2"}))
	})
	_ = fx.store.SetToken("tok")

	draft := validAdmission()
	draft.Photo = &Attachment{Filename: "bilal.jpg", ContentType: "image/jpeg", Content: []byte("jpegdata")}
	stu, err := fx.client.Students().Admit(context.Background(), draft)
	assert.NoError(t, err)
	assert.Equal(t, "stu-2", stu.ID)
}

func TestAdmitRejectsIncompleteDraft(t *testing.T) {
	fx := setup(t)
	var calls int
	fx.app.POST("/student/create", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, env2(Student{}))
	})
	_ = fx.store.SetToken("tok")

	draft := validAdmission()
	draft.GuardianID = "" // guardian step never completed
	_, err := fx.client.Students().Admit(context.Background(), draft)
	var vErr *core.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.FieldMap(), "guardianId")
	assert.Zero(t, calls)
}

func TestGuardianLookupByCNIC(t *testing.T) {
	fx := setup(t)
	fx.app.GET("/guardian/get-by-cnic/:cnic", func(c echo.Context) error {
		if c.Param("cnic") != "12345-6789012-3" {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "guardian not found"})
		}
		return c.JSON(http.StatusOK, env2(Guardian{ID: "g-1", Name: "Tariq Ahmed", CNIC: "12345-6789012-3"}))
	})
	_ = fx.store.SetToken("tok")

	g, err := fx.client.Guardians().LookupByCNIC(context.Background(), "12345-6789012-3")
	assert.NoError(t, err)
	assert.Equal(t, "g-1", g.ID)

	_, err = fx.client.Guardians().LookupByCNIC(context.Background(), "99999-9999999-9")
	var apiErr *core.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "guardian not found", apiErr.Message)
}

func TestBulkStatsBounded(t *testing.T) {
	fx := setup(t)

	var mu sync.Mutex
	inflight, peak := 0, 0
	fx.app.GET("/teacher-attendance/stats/:id", func(c echo.Context) error {
		mu.Lock()
		inflight++
		if inflight > peak {
			peak = inflight
		}
		mu.Unlock()

		id := c.Param("id")
		resp := AttendanceStats{PersonID: id, Present: len(id)}

		mu.Lock()
		inflight--
		mu.Unlock()
		return c.JSON(http.StatusOK, env1(resp))
	})
	_ = fx.store.SetToken("tok")

	ids := []string{"t1", "t22", "t333", "t4444", "t55555", "t666666", "t7777777"}
	stats, err := fx.client.TeacherAttendance().BulkStats(context.Background(), ids)
	assert.NoError(t, err)
	assert.Len(t, stats, len(ids))
	for _, id := range ids {
		assert.Equal(t, len(id), stats[id].Present)
	}
	mu.Lock()
	assert.LessOrEqual(t, peak, statsConcurrency)
	mu.Unlock()

	// deterministic check that every id came back keyed correctly
	var got []string
	for id := range stats {
		got = append(got, id)
	}
	sort.Strings(got)
	want := append([]string(nil), ids...)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestFeeRemaining(t *testing.T) {
	fee := FeeDetail{
		SemesterFee:       10000,
		SemesterFeesPaid:  4000,
		Discount:          500,
		LateFeeSurcharged: 200,
		OtherPenalties:    0,
	}
	assert.Equal(t, int64(5700), fee.Remaining())
}
