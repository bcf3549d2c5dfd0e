package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/bluejays/schoolsys/core"
)

func TestUnwrapNesting(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		keys    []string
		want    string
		wantErr bool
	}{
		{name: "single level", body: `{"data": 42}`, keys: []string{"data"}, want: "42"},
		{name: "double level", body: `{"data":{"data":[1,2]}}`, keys: []string{"data", "data"}, want: "[1,2]"},
		{
			name: "named collection",
			body: `{"data":{"data":{"branches":[{"_id":"b1"}]}}}`,
			keys: []string{"data", "data", "branches"},
			want: `[{"_id":"b1"}]`,
		},
		{name: "missing key", body: `{"data":{}}`, keys: []string{"data", "data"}, wantErr: true},
		{name: "null payload", body: `{"data":null}`, keys: []string{"data"}, wantErr: true},
		{name: "not an object", body: `[1,2,3]`, keys: []string{"data"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unwrap([]byte(tt.body), tt.keys...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestBranchListUnwrapsNamedCollection(t *testing.T) {
	fx := setup(t)
	fx.app.GET("/branch/get-all", func(c echo.Context) error {
		return c.JSON(http.StatusOK, env2(echo.Map{"branches": []Branch{
			{ID: "b-1", BranchName: "North Campus"},
			{ID: "b-2", BranchName: "City Campus"},
		}}))
	})
	_ = fx.store.SetToken("tok")

	branches, err := fx.client.Branches().List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, branches, 2)
	assert.Equal(t, "North Campus", branches[0].BranchName)
}

func TestTimeSlotListUnwrapsNamedCollection(t *testing.T) {
	fx := setup(t)
	fx.app.GET("/time-slot/get-all", func(c echo.Context) error {
		assert.Equal(t, "b-1", c.QueryParam("branchId"))
		return c.JSON(http.StatusOK, env2(echo.Map{"timeSlots": []TimeSlot{
			{ID: "t-1", StartTime: "08:00", EndTime: "08:45"},
		}}))
	})
	_ = fx.store.SetToken("tok")

	slots, err := fx.client.TimeSlots().ListByBranch(context.Background(), "b-1")
	assert.NoError(t, err)
	assert.Len(t, slots, 1)
	assert.Equal(t, "08:00", slots[0].StartTime)
}

func TestCreateClassScenario(t *testing.T) {
	fx := setup(t)

	var classes []Class
	var createCalls int
	fx.app.POST("/class/create", func(c echo.Context) error {
		createCalls++
		var nc NewClass
		if err := c.Bind(&nc); err != nil {
			return err
		}
		// exactly the submitted fields arrive; timestamp is server-assigned
		assert.Equal(t, "Semester 1", nc.ClassName)
		assert.Equal(t, "Intro term", nc.Description)
		created := Class{ID: "c-1", ClassName: nc.ClassName, CreatedAt: "2026-08-31T00:00:00Z"}
		if nc.Description != "" {
			created.Description.SetValid(nc.Description)
		}
		classes = append(classes, created)
		return c.JSON(http.StatusOK, env2(created))
	})
	fx.app.GET("/class/get-all", func(c echo.Context) error {
		return c.JSON(http.StatusOK, env2(classes))
	})
	_ = fx.store.SetToken("tok")

	_, err := fx.client.Classes().Create(context.Background(), NewClass{
		ClassName:   "Semester 1",
		Description: "Intro term",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, createCalls)

	// the list subsequently includes the created record
	got, err := fx.client.Classes().List(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Semester 1", got[0].ClassName)
		assert.NotEmpty(t, got[0].CreatedAt)
	}
}

func TestDeleteIssuesSingleCall(t *testing.T) {
	fx := setup(t)
	var deleted []string
	fx.app.DELETE("/notice/delete/:id", func(c echo.Context) error {
		deleted = append(deleted, c.Param("id"))
		return c.JSON(http.StatusOK, env1(echo.Map{"deleted": true}))
	})
	_ = fx.store.SetToken("tok")

	err := fx.client.Notices().Delete(context.Background(), "n-9")
	assert.NoError(t, err)
	assert.Equal(t, []string{"n-9"}, deleted)
}

func TestMissingEnvelopeKeyIsAPIError(t *testing.T) {
	fx := setup(t)
	fx.app.GET("/branch/get-all", func(c echo.Context) error {
		return c.JSON(http.StatusOK, env1(echo.Map{"unexpected": true}))
	})
	_ = fx.store.SetToken("tok")

	_, err := fx.client.Branches().List(context.Background())
	var apiErr *core.APIError
	assert.ErrorAs(t, err, &apiErr)
}
