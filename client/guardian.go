package client

import (
	"context"
	"net/url"

	"github.com/volatiletech/null/v8"

	"github.com/bluejays/schoolsys/core"
)

type Guardian struct {
	ID         string      `json:"_id"`
	Name       string      `json:"name"`
	CNIC       string      `json:"cnic"`
	Phone      null.String `json:"phone,omitempty"`
	Occupation null.String `json:"occupation,omitempty"`
	Address    null.String `json:"address,omitempty"`
}

type NewGuardian struct {
	Name       string `json:"name" validate:"required"`
	CNIC       string `json:"cnic" validate:"required,cnic"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,phone"`
	Occupation string `json:"occupation,omitempty"`
	Address    string `json:"address,omitempty"`
}

type GuardianService struct {
	resource[Guardian]
}

func (c *Client) Guardians() GuardianService {
	return GuardianService{resource[Guardian]{
		c:        c,
		base:     "/guardian",
		listKeys: []string{"data", "data"},
		itemKeys: []string{"data", "data"},
	}}
}

func (s GuardianService) List(ctx context.Context) ([]Guardian, error) {
	return s.list(ctx, nil)
}

func (s GuardianService) Get(ctx context.Context, id string) (Guardian, error) {
	return s.get(ctx, id)
}

// LookupByCNIC finds an existing guardian by identity number; the admission
// wizard's Guardian Info step uses it to populate guardian details before the
// form may advance.
func (s GuardianService) LookupByCNIC(ctx context.Context, cnic string) (Guardian, error) {
	body, err := s.c.get(ctx, s.base+"/get-by-cnic/"+url.PathEscape(cnic), nil)
	if err != nil {
		return Guardian{}, err
	}
	return decode[Guardian](body, s.itemKeys...)
}

func (s GuardianService) Create(ctx context.Context, ng NewGuardian) (Guardian, error) {
	if err := core.CheckStruct(ng); err != nil {
		return Guardian{}, err
	}
	return s.create(ctx, ng)
}

func (s GuardianService) Update(ctx context.Context, id string, ng NewGuardian) (Guardian, error) {
	if err := core.CheckStruct(ng); err != nil {
		return Guardian{}, err
	}
	return s.update(ctx, id, ng)
}

func (s GuardianService) Delete(ctx context.Context, id string) error {
	return s.remove(ctx, id)
}
