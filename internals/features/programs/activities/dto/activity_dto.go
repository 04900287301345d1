package dto

import (
	"strings"

	"wellness_backend/internals/features/programs/activities/model"
)

type CreateActivityRequest struct {
	ActivityName        string  `json:"activity_name" validate:"required,min=2,max=150"`
	ActivityDescription *string `json:"activity_description"`
	ActivityIsActive    *bool   `json:"activity_is_active"`
}

func (r CreateActivityRequest) ToModel() model.ActivityModel {
	m := model.ActivityModel{
		ActivityName:        strings.TrimSpace(r.ActivityName),
		ActivityDescription: r.ActivityDescription,
		ActivityIsActive:    true,
	}
	if r.ActivityIsActive != nil {
		m.ActivityIsActive = *r.ActivityIsActive
	}
	return m
}

type UpdateActivityRequest struct {
	ActivityName        *string `json:"activity_name" validate:"omitempty,min=2,max=150"`
	ActivityDescription *string `json:"activity_description"`
	ActivityIsActive    *bool   `json:"activity_is_active"`
}

func (r UpdateActivityRequest) Apply(m *model.ActivityModel) {
	if r.ActivityName != nil {
		m.ActivityName = strings.TrimSpace(*r.ActivityName)
	}
	if r.ActivityDescription != nil {
		m.ActivityDescription = r.ActivityDescription
	}
	if r.ActivityIsActive != nil {
		m.ActivityIsActive = *r.ActivityIsActive
	}
}
