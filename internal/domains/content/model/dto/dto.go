package dto

import (
	"lbm/internal/domains/content/model"
	gDto "lbm/shared/dto"
	gModel "lbm/shared/model"
	"lbm/shared/timezone"

	"github.com/google/uuid"
)

type UpdateContentRequest struct {
	Fields map[string]string `json:"fields" validate:"required,min=1"`
}

func (c *UpdateContentRequest) ToModel(page, actor string) model.PageContent {
	return model.PageContent{
		ID:      uuid.NewString(),
		PageKey: page,
		Fields:  model.FieldMap(c.Fields),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type ContentResponse struct {
	Page   string            `json:"page"`
	Fields map[string]string `json:"fields"`
	gDto.Metadata
}

func (r *ContentResponse) FromModel(model model.PageContent) {
	r.Page = model.PageKey
	r.Fields = model.Fields
	r.Metadata.FromModel(model.Metadata)
}
