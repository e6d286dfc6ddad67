package dto

import (
	"strings"

	model "bukuku_backend/internals/features/catalog/demands/model"
)

type DemandCreateRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Author      string  `json:"author"      validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PictureURL  string  `json:"picture_url"`
}

func (r *DemandCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
}

func (r *DemandCreateRequest) ToModel() *model.DemandModel {
	return &model.DemandModel{
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		Price:       r.Price,
		PictureURL:  r.PictureURL,
	}
}
