package dto

import (
	"strings"

	model "bukuku_backend/internals/features/catalog/books/model"
)

/* =========================
   REQUEST
   ========================= */

// AddBookRequest datang sebagai multipart form; file cover ("picture")
// diambil terpisah lewat c.FormFile di controller.
type AddBookRequest struct {
	Title       string  `form:"title"       validate:"required"`
	Author      string  `form:"author"      validate:"required"`
	Price       float64 `form:"price"`
	Description string  `form:"description"`
}

type DeleteBookRequest struct {
	ID uint `json:"id" validate:"required"`
}

/* =========================
   NORMALIZER & MAPPER
   ========================= */

func (r *AddBookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
}

func (r *AddBookRequest) ToModel(pictureFilename string) *model.BookModel {
	return &model.BookModel{
		Title:           r.Title,
		Author:          r.Author,
		Price:           r.Price,
		Description:     r.Description,
		PictureFilename: pictureFilename,
	}
}
