package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	model "bukuku_backend/internals/features/orders/purchases/model"
)

type BuyRequestCreate struct {
	BookIDList []int64 `json:"book_id_list" validate:"required"`
	ReaderID   string  `json:"reader_id"    validate:"required"`
}

func (r *BuyRequestCreate) ToModel() (*model.BuyRequestModel, error) {
	raw, err := json.Marshal(r.BookIDList)
	if err != nil {
		return nil, err
	}
	return &model.BuyRequestModel{
		BookIDList: datatypes.JSON(raw),
		ReaderID:   r.ReaderID,
	}, nil
}
