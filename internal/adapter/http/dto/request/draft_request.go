package request

import (
	"bytes"
	"encoding/json"
	"errors"

	"coatingshop/internal/domain/builder"
)

var ErrInvalidQuantity = errors.New("quantity must be a string or a number")

// FlexString accepts a JSON string or number. The item form keeps quantity as
// text so partially typed values can be validated.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidQuantity
	}
	*s = FlexString(n.String())
	return nil
}

type ItemFormRequest struct {
	Type     string     `json:"type"`
	Size     string     `json:"size"`
	Quantity FlexString `json:"quantity"`
}

func (r ItemFormRequest) ToForm() builder.ItemForm {
	return builder.ItemForm{Type: r.Type, Size: r.Size, Quantity: string(r.Quantity)}
}

type PromoCodeRequest struct {
	Code string `json:"code"`
}

type TouchRequest struct {
	Field string `json:"field" binding:"required"`
}

type ValidateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}
