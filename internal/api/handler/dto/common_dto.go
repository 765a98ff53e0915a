package dto

import (
	"bank-services/internal/domain/biz"
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

type ErrorDetail struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationFailuresResponse struct {
	Message            string                  `json:"message"`
	ValidationFailures []biz.ValidationFailure `json:"validationFailures"`
}

// amount renders a decimal as a bare JSON number without going through float64.
func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// FlexibleInt decodes from a JSON number or a numeric string. Anything else,
// null and empty strings included, decodes to zero and is left for business
// validation to report.
type FlexibleInt int64

func (n *FlexibleInt) UnmarshalJSON(data []byte) error {
	text := bytes.TrimSpace(bytes.Trim(bytes.TrimSpace(data), `"`))
	d, err := decimal.NewFromString(string(text))
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexibleInt(d.IntPart())
	return nil
}
