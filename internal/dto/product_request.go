package dto

import "encoding/json"

type UploadProductRequest struct {
	Price     string
	FileName  string
	MimeType  string
	ImageData []byte
}

type AnalysisRequest struct {
	ProductName     string        `json:"productName"`
	ProductCategory string        `json:"productCategory"`
	RawMaterialCost NumericString `json:"rawMaterialCost"`
	SellingPrice    NumericString `json:"sellingPrice"`
}

// NumericString is a numeric field as submitted by an HTML form: the browser
// sends input values as JSON strings, while API clients send bare numbers.
// Both decode to the literal text, which is embedded into prompts unchanged.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = NumericString(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}

	*n = NumericString(num.String())
	return nil
}
