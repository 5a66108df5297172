package entity

// Category is one of the three fixed labels assigned to a prediction.
type Category string

const (
	CategoryRecyclable    Category = "Recyclable"
	CategoryCompost       Category = "Compost"
	CategoryNonRecyclable Category = "Non-Recyclable"
)

// PredictionResult is request-scoped: built once from the model's answer,
// returned to the caller, never stored.
type PredictionResult struct {
	RawText  string
	Category Category
}

type PredictResponse struct {
	Success    bool     `json:"success"`
	Prediction string   `json:"prediction"`
	Category   Category `json:"category"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
