package prediction

type PredictResponse struct {
	Result     string  `json:"result"`
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}
