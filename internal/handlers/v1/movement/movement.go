package movement

// Movement is the API response model for a single ledger movement.
type Movement struct {
	Amount string `json:"amount" doc:"Signed decimal amount"`
	Kind   string `json:"kind" doc:"deposit or withdrawal"`
	Date   string `json:"date" doc:"RFC3339 movement date"`
}
