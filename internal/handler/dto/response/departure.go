package response

type FlightMutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ReplaceDeparturesResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}
