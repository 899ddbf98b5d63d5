package models

// ReviewAPIResponse is returned by the review listing API.
type ReviewAPIResponse struct {
	Words []CacheEntry `json:"words"`
	Total int64        `json:"total"`
}

// ChallengeResponse answers a url_verification request.
type ChallengeResponse struct {
	Challenge string `json:"challenge"`
}
