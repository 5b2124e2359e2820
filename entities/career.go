package entities

// CareerProfile is the input to career prediction. It is transient: held in
// client session state only, never persisted.
type CareerProfile struct {
	Course         string   `json:"course"`
	Specialization string   `json:"specialization,omitempty"`
	Skills         []string `json:"skills"`
	Interests      []string `json:"interests"`
}

type CareerPrediction struct {
	Career string `json:"predicted_career"`
}
