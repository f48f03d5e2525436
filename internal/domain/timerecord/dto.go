package timerecord

type PunchRequest struct {
	UserID string `json:"-"`
	Kind   Kind   `json:"type"`
}

// Validate only checks the kind; sequence rules need the day's records.
func (r *PunchRequest) Validate() error {
	if !r.Kind.IsValid() {
		return ErrInvalidKind
	}
	return nil
}

type PunchResponse struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Kind    Kind   `json:"type"`
	Message string `json:"-"`
}

type TodayResponse struct {
	Date      string          `json:"date"`
	Records   map[Kind]string `json:"records"`
	Available []Kind          `json:"available"`
}
