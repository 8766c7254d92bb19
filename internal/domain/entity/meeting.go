package entity

// Meeting is one dated slot pair of the schedule. Date is YYYY-MM-DD and
// Time is HH:MM in the configured zone. Presenter emails are copies taken at
// assignment time.
type Meeting struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	Presenter1      string `json:"presenter1,omitempty"`
	Presenter1Email string `json:"presenter1Email,omitempty"`
	Presenter2      string `json:"presenter2,omitempty"`
	Presenter2Email string `json:"presenter2Email,omitempty"`
}

// HasPresenter reports whether name occupies either slot.
func (m Meeting) HasPresenter(name string) bool {
	return name != "" && (m.Presenter1 == name || m.Presenter2 == name)
}

// PresenterEmails returns the set presenter addresses in slot order.
func (m Meeting) PresenterEmails() []string {
	var emails []string
	if m.Presenter1Email != "" {
		emails = append(emails, m.Presenter1Email)
	}
	if m.Presenter2Email != "" {
		emails = append(emails, m.Presenter2Email)
	}
	return emails
}

// Snapshot is the state returned after a mutation. SaveFailed is set when the
// mutation was applied in memory but could not be persisted.
type Snapshot struct {
	Members    []Member  `json:"members"`
	Schedule   []Meeting `json:"schedule"`
	SaveFailed bool      `json:"saveFailed,omitempty"`
}

// NextMeeting is the health preview of the upcoming meeting.
type NextMeeting struct {
	Meeting
	StartsIn string `json:"startsIn"`
}
