package entity

// ReminderReport summarizes one run of the reminder check or a manual send.
type ReminderReport struct {
	Branch      string   `json:"branch"`
	Meeting     *Meeting `json:"meeting,omitempty"`
	Sent        int      `json:"sent"`
	Failed      int      `json:"failed"`
	ReportSent  bool     `json:"reportSent"`
	SlackPosted bool     `json:"slackPosted"`
	Extended    bool     `json:"extended"`
	RemovedPast int      `json:"removedPast"`
	SaveFailed  bool     `json:"saveFailed,omitempty"`
}
