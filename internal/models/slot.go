package models

// TimeSlot is one bookable appointment start time within open hours.
// ID is deterministic per date+start so repeated generation reproduces the
// same identifiers; there is no double-booking concept, so IsAvailable is
// always true. IsSelected is presentation state echoed back to clients.
type TimeSlot struct {
	ID           string `json:"id"`
	StartTime    string `json:"start_time"`
	DisplayLabel string `json:"display_label"`
	IsAvailable  bool   `json:"is_available"`
	IsSelected   bool   `json:"is_selected"`
}

// SlotID builds the deterministic slot identifier from a calendar date and a
// 24-hour start time.
func SlotID(date Date, start WallClock) string {
	return date.ISO() + "T" + start.String()
}
