package notifx

// AdjustmentNotice describes one applied age adjustment.
type AdjustmentNotice struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	OldAge    int    `json:"old_age"`
	NewAge    int    `json:"new_age"`
}

// Delta returns the signed change the notice reports.
func (n AdjustmentNotice) Delta() int {
	return n.NewAge - n.OldAge
}

// FullName returns the subject's display name.
func (n AdjustmentNotice) FullName() string {
	return n.FirstName + " " + n.LastName
}
