package adminclient

// AuditViewer is the read-only view over the decision trail.
type AuditViewer struct {
	client *Client
	logs   []AuditLogEntry
}

func NewAuditViewer(client *Client) *AuditViewer {
	return &AuditViewer{client: client}
}

func (v *AuditViewer) Load() error {
	var resp struct {
		Total int64           `json:"total"`
		Logs  []AuditLogEntry `json:"logs"`
	}
	if err := v.client.get("/api/admin/audit-log", nil, &resp); err != nil {
		return err
	}
	v.logs = resp.Logs
	return nil
}

func (v *AuditViewer) Entries() []AuditLogEntry { return v.logs }
func (v *AuditViewer) Empty() bool              { return len(v.logs) == 0 }

// FeedbackViewer is the read-only view over contributor messages.
type FeedbackViewer struct {
	client *Client
	items  []Feedback
}

func NewFeedbackViewer(client *Client) *FeedbackViewer {
	return &FeedbackViewer{client: client}
}

func (v *FeedbackViewer) Load() error {
	var resp struct {
		Total     int64      `json:"total"`
		Feedbacks []Feedback `json:"feedbacks"`
	}
	if err := v.client.get("/api/admin/feedbacks", nil, &resp); err != nil {
		return err
	}
	v.items = resp.Feedbacks
	return nil
}

func (v *FeedbackViewer) Items() []Feedback { return v.items }
func (v *FeedbackViewer) Empty() bool       { return len(v.items) == 0 }
