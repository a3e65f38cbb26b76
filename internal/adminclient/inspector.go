package adminclient

import (
	"errors"
	"sort"
	"strings"
)

// StandardRejectReason replaces a blank rejection reason in the detail
// decision form.
const StandardRejectReason = "Your submission did not meet our guidelines."

// Categories an approval can assign; RawTextCategory is the default.
var Categories = []string{"raw_text", "images", "pdf", "scan_pdf", "zip"}

const RawTextCategory = "raw_text"

var ErrDecisionInFlight = errors.New("a decision is already in flight")

// Inspector loads one submission's full detail and offers the
// approve/reject actions. It is modal: one open submission, one
// decision surface, never two decisions in flight at once.
type Inspector struct {
	client *Client

	open     *SubmissionDetail
	inFlight bool

	// Called after a successful decision, strictly after the detail
	// view has been closed. List and dashboard reloads are independent.
	RefreshList      func()
	RefreshDashboard func()
}

func NewInspector(client *Client) *Inspector {
	return &Inspector{client: client}
}

// Open loads the detail for one submission. Loading the same id twice
// without an intervening decision yields identical state.
func (i *Inspector) Open(id string) (*SubmissionDetail, error) {
	var detail SubmissionDetail
	if err := i.client.get("/api/admin/submission/"+id, nil, &detail); err != nil {
		return nil, err
	}

	// Audit entries render newest first regardless of server order.
	sort.SliceStable(detail.AuditLog, func(a, b int) bool {
		return detail.AuditLog[a].Timestamp > detail.AuditLog[b].Timestamp
	})

	i.open = &detail
	return &detail, nil
}

func (i *Inspector) Close() {
	i.open = nil
}

func (i *Inspector) Current() *SubmissionDetail {
	return i.open
}

// ReadOnly reports whether the open submission has already been
// decided; decided submissions expose no action affordances.
func (i *Inspector) ReadOnly() bool {
	return i.open != nil && i.open.Status != "PENDING"
}

// Approve decides the open submission. An empty category falls back to
// raw_text. On success the detail view closes before the list and
// dashboard refreshes fire; on failure all state is left untouched.
func (i *Inspector) Approve(reason, notes, category string) error {
	if category == "" {
		category = RawTextCategory
	}
	body := map[string]string{"reason": reason, "notes": notes, "data_category": category}
	return i.decide("approve", body)
}

// Reject decides the open submission. A blank reason is replaced with
// the standard rejection message.
func (i *Inspector) Reject(reason, notes string) error {
	if strings.TrimSpace(reason) == "" {
		reason = StandardRejectReason
	}
	body := map[string]string{"reason": reason, "notes": notes}
	return i.decide("reject", body)
}

func (i *Inspector) decide(action string, body map[string]string) error {
	if i.open == nil {
		return errors.New("no submission open")
	}
	if i.ReadOnly() {
		return errors.New("submission already decided")
	}
	if i.inFlight {
		return ErrDecisionInFlight
	}

	i.inFlight = true
	err := i.client.send("POST", "/api/admin/submission/"+i.open.ID+"/"+action, body, nil)
	i.inFlight = false
	if err != nil {
		return err
	}

	i.Close()
	if i.RefreshList != nil {
		i.RefreshList()
	}
	if i.RefreshDashboard != nil {
		i.RefreshDashboard()
	}
	return nil
}

// Badges derives the auto-check badges for a submission. The three
// detection badges are independent; "clean" appears only when none of
// them do.
func Badges(sub *Submission) []string {
	var badges []string
	if len(sub.PIIFlags) > 0 {
		badges = append(badges, "pii")
	}
	if bool(sub.ProfanityFlag) {
		badges = append(badges, "profanity")
	}
	if bool(sub.DuplicateFlag) {
		badges = append(badges, "duplicate")
	}
	if len(badges) == 0 {
		return []string{"clean"}
	}
	return badges
}

// MaskEmail keeps the first two characters of the local part and the
// full domain: "kumar@example.com" becomes "ku***@example.com". The raw
// address is never displayed.
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at < 0 {
		if len(email) <= 2 {
			return email + "***"
		}
		return email[:2] + "***"
	}
	local, domain := email[:at], email[at+1:]
	if len(local) <= 2 {
		return local + "***@" + domain
	}
	return local[:2] + "***@" + domain
}
