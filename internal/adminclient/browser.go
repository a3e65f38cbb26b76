package adminclient

import (
	"net/url"
	"strconv"
)

// PageSize is the fixed submissions-per-page for the browser.
const PageSize = 15

// QuickApproveReason is recorded when a row is approved straight from
// the list without opening the inspector.
const QuickApproveReason = "Quick approve"

// DefaultRejectPrompt is the suggested value shown in the quick-reject
// prompt.
const DefaultRejectPrompt = "Does not meet contribution guidelines"

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(message string) bool
}

// Prompter asks the operator for a line of text, pre-filled with a
// suggested value. ok is false when the operator cancelled the prompt;
// a confirmed prompt with the text cleared returns ("", true).
type Prompter interface {
	Prompt(message, suggested string) (value string, ok bool)
}

type Filters struct {
	Status   string
	Language string
	Search   string
	DateFrom string
	DateTo   string
}

// Browser is the paginated, filterable list view over submissions. It is
// the single writer of the current page and filters.
type Browser struct {
	client  *Client
	confirm Confirmer
	prompt  Prompter

	filters Filters
	page    int
	total   int64
	items   []Submission

	// RefreshDashboard is invoked after a quick decision alongside the
	// list reload; the two refreshes are independent.
	RefreshDashboard func()
}

func NewBrowser(client *Client, confirm Confirmer, prompt Prompter) *Browser {
	return &Browser{
		client:  client,
		confirm: confirm,
		prompt:  prompt,
		page:    1,
	}
}

func (b *Browser) Filters() Filters { return b.filters }
func (b *Browser) Page() int        { return b.page }
func (b *Browser) Total() int64     { return b.total }
func (b *Browser) Items() []Submission {
	return b.items
}

// SetFilters replaces the active filters and resets to page 1.
func (b *Browser) SetFilters(f Filters) {
	b.filters = f
	b.page = 1
}

// SetPage moves to another page, preserving the active filters.
func (b *Browser) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	b.page = page
}

func (b *Browser) TotalPages() int {
	pages := int((b.total + PageSize - 1) / PageSize)
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Empty reports whether the last load returned no rows, which renders
// as a distinct empty state rather than an empty table.
func (b *Browser) Empty() bool {
	return len(b.items) == 0
}

func (b *Browser) Load() error {
	query := url.Values{}
	query.Set("page", strconv.Itoa(b.page))
	query.Set("limit", strconv.Itoa(PageSize))
	addFilter(query, "status", b.filters.Status)
	addFilter(query, "language", b.filters.Language)
	addFilter(query, "search", b.filters.Search)
	addFilter(query, "date_from", b.filters.DateFrom)
	addFilter(query, "date_to", b.filters.DateTo)

	var resp struct {
		Total       int64        `json:"total"`
		Submissions []Submission `json:"submissions"`
	}
	if err := b.client.get("/api/admin/submissions", query, &resp); err != nil {
		return err
	}

	b.total = resp.Total
	b.items = resp.Submissions
	return nil
}

// addFilter skips omitted filters and the "all" sentinel, which impose
// no constraint.
func addFilter(query url.Values, key, value string) {
	if value == "" || value == "all" {
		return
	}
	query.Set(key, value)
}

// CanQuickDecide reports whether a row offers the quick approve/reject
// actions. Decided submissions only offer the detail view.
func CanQuickDecide(sub *Submission) bool {
	return sub.Status == "PENDING"
}

// QuickApprove approves a row from the list after operator confirmation.
// The category is left for the backend default. Returns false when the
// operator declined.
func (b *Browser) QuickApprove(id string) (bool, error) {
	if !b.confirm.Confirm("Approve submission " + id + "?") {
		return false, nil
	}

	body := map[string]string{"reason": QuickApproveReason, "notes": "", "data_category": ""}
	if err := b.client.send("POST", "/api/admin/submission/"+id+"/approve", body, nil); err != nil {
		return false, err
	}

	b.refreshAfterDecision()
	return true, nil
}

// QuickReject rejects a row using an operator-supplied reason. A
// cancelled prompt aborts entirely; a confirmed prompt with the text
// cleared still proceeds with an empty reason.
func (b *Browser) QuickReject(id string) (bool, error) {
	reason, ok := b.prompt.Prompt("Rejection reason for "+id+":", DefaultRejectPrompt)
	if !ok {
		return false, nil
	}

	body := map[string]string{"reason": reason, "notes": ""}
	if err := b.client.send("POST", "/api/admin/submission/"+id+"/reject", body, nil); err != nil {
		return false, err
	}

	b.refreshAfterDecision()
	return true, nil
}

func (b *Browser) refreshAfterDecision() {
	b.Load()
	if b.RefreshDashboard != nil {
		b.RefreshDashboard()
	}
}
