// Command admin is a terminal review surface over the platform's admin
// API: log in, browse and filter submissions, inspect one, decide it,
// and manage settings.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mozhii/platform/internal/adminclient"
)

func main() {
	baseURL := os.Getenv("MOZHII_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	statePath := filepath.Join(stateDir(), "session.json")
	sessions := adminclient.NewSessionManager(baseURL, statePath)
	sessions.OnExpired = func() {
		fmt.Println("Session expired, please log in again.")
	}

	client := adminclient.NewClient(baseURL, sessions)
	stdin := bufio.NewReader(os.Stdin)
	tty := &terminal{in: stdin}

	dashboard := adminclient.NewDashboard(client)
	browser := adminclient.NewBrowser(client, tty, tty)
	browser.RefreshDashboard = func() { dashboard.Load() }
	inspector := adminclient.NewInspector(client)
	inspector.RefreshList = func() { browser.Load() }
	inspector.RefreshDashboard = func() { dashboard.Load() }
	audit := adminclient.NewAuditViewer(client)
	feedback := adminclient.NewFeedbackViewer(client)
	settings := adminclient.NewSettingsPanel(client)

	app := &cli{
		in:        stdin,
		sessions:  sessions,
		dashboard: dashboard,
		browser:   browser,
		inspector: inspector,
		audit:     audit,
		feedback:  feedback,
		settings:  settings,
	}
	app.run()
}

func stateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".mozhii")
}

// terminal implements the operator prompts over stdin.
type terminal struct {
	in *bufio.Reader
}

func (t *terminal) Confirm(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (t *terminal) Prompt(message, suggested string) (string, bool) {
	fmt.Printf("%s [%s] (! to cancel) ", message, suggested)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(line)
	if value == "!" {
		return "", false
	}
	if value == "" {
		return suggested, true
	}
	if value == "-" {
		return "", true
	}
	return value, true
}

type cli struct {
	in        *bufio.Reader
	sessions  *adminclient.SessionManager
	dashboard *adminclient.Dashboard
	browser   *adminclient.Browser
	inspector *adminclient.Inspector
	audit     *adminclient.AuditViewer
	feedback  *adminclient.FeedbackViewer
	settings  *adminclient.SettingsPanel
}

func (a *cli) run() {
	for {
		if a.sessions.Current() == nil {
			if !a.login() {
				return
			}
		}
		if !a.command() {
			return
		}
	}
}

func (a *cli) readLine(prompt string) string {
	fmt.Print(prompt)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *cli) login() bool {
	username := a.readLine("Username: ")
	if username == "" {
		return false
	}
	password := a.readLine("Password: ")

	sess, err := a.sessions.Login(username, password)
	if err != nil {
		if errors.Is(err, adminclient.ErrInvalidCredentials) {
			fmt.Println("Invalid username or password.")
		} else {
			fmt.Println(err)
		}
		return true
	}
	fmt.Printf("Logged in as %s.\n", sess.Username)
	return true
}

func (a *cli) command() bool {
	input := a.readLine("\n[list|page N|filter|view ID|approve ID|reject ID|audit|feedback|settings|stats|logout|quit] > ")
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	var err error
	switch cmd {
	case "list":
		err = a.showList()
	case "page":
		n, convErr := strconv.Atoi(arg)
		if convErr != nil {
			fmt.Println("Usage: page N")
			return true
		}
		a.browser.SetPage(n)
		err = a.showList()
	case "filter":
		a.applyFilters()
		err = a.showList()
	case "view":
		err = a.view(arg)
	case "approve":
		_, err = a.browser.QuickApprove(arg)
	case "reject":
		_, err = a.browser.QuickReject(arg)
	case "audit":
		err = a.showAudit()
	case "feedback":
		err = a.showFeedback()
	case "settings":
		err = a.showSettings()
	case "stats":
		err = a.showStats()
	case "logout":
		a.sessions.Logout()
		fmt.Println("Logged out.")
	case "quit", "exit":
		return false
	case "":
	default:
		fmt.Println("Unknown command.")
	}

	if err != nil {
		if errors.Is(err, adminclient.ErrSessionExpired) {
			return true
		}
		fmt.Println(adminclient.BackendMessage(err, err.Error()))
	}
	return true
}

func (a *cli) applyFilters() {
	a.browser.SetFilters(adminclient.Filters{
		Status:   a.readLine("Status (PENDING/APPROVED/REJECTED/all): "),
		Language: a.readLine("Language (tamil/sinhala/english/all): "),
		Search:   a.readLine("Search: "),
		DateFrom: a.readLine("From (YYYY-MM-DD): "),
		DateTo:   a.readLine("To (YYYY-MM-DD): "),
	})
}

func (a *cli) showList() error {
	if err := a.browser.Load(); err != nil {
		return err
	}
	if a.browser.Empty() {
		fmt.Println("No submissions match the current filters.")
		return nil
	}
	for _, sub := range a.browser.Items() {
		actions := "view"
		if adminclient.CanQuickDecide(&sub) {
			actions = "view, approve, reject"
		}
		fmt.Printf("%-14s %-8s %-9s %-24s %s  [%s]\n",
			sub.ID, sub.Language, sub.Status,
			adminclient.MaskEmail(sub.ContributorEmail),
			sub.CreatedAt, actions)
	}
	fmt.Printf("Page %d of %d (%d total)\n", a.browser.Page(), a.browser.TotalPages(), a.browser.Total())
	return nil
}

func (a *cli) view(id string) error {
	if id == "" {
		fmt.Println("Usage: view ID")
		return nil
	}
	detail, err := a.inspector.Open(id)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s  %s\n", detail.ID, detail.Language, detail.Status)
	fmt.Printf("Contributor: %s <%s>\n", detail.ContributorName, adminclient.MaskEmail(detail.ContributorEmail))
	fmt.Printf("Checks: %s\n", strings.Join(adminclient.Badges(&detail.Submission), ", "))
	if detail.TextContent != "" {
		fmt.Printf("Text: %s\n", detail.TextContent)
	}
	for _, fp := range detail.FilePreviews {
		fmt.Printf("File %s: %s\n", fp.File, fp.Preview)
	}
	for _, entry := range detail.AuditLog {
		fmt.Printf("Audit: %s %s by %s — %s\n", entry.Timestamp, entry.Action, entry.AdminUser, entry.Reason)
	}

	if a.inspector.ReadOnly() {
		a.inspector.Close()
		return nil
	}

	switch a.readLine("Decision [approve/reject/skip]: ") {
	case "approve":
		category := a.readLine("Category (raw_text/images/pdf/scan_pdf/zip) [raw_text]: ")
		reason := a.readLine("Reason (optional): ")
		notes := a.readLine("Notes (optional): ")
		if err := a.inspector.Approve(reason, notes, category); err != nil {
			return err
		}
		fmt.Println("Approved.")
	case "reject":
		reason := a.readLine("Reason (blank for standard message): ")
		notes := a.readLine("Notes (optional): ")
		if err := a.inspector.Reject(reason, notes); err != nil {
			return err
		}
		fmt.Println("Rejected.")
	default:
		a.inspector.Close()
	}
	return nil
}

func (a *cli) showAudit() error {
	if err := a.audit.Load(); err != nil {
		return err
	}
	if a.audit.Empty() {
		fmt.Println("No audit entries yet.")
		return nil
	}
	for _, entry := range a.audit.Entries() {
		fmt.Printf("%s  %-12s %-14s by %-10s %s\n",
			entry.Timestamp, entry.Action, entry.SubmissionID, entry.AdminUser, entry.Reason)
	}
	return nil
}

func (a *cli) showFeedback() error {
	if err := a.feedback.Load(); err != nil {
		return err
	}
	if a.feedback.Empty() {
		fmt.Println("No feedback yet.")
		return nil
	}
	for _, item := range a.feedback.Items() {
		email := item.Email
		if email != "" {
			email = adminclient.MaskEmail(email)
		}
		fmt.Printf("%s  %s %s: %s\n", item.CreatedAt, item.Name, email, item.Message)
	}
	return nil
}

func (a *cli) showSettings() error {
	if err := a.settings.Load(); err != nil {
		return err
	}
	s := a.settings.Settings()
	fmt.Printf("raw_text: %s\nimages: %s\npdf: %s\nscan_pdf: %s\nzip: %s\ntoken: %s\n",
		s.RepoRawText, s.RepoImages, s.RepoPDF, s.RepoScanPDF, s.RepoZip, s.HFTokenMasked)

	info, err := a.settings.StorageInfo()
	if err == nil {
		fmt.Printf("Pending: %d submissions, %s, %d-day retention\n",
			info.PendingCount, adminclient.FormatStorageSize(info.StorageBytes), info.RetentionDays)
	}

	switch a.readLine("[edit/test/override/back]: ") {
	case "edit":
		in := adminclient.SaveInput{
			RepoRawText: a.readLine("raw_text repo: "),
			RepoImages:  a.readLine("images repo: "),
			RepoPDF:     a.readLine("pdf repo: "),
			RepoScanPDF: a.readLine("scan_pdf repo: "),
			RepoZip:     a.readLine("zip repo: "),
			HFToken:     a.readLine("token (blank keeps current): "),
		}
		if err := a.settings.Save(in); err != nil {
			return err
		}
		fmt.Println("Saved.")
	case "test":
		fmt.Println("Testing connection...")
		username, err := a.settings.TestConnection()
		if err != nil {
			fmt.Println("Connection failed:", err)
			return nil
		}
		fmt.Println("Connected as", username)
	case "override":
		contributors := a.readLine("Contributors display: ")
		datasets := a.readLine("Datasets display: ")
		if err := a.settings.SaveStatsOverride(contributors, datasets); err != nil {
			return err
		}
		fmt.Println("Saved.")
	}
	return nil
}

func (a *cli) showStats() error {
	if err := a.dashboard.Load(); err != nil {
		return err
	}
	s := a.dashboard.Stats()
	fmt.Printf("Pending %d | Approved %d | Rejected %d | Total %d\n", s.Pending, s.Approved, s.Rejected, s.Total)
	fmt.Printf("Tamil %d | Sinhala %d | English %d | Feedback %d\n", s.LangTamil, s.LangSinhala, s.LangEnglish, s.Feedbacks)
	return nil
}
