package adminclient

// Dashboard holds the aggregate counts shown above the browser.
type Dashboard struct {
	client *Client
	stats  Stats
}

func NewDashboard(client *Client) *Dashboard {
	return &Dashboard{client: client}
}

func (d *Dashboard) Load() error {
	var stats Stats
	if err := d.client.get("/api/admin/stats", nil, &stats); err != nil {
		return err
	}
	d.stats = stats
	return nil
}

func (d *Dashboard) Stats() Stats { return d.stats }
