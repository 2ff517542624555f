package webclient

// Types mirror the public API payloads consumed by the site. Only the
// fields the pages render are decoded.

type NewsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Image       string `json:"image"`
	PublishDate string `json:"publishDate"`
}

type Result struct {
	ID          string `json:"id"`
	Competition string `json:"competition"`
	Matchday    int    `json:"matchday"`
	Date        string `json:"date"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	HomeScore   int    `json:"homeScore"`
	AwayScore   int    `json:"awayScore"`
}

type Fixture struct {
	ID          string `json:"id"`
	Competition string `json:"competition"`
	Matchday    int    `json:"matchday"`
	Date        string `json:"date"`
	Venue       string `json:"venue"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	TicketURL   string `json:"ticketUrl"`
	StreamURL   string `json:"streamUrl"`
}

type LiveMatch struct {
	ID          string `json:"id"`
	Competition string `json:"competition"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	HomeScore   int    `json:"homeScore"`
	AwayScore   int    `json:"awayScore"`
	Minute      int    `json:"minute"`
	Status      string `json:"status"`
}

type Sponsor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
	URL  string `json:"url"`
}

// ListOptions narrows results/fixtures calls.
type ListOptions struct {
	Competition string
	Limit       int
}

type newsEnvelope struct {
	Success  bool       `json:"success"`
	Articles []NewsItem `json:"articles"`
}

type resultsEnvelope struct {
	Success bool     `json:"success"`
	Results []Result `json:"results"`
}

type fixturesEnvelope struct {
	Success  bool      `json:"success"`
	Fixtures []Fixture `json:"fixtures"`
}

type liveEnvelope struct {
	Success bool        `json:"success"`
	Matches []LiveMatch `json:"matches"`
}

type sponsorsEnvelope struct {
	Success  bool      `json:"success"`
	Sponsors []Sponsor `json:"sponsors"`
}

type subscribeEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
