package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/dajarony/club-deportivo-quito/internal/domain/match"
)

type matchTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Competition string     `db:"competition"`
	Season      string     `db:"season"`
	Matchday    int        `db:"matchday"`
	Date        time.Time  `db:"date"`
	HomeTeam    string     `db:"home_team"`
	AwayTeam    string     `db:"away_team"`
	Venue       string     `db:"venue"`
	Status      string     `db:"status"`
	HomeScore   int        `db:"home_score"`
	AwayScore   int        `db:"away_score"`
	Minute      int        `db:"minute"`
	Events      []byte     `db:"events"`
	Stats       []byte     `db:"stats"`
	Highlights  string     `db:"highlights"`
	TicketURL   string     `db:"ticket_url"`
	StreamURL   string     `db:"stream_url"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID    string    `db:"public_id"`
	Competition string    `db:"competition"`
	Season      string    `db:"season"`
	Matchday    int       `db:"matchday"`
	Date        time.Time `db:"date"`
	HomeTeam    string    `db:"home_team"`
	AwayTeam    string    `db:"away_team"`
	Venue       string    `db:"venue"`
	Status      string    `db:"status"`
	HomeScore   int       `db:"home_score"`
	AwayScore   int       `db:"away_score"`
	Minute      int       `db:"minute"`
	Events      []byte    `db:"events"`
	Stats       []byte    `db:"stats"`
	Highlights  string    `db:"highlights"`
	TicketURL   string    `db:"ticket_url"`
	StreamURL   string    `db:"stream_url"`
}

type matchEventDocument struct {
	Type     string `json:"type"`
	Minute   int    `json:"minute"`
	Team     string `json:"team,omitempty"`
	Player   string `json:"player,omitempty"`
	AssistBy string `json:"assist_by,omitempty"`
}

type matchStatsDocument struct {
	HomePossession    int `json:"home_possession"`
	AwayPossession    int `json:"away_possession"`
	HomeShots         int `json:"home_shots"`
	AwayShots         int `json:"away_shots"`
	HomeShotsOnTarget int `json:"home_shots_on_target"`
	AwayShotsOnTarget int `json:"away_shots_on_target"`
	HomeCorners       int `json:"home_corners"`
	AwayCorners       int `json:"away_corners"`
	HomeFouls         int `json:"home_fouls"`
	AwayFouls         int `json:"away_fouls"`
	HomeYellowCards   int `json:"home_yellow_cards"`
	AwayYellowCards   int `json:"away_yellow_cards"`
	HomeRedCards      int `json:"home_red_cards"`
	AwayRedCards      int `json:"away_red_cards"`
}

func encodeMatchEvents(events []match.Event) ([]byte, error) {
	docs := make([]matchEventDocument, 0, len(events))
	for _, event := range events {
		docs = append(docs, matchEventDocument{
			Type:     event.Type,
			Minute:   event.Minute,
			Team:     event.Team,
			Player:   event.Player,
			AssistBy: event.AssistBy,
		})
	}

	encoded, err := sonic.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal match events: %w", err)
	}
	return encoded, nil
}

func decodeMatchEvents(raw []byte) ([]match.Event, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var docs []matchEventDocument
	if err := sonic.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("unmarshal match events: %w", err)
	}

	out := make([]match.Event, 0, len(docs))
	for _, doc := range docs {
		out = append(out, match.Event{
			Type:     doc.Type,
			Minute:   doc.Minute,
			Team:     doc.Team,
			Player:   doc.Player,
			AssistBy: doc.AssistBy,
		})
	}
	return out, nil
}

func encodeMatchStats(stats match.Stats) ([]byte, error) {
	encoded, err := sonic.Marshal(matchStatsDocument{
		HomePossession:    stats.HomePossession,
		AwayPossession:    stats.AwayPossession,
		HomeShots:         stats.HomeShots,
		AwayShots:         stats.AwayShots,
		HomeShotsOnTarget: stats.HomeShotsOnTarget,
		AwayShotsOnTarget: stats.AwayShotsOnTarget,
		HomeCorners:       stats.HomeCorners,
		AwayCorners:       stats.AwayCorners,
		HomeFouls:         stats.HomeFouls,
		AwayFouls:         stats.AwayFouls,
		HomeYellowCards:   stats.HomeYellowCards,
		AwayYellowCards:   stats.AwayYellowCards,
		HomeRedCards:      stats.HomeRedCards,
		AwayRedCards:      stats.AwayRedCards,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal match stats: %w", err)
	}
	return encoded, nil
}

func decodeMatchStats(raw []byte) (match.Stats, error) {
	if len(raw) == 0 {
		return match.Stats{}, nil
	}

	var doc matchStatsDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return match.Stats{}, fmt.Errorf("unmarshal match stats: %w", err)
	}

	return match.Stats{
		HomePossession:    doc.HomePossession,
		AwayPossession:    doc.AwayPossession,
		HomeShots:         doc.HomeShots,
		AwayShots:         doc.AwayShots,
		HomeShotsOnTarget: doc.HomeShotsOnTarget,
		AwayShotsOnTarget: doc.AwayShotsOnTarget,
		HomeCorners:       doc.HomeCorners,
		AwayCorners:       doc.AwayCorners,
		HomeFouls:         doc.HomeFouls,
		AwayFouls:         doc.AwayFouls,
		HomeYellowCards:   doc.HomeYellowCards,
		AwayYellowCards:   doc.AwayYellowCards,
		HomeRedCards:      doc.HomeRedCards,
		AwayRedCards:      doc.AwayRedCards,
	}, nil
}

func matchRowToDomain(row matchTableModel) (match.Match, error) {
	events, err := decodeMatchEvents(row.Events)
	if err != nil {
		return match.Match{}, fmt.Errorf("match %s: %w", row.PublicID, err)
	}
	stats, err := decodeMatchStats(row.Stats)
	if err != nil {
		return match.Match{}, fmt.Errorf("match %s: %w", row.PublicID, err)
	}

	return match.Match{
		ID:          row.PublicID,
		Competition: row.Competition,
		Season:      row.Season,
		Matchday:    row.Matchday,
		Date:        row.Date,
		HomeTeam:    row.HomeTeam,
		AwayTeam:    row.AwayTeam,
		Venue:       row.Venue,
		Status:      row.Status,
		HomeScore:   row.HomeScore,
		AwayScore:   row.AwayScore,
		Minute:      row.Minute,
		Events:      events,
		Stats:       stats,
		Highlights:  row.Highlights,
		TicketURL:   row.TicketURL,
		StreamURL:   row.StreamURL,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func matchInsertModelFrom(m match.Match) (matchInsertModel, error) {
	events, err := encodeMatchEvents(m.Events)
	if err != nil {
		return matchInsertModel{}, err
	}
	stats, err := encodeMatchStats(m.Stats)
	if err != nil {
		return matchInsertModel{}, err
	}

	return matchInsertModel{
		PublicID:    m.ID,
		Competition: m.Competition,
		Season:      m.Season,
		Matchday:    m.Matchday,
		Date:        m.Date,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		Venue:       m.Venue,
		Status:      m.Status,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		Minute:      m.Minute,
		Events:      events,
		Stats:       stats,
		Highlights:  m.Highlights,
		TicketURL:   m.TicketURL,
		StreamURL:   m.StreamURL,
	}, nil
}
