package postgres

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
)

type playerTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Name        string     `db:"name"`
	Slug        string     `db:"slug"`
	Number      int        `db:"number"`
	Position    string     `db:"position"`
	Nationality string     `db:"nationality"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	HeightCm    int        `db:"height_cm"`
	WeightKg    int        `db:"weight_kg"`
	Photo       string     `db:"photo"`
	Bio         string     `db:"bio"`
	JoinedAt    *time.Time `db:"joined_at"`
	IsActive    bool       `db:"is_active"`
	Stats       []byte     `db:"stats"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID    string     `db:"public_id"`
	Name        string     `db:"name"`
	Slug        string     `db:"slug"`
	Number      int        `db:"number"`
	Position    string     `db:"position"`
	Nationality string     `db:"nationality"`
	DateOfBirth *time.Time `db:"date_of_birth"`
	HeightCm    int        `db:"height_cm"`
	WeightKg    int        `db:"weight_kg"`
	Photo       string     `db:"photo"`
	Bio         string     `db:"bio"`
	JoinedAt    *time.Time `db:"joined_at"`
	IsActive    bool       `db:"is_active"`
	Stats       []byte     `db:"stats"`
}

type playerStatsDocument struct {
	Appearances   int `json:"appearances"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	YellowCards   int `json:"yellow_cards"`
	RedCards      int `json:"red_cards"`
	MinutesPlayed int `json:"minutes_played"`
}

func encodePlayerStats(stats player.Stats) ([]byte, error) {
	encoded, err := sonic.Marshal(playerStatsDocument{
		Appearances:   stats.Appearances,
		Goals:         stats.Goals,
		Assists:       stats.Assists,
		YellowCards:   stats.YellowCards,
		RedCards:      stats.RedCards,
		MinutesPlayed: stats.MinutesPlayed,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal player stats: %w", err)
	}
	return encoded, nil
}

func decodePlayerStats(raw []byte) (player.Stats, error) {
	if len(raw) == 0 {
		return player.Stats{}, nil
	}

	var doc playerStatsDocument
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return player.Stats{}, fmt.Errorf("unmarshal player stats: %w", err)
	}

	return player.Stats{
		Appearances:   doc.Appearances,
		Goals:         doc.Goals,
		Assists:       doc.Assists,
		YellowCards:   doc.YellowCards,
		RedCards:      doc.RedCards,
		MinutesPlayed: doc.MinutesPlayed,
	}, nil
}

func playerRowToDomain(row playerTableModel) (player.Player, error) {
	stats, err := decodePlayerStats(row.Stats)
	if err != nil {
		return player.Player{}, fmt.Errorf("player %s: %w", row.PublicID, err)
	}

	return player.Player{
		ID:          row.PublicID,
		Name:        row.Name,
		Slug:        row.Slug,
		Number:      row.Number,
		Position:    row.Position,
		Nationality: row.Nationality,
		DateOfBirth: timeValue(row.DateOfBirth),
		HeightCm:    row.HeightCm,
		WeightKg:    row.WeightKg,
		Photo:       row.Photo,
		Bio:         row.Bio,
		JoinedAt:    timeValue(row.JoinedAt),
		IsActive:    row.IsActive,
		Stats:       stats,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func playerInsertModelFrom(p player.Player) (playerInsertModel, error) {
	stats, err := encodePlayerStats(p.Stats)
	if err != nil {
		return playerInsertModel{}, err
	}

	return playerInsertModel{
		PublicID:    p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Number:      p.Number,
		Position:    p.Position,
		Nationality: p.Nationality,
		DateOfBirth: nullableTime(p.DateOfBirth),
		HeightCm:    p.HeightCm,
		WeightKg:    p.WeightKg,
		Photo:       p.Photo,
		Bio:         p.Bio,
		JoinedAt:    nullableTime(p.JoinedAt),
		IsActive:    p.IsActive,
		Stats:       stats,
	}, nil
}
