package postgres

import (
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/sponsor"
)

type sponsorTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	Name         string     `db:"name"`
	Logo         string     `db:"logo"`
	URL          string     `db:"url"`
	Level        string     `db:"level"`
	Description  string     `db:"description"`
	DisplayOrder int        `db:"display_order"`
	IsActive     bool       `db:"is_active"`
	StartDate    *time.Time `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type sponsorInsertModel struct {
	PublicID     string     `db:"public_id"`
	Name         string     `db:"name"`
	Logo         string     `db:"logo"`
	URL          string     `db:"url"`
	Level        string     `db:"level"`
	Description  string     `db:"description"`
	DisplayOrder int        `db:"display_order"`
	IsActive     bool       `db:"is_active"`
	StartDate    *time.Time `db:"start_date"`
	EndDate      *time.Time `db:"end_date"`
}

func sponsorRowToDomain(row sponsorTableModel) sponsor.Sponsor {
	return sponsor.Sponsor{
		ID:           row.PublicID,
		Name:         row.Name,
		Logo:         row.Logo,
		URL:          row.URL,
		Level:        row.Level,
		Description:  row.Description,
		DisplayOrder: row.DisplayOrder,
		IsActive:     row.IsActive,
		StartDate:    timeValue(row.StartDate),
		EndDate:      timeValue(row.EndDate),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func sponsorInsertModelFrom(s sponsor.Sponsor) sponsorInsertModel {
	return sponsorInsertModel{
		PublicID:     s.ID,
		Name:         s.Name,
		Logo:         s.Logo,
		URL:          s.URL,
		Level:        s.Level,
		Description:  s.Description,
		DisplayOrder: s.DisplayOrder,
		IsActive:     s.IsActive,
		StartDate:    nullableTime(s.StartDate),
		EndDate:      nullableTime(s.EndDate),
	}
}
