package memory

import (
	"time"

	"github.com/dajarony/club-deportivo-quito/internal/domain/match"
	"github.com/dajarony/club-deportivo-quito/internal/domain/news"
	"github.com/dajarony/club-deportivo-quito/internal/domain/player"
	"github.com/dajarony/club-deportivo-quito/internal/domain/sponsor"
)

const ClubName = "Club Deportivo Quito"

// SeedMatches returns a small season slice around mid 2026: played
// results, upcoming fixtures and one live match.
func SeedMatches() []match.Match {
	return []match.Match{
		{
			ID:          "m-001",
			Competition: match.CompetitionLigaPro,
			Season:      "2026",
			Matchday:    12,
			Date:        time.Date(2026, 5, 10, 17, 0, 0, 0, time.UTC),
			HomeTeam:    ClubName,
			AwayTeam:    "Barcelona SC",
			Venue:       "Estadio Olímpico Atahualpa",
			Status:      match.StatusFinished,
			HomeScore:   2,
			AwayScore:   1,
			Events: []match.Event{
				{Type: match.EventGoal, Minute: 23, Team: ClubName, Player: "Carlos Garcés"},
				{Type: match.EventGoal, Minute: 58, Team: "Barcelona SC", Player: "Janner Corozo"},
				{Type: match.EventGoal, Minute: 84, Team: ClubName, Player: "Luis Perlaza", AssistBy: "Andrés Mena"},
			},
		},
		{
			ID:          "m-002",
			Competition: match.CompetitionCopaEcuador,
			Season:      "2026",
			Matchday:    3,
			Date:        time.Date(2026, 5, 17, 22, 0, 0, 0, time.UTC),
			HomeTeam:    "LDU Quito",
			AwayTeam:    ClubName,
			Venue:       "Estadio Rodrigo Paz Delgado",
			Status:      match.StatusFinished,
			HomeScore:   0,
			AwayScore:   0,
		},
		{
			ID:          "m-003",
			Competition: match.CompetitionLigaPro,
			Season:      "2026",
			Matchday:    13,
			Date:        time.Date(2026, 5, 24, 17, 0, 0, 0, time.UTC),
			HomeTeam:    "Emelec",
			AwayTeam:    ClubName,
			Venue:       "Estadio George Capwell",
			Status:      match.StatusFinished,
			HomeScore:   3,
			AwayScore:   1,
		},
		{
			ID:          "m-004",
			Competition: match.CompetitionLigaPro,
			Season:      "2026",
			Matchday:    14,
			Date:        time.Date(2026, 6, 14, 21, 0, 0, 0, time.UTC),
			HomeTeam:    ClubName,
			AwayTeam:    "Independiente del Valle",
			Venue:       "Estadio Olímpico Atahualpa",
			Status:      match.StatusLive,
			HomeScore:   1,
			AwayScore:   0,
			Minute:      64,
			Events: []match.Event{
				{Type: match.EventGoal, Minute: 37, Team: ClubName, Player: "Carlos Garcés"},
				{Type: match.EventYellowCard, Minute: 52, Team: "Independiente del Valle", Player: "Richard Schunke"},
			},
		},
		{
			ID:          "m-005",
			Competition: match.CompetitionLigaPro,
			Season:      "2026",
			Matchday:    15,
			Date:        time.Date(2026, 6, 21, 17, 0, 0, 0, time.UTC),
			HomeTeam:    "Aucas",
			AwayTeam:    ClubName,
			Venue:       "Estadio Gonzalo Pozo Ripalda",
			Status:      match.StatusScheduled,
			TicketURL:   "https://tickets.example.ec/aucas-vs-quito",
		},
		{
			ID:          "m-006",
			Competition: match.CompetitionCopaEcuador,
			Season:      "2026",
			Matchday:    4,
			Date:        time.Date(2026, 6, 28, 22, 30, 0, 0, time.UTC),
			HomeTeam:    ClubName,
			AwayTeam:    "Delfín SC",
			Venue:       "Estadio Olímpico Atahualpa",
			Status:      match.StatusScheduled,
			StreamURL:   "https://stream.example.ec/quito-vs-delfin",
		},
		{
			ID:          "m-007",
			Competition: match.CompetitionFriendly,
			Season:      "2026",
			Matchday:    0,
			Date:        time.Date(2026, 7, 4, 20, 0, 0, 0, time.UTC),
			HomeTeam:    ClubName,
			AwayTeam:    "Deportivo Cuenca",
			Venue:       "Estadio Olímpico Atahualpa",
			Status:      match.StatusScheduled,
		},
	}
}

func SeedNews() []news.Article {
	return []news.Article{
		{
			ID:          "n-001",
			Title:       "Victoria en el clásico capitalino",
			Slug:        "victoria-en-el-clsico-capitalino",
			Excerpt:     "El equipo se llevó los tres puntos con un gol agónico en el Atahualpa.",
			Content:     "El conjunto azulgrana remontó en los últimos minutos y festejó con su hinchada.",
			Image:       "/uploads/news/1746900000000-a1b2c3.jpg",
			AuthorID:    "u-editor-1",
			AuthorName:  "Prensa CDQ",
			Category:    news.CategoryMatch,
			Tags:        []string{"liga pro", "clásico"},
			IsPublished: true,
			Views:       412,
			PublishDate: time.Date(2026, 5, 10, 23, 30, 0, 0, time.UTC),
		},
		{
			ID:          "n-002",
			Title:       "Nuevo refuerzo para la delantera",
			Slug:        "nuevo-refuerzo-para-la-delantera",
			Excerpt:     "El club confirmó la llegada de un atacante internacional para el segundo semestre.",
			Content:     "La dirigencia cerró la contratación tras semanas de negociación.",
			AuthorID:    "u-editor-1",
			AuthorName:  "Prensa CDQ",
			Category:    news.CategoryTransfer,
			Tags:        []string{"fichajes"},
			IsPublished: true,
			Views:       289,
			PublishDate: time.Date(2026, 5, 20, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:          "n-003",
			Title:       "Campaña de abonos 2026",
			Slug:        "campaa-de-abonos-2026",
			Excerpt:     "Ya están disponibles los abonos para la segunda rueda de la temporada.",
			Content:     "Los abonados renovarán con descuento hasta fin de mes.",
			AuthorID:    "u-admin-1",
			AuthorName:  "Club Deportivo Quito",
			Category:    news.CategoryClub,
			Tags:        []string{"hinchada", "abonos"},
			IsPublished: true,
			Views:       150,
			PublishDate: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "n-004",
			Title:       "Parte médico de la semana",
			Slug:        "parte-mdico-de-la-semana",
			Excerpt:     "Dos jugadores vuelven a los entrenamientos con el grupo.",
			Content:     "El cuerpo médico confirmó las altas deportivas de cara al próximo partido.",
			AuthorID:    "u-editor-1",
			AuthorName:  "Prensa CDQ",
			Category:    news.CategoryTeam,
			Tags:        []string{"plantel"},
			IsPublished: true,
			Views:       98,
			PublishDate: time.Date(2026, 6, 10, 16, 0, 0, 0, time.UTC),
		},
		{
			ID:          "n-005",
			Title:       "Borrador: balance del semestre",
			Slug:        "borrador-balance-del-semestre",
			Excerpt:     "Análisis interno del rendimiento del primer semestre.",
			Content:     "Pendiente de revisión editorial.",
			AuthorID:    "u-editor-1",
			AuthorName:  "Prensa CDQ",
			Category:    news.CategoryOther,
			IsPublished: false,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID: "p-001", Name: "Adrián Bone", Slug: "adrin-bone", Number: 1,
			Position: player.PositionGoalkeeper, Nationality: "Ecuador",
			DateOfBirth: time.Date(1988, 9, 8, 0, 0, 0, 0, time.UTC), IsActive: true,
			Stats: player.Stats{Appearances: 14, MinutesPlayed: 1260},
		},
		{
			ID: "p-002", Name: "Luis Perlaza", Slug: "luis-perlaza", Number: 4,
			Position: player.PositionDefender, Nationality: "Ecuador",
			DateOfBirth: time.Date(1996, 3, 12, 0, 0, 0, 0, time.UTC), IsActive: true,
			Stats: player.Stats{Appearances: 13, Goals: 1, YellowCards: 3, MinutesPlayed: 1150},
		},
		{
			ID: "p-003", Name: "Andrés Mena", Slug: "andrs-mena", Number: 8,
			Position: player.PositionMidfielder, Nationality: "Ecuador",
			DateOfBirth: time.Date(1999, 11, 2, 0, 0, 0, 0, time.UTC), IsActive: true,
			Stats: player.Stats{Appearances: 14, Goals: 2, Assists: 4, MinutesPlayed: 1230},
		},
		{
			ID: "p-004", Name: "Carlos Garcés", Slug: "carlos-garcs", Number: 9,
			Position: player.PositionForward, Nationality: "Ecuador",
			DateOfBirth: time.Date(1990, 5, 19, 0, 0, 0, 0, time.UTC), IsActive: true,
			Stats: player.Stats{Appearances: 14, Goals: 8, Assists: 2, MinutesPlayed: 1195},
		},
		{
			ID: "p-005", Name: "Facundo Martínez", Slug: "facundo-martnez", Number: 23,
			Position: player.PositionMidfielder, Nationality: "Argentina",
			DateOfBirth: time.Date(2001, 1, 27, 0, 0, 0, 0, time.UTC), IsActive: false,
		},
	}
}

func SeedSponsors() []sponsor.Sponsor {
	return []sponsor.Sponsor{
		{
			ID: "sp-001", Name: "Marathon Sports", Logo: "/img/sponsors/marathon.png",
			URL: "https://www.marathon.ec", Level: sponsor.LevelTechnical, DisplayOrder: 1,
			IsActive: true, StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "sp-002", Name: "Banco Pichincha", Logo: "/img/sponsors/pichincha.png",
			URL: "https://www.pichincha.com", Level: sponsor.LevelMain, DisplayOrder: 2,
			IsActive: true, StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "sp-003", Name: "Cervecería Nacional", Logo: "/img/sponsors/cn.png",
			URL: "https://www.cervecerianacional.ec", Level: sponsor.LevelOfficial, DisplayOrder: 3,
			IsActive: true,
		},
		{
			ID: "sp-004", Name: "Radio La Red", Logo: "/img/sponsors/lared.png",
			URL: "https://www.lared.com.ec", Level: sponsor.LevelMedia, DisplayOrder: 4,
			IsActive: true,
		},
		{
			ID: "sp-005", Name: "Patrocinio 2025", Logo: "/img/sponsors/old.png",
			Level: sponsor.LevelOther, DisplayOrder: 9, IsActive: true,
			StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}
