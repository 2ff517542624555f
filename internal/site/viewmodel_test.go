package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dajarony/club-deportivo-quito/internal/webclient"
)

func TestFormatLongDate(t *testing.T) {
	date := time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "12 de febrero de 2025", FormatLongDate(date))
	require.Equal(t, "", FormatLongDate(time.Time{}))
}

func TestFormatNumericDate(t *testing.T) {
	date := time.Date(2025, 3, 17, 19, 0, 0, 0, time.UTC)
	require.Equal(t, "17/3/2025", FormatNumericDate(date))
	require.Equal(t, "17/3/2025, 19:00", FormatNumericDateTime(date))
}

func TestResultClasses(t *testing.T) {
	home, away := ResultClasses(3, 1)
	require.Equal(t, resultClassWin, home)
	require.Equal(t, resultClassLoss, away)

	home, away = ResultClasses(0, 2)
	require.Equal(t, resultClassLoss, home)
	require.Equal(t, resultClassWin, away)

	home, away = ResultClasses(2, 2)
	require.Equal(t, resultClassDraw, home)
	require.Equal(t, resultClassDraw, away)
}

func TestFixtureAction_PrefersTicketsOverStream(t *testing.T) {
	both := webclient.Fixture{TicketURL: "/entradas/1", StreamURL: "/transmision/1"}
	action := FixtureAction(both)
	require.Equal(t, "/entradas/1", action.URL)
	require.Equal(t, "Comprar Entradas →", action.Label)

	streamOnly := webclient.Fixture{StreamURL: "/transmision/2"}
	action = FixtureAction(streamOnly)
	require.Equal(t, "/transmision/2", action.URL)
	require.Equal(t, "Ver Transmisión →", action.Label)

	neither := FixtureAction(webclient.Fixture{})
	require.Empty(t, neither.URL)
	require.Empty(t, neither.Label)
}

func TestNextMatchFrom(t *testing.T) {
	now := time.Date(2025, 3, 16, 19, 0, 0, 0, time.UTC)
	fixtures := []webclient.Fixture{
		{HomeTeam: "CD Quito", AwayTeam: "Independiente", Date: "2025-03-17T19:00:00Z"},
		{HomeTeam: "Aucas", AwayTeam: "CD Quito", Date: "2025-03-24T15:30:00Z"},
	}

	next := nextMatchFrom(fixtures, now)
	require.NotNil(t, next)
	require.Equal(t, "CD Quito vs Independiente", next.Teams)
	require.Equal(t, "01", next.Countdown.Days)

	require.Nil(t, nextMatchFrom(nil, now))
	require.Nil(t, nextMatchFrom([]webclient.Fixture{{Date: "garbage"}}, now))
}

func TestNewsCardFrom_BuildsSlugURL(t *testing.T) {
	card := newsCardFrom(webclient.NewsItem{
		Title:       "Victoria en casa",
		Slug:        "victoria-en-casa",
		Excerpt:     "Resumen",
		Image:       "/img/n1.jpg",
		PublishDate: "2025-02-12T00:00:00Z",
	})
	require.Equal(t, "/noticias/victoria-en-casa", card.URL)
	require.Equal(t, "12 de febrero de 2025", card.Date)
}
