package webclient

// Fixed datasets served when the API cannot be reached. The site keeps
// rendering something sensible instead of an empty page.

func mockNews(limit int) []NewsItem {
	all := []NewsItem{
		{
			ID:          "mock-news-1",
			Title:       "Importante victoria frente a Emelec en casa",
			Slug:        "importante-victoria-frente-a-emelec-en-casa",
			Excerpt:     "El equipo mostró un gran nivel y se impuso por 3-1 contra uno de los rivales más fuertes del campeonato.",
			Image:       "/img/news/victoria-emelec.jpg",
			PublishDate: "2025-02-12T00:00:00Z",
		},
		{
			ID:          "mock-news-2",
			Title:       "Nuevo fichaje se incorpora al equipo",
			Slug:        "nuevo-fichaje-se-incorpora-al-equipo",
			Excerpt:     "El delantero internacional Carlos Martínez firma por dos temporadas y se une a los entrenamientos esta semana.",
			Image:       "/img/news/nuevo-fichaje.jpg",
			PublishDate: "2025-02-08T00:00:00Z",
		},
		{
			ID:          "mock-news-3",
			Title:       "La cantera sigue dando frutos",
			Slug:        "la-cantera-sigue-dando-frutos",
			Excerpt:     "Tres jóvenes promesas de las divisiones inferiores serán promovidos al primer equipo esta temporada.",
			Image:       "/img/news/cantera.jpg",
			PublishDate: "2025-02-05T00:00:00Z",
		},
		{
			ID:          "mock-news-4",
			Title:       "Entrevista exclusiva con el entrenador",
			Slug:        "entrevista-exclusiva-con-el-entrenador",
			Excerpt:     "Hablamos con el técnico sobre los desafíos de la temporada y las expectativas para el campeonato.",
			Image:       "/img/news/entrevista.jpg",
			PublishDate: "2025-02-01T00:00:00Z",
		},
		{
			ID:          "mock-news-5",
			Title:       "Renovación del estadio en marcha",
			Slug:        "renovacion-del-estadio-en-marcha",
			Excerpt:     "La directiva anuncia importantes mejoras en las instalaciones del estadio para mejorar la experiencia de los aficionados.",
			Image:       "/img/news/estadio.jpg",
			PublishDate: "2025-01-28T00:00:00Z",
		},
	}
	if limit <= 0 || limit > len(all) {
		return all
	}
	return all[:limit]
}

func mockResults(opts ListOptions) []Result {
	all := []Result{
		{ID: "mock-result-1", Competition: "Liga Pro", Matchday: 3, Date: "2025-02-10T00:00:00Z", HomeTeam: "CD Quito", AwayTeam: "Emelec", HomeScore: 3, AwayScore: 1},
		{ID: "mock-result-2", Competition: "Liga Pro", Matchday: 2, Date: "2025-02-03T00:00:00Z", HomeTeam: "Liga de Quito", AwayTeam: "CD Quito", HomeScore: 2, AwayScore: 2},
		{ID: "mock-result-3", Competition: "Liga Pro", Matchday: 1, Date: "2025-01-27T00:00:00Z", HomeTeam: "CD Quito", AwayTeam: "Barcelona SC", HomeScore: 2, AwayScore: 0},
		{ID: "mock-result-4", Competition: "Copa Ecuador", Matchday: 1, Date: "2025-01-20T00:00:00Z", HomeTeam: "Universidad Católica", AwayTeam: "CD Quito", HomeScore: 1, AwayScore: 3},
		{ID: "mock-result-5", Competition: "Amistoso", Matchday: 0, Date: "2025-01-10T00:00:00Z", HomeTeam: "CD Quito", AwayTeam: "Independiente del Valle", HomeScore: 1, AwayScore: 1},
	}
	return filterResults(all, opts)
}

func mockFixtures(opts ListOptions) []Fixture {
	all := []Fixture{
		{ID: "mock-fixture-1", Competition: "Liga Pro", Matchday: 5, Date: "2025-03-17T19:00:00Z", Venue: "Estadio Olímpico Atahualpa", HomeTeam: "CD Quito", AwayTeam: "Independiente", TicketURL: "/entradas/mock-fixture-1"},
		{ID: "mock-fixture-2", Competition: "Liga Pro", Matchday: 6, Date: "2025-03-24T15:30:00Z", Venue: "Estadio Gonzalo Pozo Ripalda", HomeTeam: "Aucas", AwayTeam: "CD Quito", StreamURL: "/transmision/mock-fixture-2"},
		{ID: "mock-fixture-3", Competition: "Copa Ecuador", Matchday: 0, Date: "2025-03-31T20:00:00Z", Venue: "Estadio Olímpico Atahualpa", HomeTeam: "CD Quito", AwayTeam: "Técnico U.", TicketURL: "/entradas/mock-fixture-3"},
		{ID: "mock-fixture-4", Competition: "Liga Pro", Matchday: 7, Date: "2025-04-07T19:00:00Z", Venue: "Estadio Olímpico Atahualpa", HomeTeam: "CD Quito", AwayTeam: "Delfín SC", TicketURL: "/entradas/mock-fixture-4"},
		{ID: "mock-fixture-5", Competition: "Amistoso", Matchday: 0, Date: "2025-04-14T16:00:00Z", Venue: "Estadio Rodrigo Paz Delgado", HomeTeam: "Liga de Quito", AwayTeam: "CD Quito", TicketURL: "/entradas/mock-fixture-5"},
	}
	return filterFixtures(all, opts)
}

func mockLiveMatch() *LiveMatch {
	return &LiveMatch{
		ID:          "mock-live-1",
		Competition: "Liga Pro",
		HomeTeam:    "CD Quito",
		AwayTeam:    "Barcelona SC",
		HomeScore:   1,
		AwayScore:   0,
		Minute:      63,
		Status:      "LIVE",
	}
}

func mockSponsors() []Sponsor {
	return []Sponsor{
		{ID: "mock-sponsor-1", Name: "Banco Pichincha", Logo: "/img/sponsors/banco-pichincha.png", URL: "https://www.pichincha.com"},
		{ID: "mock-sponsor-2", Name: "Marathon Sports", Logo: "/img/sponsors/marathon.png", URL: "https://www.marathon.store"},
		{ID: "mock-sponsor-3", Name: "Cerveza Pilsener", Logo: "/img/sponsors/pilsener.png", URL: "https://www.pilsener.com.ec"},
		{ID: "mock-sponsor-4", Name: "Claro Ecuador", Logo: "/img/sponsors/claro.png", URL: "https://www.claro.com.ec"},
		{ID: "mock-sponsor-5", Name: "Chevrolet", Logo: "/img/sponsors/chevrolet.png", URL: "https://www.chevrolet.com.ec"},
	}
}

func filterResults(items []Result, opts ListOptions) []Result {
	out := make([]Result, 0, len(items))
	for _, item := range items {
		if opts.Competition != "" && item.Competition != opts.Competition {
			continue
		}
		out = append(out, item)
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out
}

func filterFixtures(items []Fixture, opts ListOptions) []Fixture {
	out := make([]Fixture, 0, len(items))
	for _, item := range items {
		if opts.Competition != "" && item.Competition != opts.Competition {
			continue
		}
		out = append(out, item)
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out
}
