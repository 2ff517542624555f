package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "home_team").
		From("matches").
		Where(Eq("competition", "Liga Pro"), IsNull("deleted_at")).
		OrderBy("date DESC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, home_team FROM matches WHERE competition = $1 AND deleted_at IS NULL ORDER BY date DESC LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "Liga Pro" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderDateBounds(t *testing.T) {
	query, args, err := Select("*").
		From("matches").
		Where(Gte("date", "2026-01-01"), Lt("date", "2026-12-31"), IsNull("deleted_at")).
		OrderBy("date").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM matches WHERE date >= $1 AND date < $2 AND deleted_at IS NULL ORDER BY date"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderInAndExpr(t *testing.T) {
	query, args, err := Select("id").
		From("news").
		Where(In("category", []any{"team", "club"}), Expr("? = ANY(tags)", "fichajes")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM news WHERE category IN ($1, $2) AND $3 = ANY(tags)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("sponsors").
		Columns("id", "name").
		Values("sp1", "Marathon").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO sponsors (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "sp1" || args[1] != "Marathon" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("news").
		Set("title", "new title").
		SetExpr("views", "views + 1").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "n1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE news SET title = $1, views = views + 1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "new title" || args[1] != "n1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
