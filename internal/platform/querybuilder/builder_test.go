package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("payload").
		From("buzzerbeater_hits").
		Where(Eq("match_id", int64(42))).
		OrderBy("event_index").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT payload FROM buzzerbeater_hits WHERE match_id = $1 ORDER BY event_index LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(42) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EqAny(t *testing.T) {
	t.Parallel()

	ids := []int64{1, 2}
	query, args, err := Select("match_id").From("match_reports").Where(EqAny("match_id", ids)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if want := "SELECT match_id FROM match_reports WHERE match_id = ANY($1)"; query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("buzzerbeater_hits").
		Columns("match_id", "event_index").
		Values(int64(1), 4).
		Values(int64(1), 9).
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO buzzerbeater_hits (match_id, event_index) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[3] != 9 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL()
	if err == nil {
		t.Fatalf("expected row width error")
	}
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("buzzerbeater_hits").Where(Eq("match_id", int64(7))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if want := "DELETE FROM buzzerbeater_hits WHERE match_id = $1"; query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("buzzerbeater_hits").ToSQL(); err == nil {
		t.Fatalf("expected unconditional delete to be rejected")
	}
}

type hitRow struct {
	MatchID    int64  `db:"match_id"`
	EventIndex int    `db:"event_index"`
	Comment    string `db:"comment,omitempty"`
	ignored    string
	Skipped    string `db:"-"`
}

func TestInsertModels(t *testing.T) {
	t.Parallel()

	rows := []hitRow{
		{MatchID: 1, EventIndex: 2, Comment: "a"},
		{MatchID: 1, EventIndex: 5, Comment: "b", ignored: "x"},
	}
	query, args, err := InsertModels("buzzerbeater_hits", rows, "")
	if err != nil {
		t.Fatalf("build insert models: %v", err)
	}
	want := "INSERT INTO buzzerbeater_hits (match_id, event_index, comment) VALUES ($1, $2, $3), ($4, $5, $6)"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 6 || args[4] != 5 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModels[hitRow]("buzzerbeater_hits", nil, ""); err == nil {
		t.Fatalf("expected empty models error")
	}
}
