package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectToSQL(t *testing.T) {
	t.Parallel()

	sql, args, err := Select("*").
		From("results").
		Where(Eq("sport_id", int64(3))).
		OrderBy("id ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("to sql: %v", err)
	}

	want := "SELECT * FROM results WHERE sport_id = $1 ORDER BY id ASC LIMIT 10"
	if sql != want {
		t.Fatalf("unexpected sql: %q", sql)
	}
	if !reflect.DeepEqual(args, []any{int64(3)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectMultipleConditions(t *testing.T) {
	t.Parallel()

	sql, args, err := Select("id", "points").
		From("results").
		Where(Eq("team_id", int64(1)), Eq("sport_id", int64(2))).
		ToSQL()
	if err != nil {
		t.Fatalf("to sql: %v", err)
	}

	want := "SELECT id, points FROM results WHERE team_id = $1 AND sport_id = $2"
	if sql != want {
		t.Fatalf("unexpected sql: %q", sql)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInConditionEmptyValuesMatchesNothing(t *testing.T) {
	t.Parallel()

	sql, args, err := Select("id").From("teams").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("to sql: %v", err)
	}
	if sql != "SELECT id FROM teams WHERE 1=0" {
		t.Fatalf("unexpected sql: %q", sql)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModel(t *testing.T) {
	t.Parallel()

	type row struct {
		TeamID  int64  `db:"team_id"`
		SportID int64  `db:"sport_id"`
		Points  int64  `db:"points"`
		Skipped string `db:"-"`
		NoTag   string
	}

	sql, args, err := InsertModel("results", row{TeamID: 1, SportID: 2, Points: 30}, "RETURNING *")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}

	want := "INSERT INTO results (team_id, sport_id, points) VALUES ($1, $2, $3) RETURNING *"
	if sql != want {
		t.Fatalf("unexpected sql: %q", sql)
	}
	if !reflect.DeepEqual(args, []any{int64(1), int64(2), int64(30)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModelRejectsNonStruct(t *testing.T) {
	t.Parallel()

	if _, _, err := InsertModel("results", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	var nilRow *struct {
		ID int64 `db:"id"`
	}
	if _, _, err := InsertModel("results", nilRow, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestUpdateToSQL(t *testing.T) {
	t.Parallel()

	sql, args, err := Update("results").
		Set("points", int64(25)).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		t.Fatalf("to sql: %v", err)
	}

	want := "UPDATE results SET points = $1, updated_at = NOW() WHERE id = $2 RETURNING *"
	if sql != want {
		t.Fatalf("unexpected sql: %q", sql)
	}
	if !reflect.DeepEqual(args, []any{int64(25), int64(7)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteToSQL(t *testing.T) {
	t.Parallel()

	sql, args, err := DeleteFrom("participations").
		Where(Eq("sport_id", int64(3))).
		ToSQL()
	if err != nil {
		t.Fatalf("to sql: %v", err)
	}

	want := "DELETE FROM participations WHERE sport_id = $1"
	if sql != want {
		t.Fatalf("unexpected sql: %q", sql)
	}
	if !reflect.DeepEqual(args, []any{int64(3)}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestDeleteRequiresConditions(t *testing.T) {
	t.Parallel()

	if _, _, err := DeleteFrom("participations").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without conditions")
	}
}
