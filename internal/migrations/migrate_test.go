package migrations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLatestVersion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"000001_create_trainer_tables.up.sql",
		"000001_create_trainer_tables.down.sql",
		"000003_add_index.up.sql",
		"000010_notes.down.sql",
		"README.md",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if got := LatestVersion(dir); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	if got := LatestVersion(filepath.Join(dir, "missing")); got != 0 {
		t.Errorf("missing dir: got %d, want 0", got)
	}
}

func TestRepositoryMigrations(t *testing.T) {
	if got := LatestVersion(filepath.Join("..", "..", Dir)); got < 2 {
		t.Errorf("expected the answer_ei widening migration, latest is %d", got)
	}
}

func TestAnswerEIHoldsOutOfScaleAnswers(t *testing.T) {
	b, err := os.ReadFile(filepath.Join("..", "..", Dir, "000002_widen_answer_ei.up.sql"))
	if err != nil {
		t.Fatal(err)
	}
	sql := strings.ToUpper(string(b))
	if !strings.Contains(sql, "ALTER COLUMN ANSWER_EI TYPE DOUBLE PRECISION") {
		t.Errorf("answer_ei is not widened:\n%s", b)
	}
}
