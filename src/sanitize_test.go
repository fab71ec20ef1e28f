package src

import "testing"

func TestSanitizeSQLStripsFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"tagged fence", "```sql\nSELECT 1\n```", "SELECT 1"},
		{"bare fence", "```\nSELECT name FROM players\n```", "SELECT name FROM players"},
		{"no fence", "SELECT 1", "SELECT 1"},
		{"fence only at start", "```sql\nSELECT 1", "SELECT 1"},
		{"interior backticks untouched", "SELECT '```' AS x", "SELECT '```' AS x"},
		{"whitespace trimmed", "  SELECT 1  \n", "SELECT 1"},
	}
	for _, tc := range cases {
		if got := SanitizeSQL(tc.in); got != tc.want {
			t.Errorf("%s: SanitizeSQL(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestSanitizeSQLStripsHashComments(t *testing.T) {
	in := "SELECT name # player name\nFROM players # main table"
	want := "SELECT name \nFROM players"
	if got := SanitizeSQL(in); got != want {
		t.Fatalf("SanitizeSQL(%q) = %q, want %q", in, got, want)
	}
}

func TestSanitizeSQLCommentOnlyInput(t *testing.T) {
	if got := SanitizeSQL("# nothing but a comment"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestSanitizeSQLPreservesSentinels(t *testing.T) {
	if got := SanitizeSQL("```\nSELECT 'OFF_TOPIC'\n```"); got != "SELECT 'OFF_TOPIC'" {
		t.Fatalf("sentinel mangled: %q", got)
	}
}
