package format

import (
	"strings"
	"testing"

	"github.com/dshills/sqlformat/internal/options"
)

// configWith builds a config from "Name: value" lines on top of the defaults.
func configWith(t *testing.T, text string) options.Config {
	t.Helper()
	o, err := options.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	return options.ApplyLayers(options.Defaults(), o)
}

func TestLex_Lossless(t *testing.T) {
	inputs := []string{
		"select foo;",
		"SELECT a, b FROM t WHERE x >= 1 -- trailing\n",
		"select 'it''s', \"Quoted Col\", `tick` /* block */ from [dbo].[t]",
		"select 1.5, .5, a::int, b || c from t where d <> e and f != g;\n\n",
		"select 'unterminated",
		"/* open comment",
		"select été from café",
	}
	for _, in := range inputs {
		if got := join(lex(in)); got != in {
			t.Errorf("join(lex(%q)) = %q", in, got)
		}
	}
}

func TestLex_Kinds(t *testing.T) {
	toks := lex("select 'a' -- c\n<= x1")
	want := []kind{tkWord, tkSpace, tkString, tkSpace, tkLineComment, tkSpace, tkOperator, tkSpace, tkWord}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i].kind != want[i] {
			t.Errorf("token %d (%q) kind = %d, want %d", i, toks[i].text, toks[i].kind, want[i])
		}
	}
}

func TestFormat_DefaultsAreIdentity(t *testing.T) {
	in := "select  a,b\nfrom t -- note\nwhere x=1;\n"
	if got := Format(in, options.Defaults()); got != in {
		t.Errorf("Format with defaults = %q, want input unchanged", got)
	}
}

func TestFormat_KeywordCase(t *testing.T) {
	tests := []struct {
		style string
		in    string
		want  string
	}{
		{"upper", "select foo;", "SELECT foo;"},
		{"lower", "SELECT Foo FROM T;", "select Foo from T;"},
		{"capitalize", "select foo from bar group by foo", "Select foo From bar Group By foo"},
		{"upper", "select 'select' from \"from\"", "SELECT 'select' FROM \"from\""},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			got := Format(tt.in, configWith(t, "KeywordCase: "+tt.style))
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormat_IdentifierCase(t *testing.T) {
	got := Format("select UserName, `Keep` from Accounts", configWith(t, "IdentifierCase: lower"))
	want := "select username, `Keep` from accounts"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_StripComments(t *testing.T) {
	in := "select a, -- first\n  b /* second */ from t\n"
	got := Format(in, configWith(t, "StripComments: yes"))
	want := "select a,\n  b   from t\n"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_StripWhitespace(t *testing.T) {
	in := "select  a ,\n\tb\nfrom   t ( x )\n;\n"
	got := Format(in, configWith(t, "StripWhitespace: true"))
	want := "select a, b from t (x);\n"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_StripWhitespaceKeepsLineCommentBreak(t *testing.T) {
	got := Format("select a -- c\n   from t", configWith(t, "StripWhitespace: true"))
	want := "select a -- c\nfrom t"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_SpaceAroundOperators(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"select a+b from t where x>=1", "select a + b from t where x >= 1"},
		{"select * from t", "select * from t"},
		{"select count(*) from t", "select count(*) from t"},
		{"select -1, a*-2", "select -1, a * -2"},
		{"select a::int", "select a::int"},
		{"where x  =   1", "where x = 1"},
	}
	cfg := configWith(t, "UseSpaceAroundOperators: true")
	for _, tt := range tests {
		if got := Format(tt.in, cfg); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_Reindent(t *testing.T) {
	in := "select a, b from t join u on t.id = u.id and u.ok where x = 1 and y between 1 and 2 order by a;"
	got := Format(in, configWith(t, "Reindent: true\nKeywordCase: upper"))
	want := strings.Join([]string{
		"SELECT a,",
		"  b",
		"FROM t",
		"JOIN u ON t.id = u.id",
		"  AND u.ok",
		"WHERE x = 1",
		"  AND y BETWEEN 1 AND 2",
		"ORDER BY a;",
	}, "\n")
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_ReindentJoinsAndSubqueries(t *testing.T) {
	in := "select a from t left outer join u on t.id = u.id where id in (select id from v) and left(name, 1) = 'x'"
	got := Format(in, configWith(t, "Reindent: true\nIndentWidth: 4"))
	want := strings.Join([]string{
		"select a",
		"from t",
		"left outer join u on t.id = u.id",
		"where id in (",
		"    select id",
		"    from v)",
		"    and left(name, 1) = 'x'",
	}, "\n")
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_ReindentStatements(t *testing.T) {
	in := "select 1; select 2;\n"
	got := Format(in, configWith(t, "Reindent: true"))
	want := "select 1;\n\nselect 2;\n"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_ReindentTabsAndCommaFirst(t *testing.T) {
	got := Format("select a, b, c from t", configWith(t, "Reindent: true\nIndentTabs: true\nCommaFirst: true"))
	want := "select a\n\t, b\n\t, c\nfrom t"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_ReindentWrapAfter(t *testing.T) {
	got := Format("select alpha, beta, gamma, delta from t", configWith(t, "Reindent: true\nWrapAfter: 20"))
	want := "select alpha, beta,\n  gamma, delta\nfrom t"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_ReindentOverWindowStaysInline(t *testing.T) {
	got := Format("select rank() over (partition by a order by b) from t", configWith(t, "Reindent: true"))
	want := "select rank() over (partition by a order by b)\nfrom t"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
