package envfile

import "testing"

func TestNeedsBashQuoting(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"plain", false},
		{"", true},
		{"has space", true},
		{"dollar$sign", true},
		{"semi;colon", true},
		{"glob*", true},
		{"tilde~", true},
	}
	for _, c := range cases {
		if got := NeedsBashQuoting(c.value); got != c.want {
			t.Errorf("NeedsBashQuoting(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestEscapeBash(t *testing.T) {
	got := EscapeBash("a\"b$c`d\ne")
	want := "a\\\"b\\$c\\`d\\ne"
	if got != want {
		t.Errorf("Expected %q, got: %q", want, got)
	}
}

func TestEscapeMake(t *testing.T) {
	if got := EscapeMake("cost $5 #tag"); got != `cost $$5 \#tag` {
		t.Errorf("Expected make escaping, got: %q", got)
	}
}

func TestNeedsSimpleQuoting(t *testing.T) {
	if NeedsSimpleQuoting("plain-value_123") {
		t.Error("Expected plain value to need no quoting")
	}
	if !NeedsSimpleQuoting("") {
		t.Error("Expected empty value to need quoting")
	}
	if !NeedsSimpleQuoting("a=b") {
		t.Error("Expected '=' to force quoting")
	}
}
