package framework

import "testing"

func TestParseLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   Location
		wantOK bool
	}{
		{name: "front", input: "front", want: Front, wantOK: true},
		{name: "admin", input: "admin", want: Admin, wantOK: true},
		{name: "login", input: "login", want: Login, wantOK: true},
		{name: "customizer", input: "customizer", want: Customizer, wantOK: true},
		{name: "editor", input: "editor", want: Editor, wantOK: true},
		{name: "mixed case", input: "Front", want: Front, wantOK: true},
		{name: "padded", input: "  admin ", want: Admin, wantOK: true},
		{name: "unknown", input: "unknown-location", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseLocation(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseLocation(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseLocation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLocationHook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		loc  Location
		want string
	}{
		{Front, HookFront},
		{Admin, HookAdmin},
		{Login, HookLogin},
		{Customizer, HookCustomizer},
		{Editor, HookEditor},
		{Location(99), ""},
	}

	for _, tt := range tests {
		if got := tt.loc.Hook(); got != tt.want {
			t.Errorf("Hook(%d) = %q, want %q", tt.loc, got, tt.want)
		}
	}
}

func TestLocationString(t *testing.T) {
	t.Parallel()

	for _, l := range []Location{Front, Admin, Login, Customizer, Editor} {
		name := l.String()
		if name == "" {
			t.Errorf("String(%d) is empty", l)
			continue
		}
		back, ok := ParseLocation(name)
		if !ok || back != l {
			t.Errorf("ParseLocation(String(%d)) = %v, %v; want round trip", l, back, ok)
		}
	}
	if got := Location(99).String(); got != "" {
		t.Errorf("String(99) = %q, want empty", got)
	}
}
