package freq

import "testing"

func TestUnitsAndAccessors(t *testing.T) {
	f := 168 * MHz
	if f.Hz() != 168_000_000 {
		t.Fatalf("Hz() = %d", f.Hz())
	}
	if f.KHz() != 168_000 {
		t.Fatalf("KHz() = %d", f.KHz())
	}
	if f.MHz() != 168 {
		t.Fatalf("MHz() = %d", f.MHz())
	}
	// Truncating, not rounding.
	if g := (1500 * KHz).MHz(); g != 1 {
		t.Fatalf("1500KHz in MHz = %d", g)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		f    Hertz
		want string
	}{
		{168 * MHz, "168MHz"},
		{8 * MHz, "8MHz"},
		{42 * MHz, "42MHz"},
		{32 * KHz, "32KHz"},
		{1500 * KHz, "1500KHz"},
		{32768 * Hz, "32768Hz"},
		{0, "0Hz"},
	}
	for _, c := range cases {
		if got := c.f.String(); got != c.want {
			t.Fatalf("String(%d) = %q, want %q", uint32(c.f), got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Hertz
	}{
		{"168mhz", 168 * MHz},
		{"168MHz", 168 * MHz},
		{"8MHZ", 8 * MHz},
		{"32khz", 32 * KHz},
		{"115200", 115200 * Hz},
		{"48hz", 48 * Hz},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Parse(%q) = %d, want %d", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "mhz", "12ghz", "8 mhz", "5000mhz", "99999999999"} {
		if _, err := Parse(bad); err == nil {
			t.Fatalf("Parse(%q) accepted", bad)
		}
	}
}
