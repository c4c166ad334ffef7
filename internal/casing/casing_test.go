package casing

import (
	"slices"
	"testing"
)

func TestIsKebab(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"single word", "order", true},
		{"two words", "order-card", true},
		{"digits", "v2-api", true},
		{"uppercase", "Order-card", false},
		{"underscore", "order_card", false},
		{"double hyphen", "order--card", false},
		{"trailing hyphen", "order-", false},
		{"leading hyphen", "-order", false},
		{"empty", "", false},
		{"camel", "orderCard", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsKebab(tt.in); got != tt.want {
				t.Errorf("IsKebab(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsPascal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"OrderCard", true},
		{"X", true},
		{"HTTPServer", true},
		{"Order2", true},
		{"orderCard", false},
		{"Order_Card", false},
		{"Order-Card", false},
		{"", false},
		{"2Order", false},
	}

	for _, tt := range tests {
		if got := IsPascal(tt.in); got != tt.want {
			t.Errorf("IsPascal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsCamel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"orderCardHelper", true},
		{"useOrder", true},
		{"x", true},
		{"OrderCard", false},
		{"order_card", false},
		{"$order", false},
		{"_order", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsCamel(tt.in); got != tt.want {
			t.Errorf("IsCamel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsScreamingSnake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"API_URL", true},
		{"MAX", true},
		{"HTTP2_PORT", true},
		{"Api_Url", false},
		{"API__URL", false},
		{"_API", false},
		{"API_", false},
		{"apiUrl", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsScreamingSnake(tt.in); got != tt.want {
			t.Errorf("IsScreamingSnake(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMatchesUnknownStyle(t *testing.T) {
	t.Parallel()

	if Matches("anything", Style("snake_case")) {
		t.Error("Matches() with unknown style should be false")
	}
	if !Matches("order-card", Kebab) {
		t.Error("Matches(order-card, Kebab) should be true")
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"orderCard", []string{"order", "Card"}},
		{"HTTPServer", []string{"HTTP", "Server"}},
		{"order_card-v2", []string{"order", "card", "v2"}},
		{"API_URL", []string{"API", "URL"}},
		{"order2Go", []string{"order2", "Go"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := Words(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("Words(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		style Style
		want  string
	}{
		{"OrderCard", Kebab, "order-card"},
		{"order_card", Pascal, "OrderCard"},
		{"HTTP_SERVER", Pascal, "HttpServer"},
		{"OrderCardHelper", Camel, "orderCardHelper"},
		{"apiUrl", ScreamingSnake, "API_URL"},
		{"max-retries", ScreamingSnake, "MAX_RETRIES"},
		{"same", Style("other"), "same"},
	}

	for _, tt := range tests {
		if got := Convert(tt.in, tt.style); got != tt.want {
			t.Errorf("Convert(%q, %s) = %q, want %q", tt.in, tt.style, got, tt.want)
		}
	}
}

func TestConvertResultMatchesStyle(t *testing.T) {
	t.Parallel()

	inputs := []string{"orderCard", "Order_Card", "order-card-v2", "HTTPServer", "API_URL"}
	styles := []Style{Kebab, Pascal, Camel, ScreamingSnake}

	for _, in := range inputs {
		for _, style := range styles {
			got := Convert(in, style)
			if !Matches(got, style) {
				t.Errorf("Convert(%q, %s) = %q does not match the style", in, style, got)
			}
		}
	}
}

func TestSplitAffixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in                   string
		prefix, core, suffix string
	}{
		{"$store", "$", "store", ""},
		{"__DEV__", "__", "DEV", "__"},
		{"_privateHelper", "_", "privateHelper", ""},
		{"MAX_SIZE", "", "MAX_SIZE", ""},
		{"_", "_", "", ""},
	}
	for _, tt := range tests {
		p, c, s := SplitAffixes(tt.in)
		if p != tt.prefix || c != tt.core || s != tt.suffix {
			t.Errorf("SplitAffixes(%q) = %q, %q, %q, want %q, %q, %q", tt.in, p, c, s, tt.prefix, tt.core, tt.suffix)
		}
	}
}

func TestIdentifierAffixes(t *testing.T) {
	t.Parallel()

	if !MatchesIdentifier("$store", Camel) {
		t.Error("$store should be camelCase once the marker is removed")
	}
	if !MatchesIdentifier("__DEV__", ScreamingSnake) {
		t.Error("__DEV__ should be SCREAMING_SNAKE_CASE once the markers are removed")
	}
	if MatchesIdentifier("$Store", Camel) {
		t.Error("$Store is not camelCase")
	}
	if got := ConvertIdentifier("$Store", Camel); got != "$store" {
		t.Errorf("ConvertIdentifier($Store) = %q, want %q", got, "$store")
	}
	if got := ConvertIdentifier("_apiUrl_", ScreamingSnake); got != "_API_URL_" {
		t.Errorf("ConvertIdentifier(_apiUrl_) = %q, want %q", got, "_API_URL_")
	}
}
