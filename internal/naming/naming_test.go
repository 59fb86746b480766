package naming_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-appgen/internal/naming"
)

func TestWords(t *testing.T) {
	cases := map[string][]string{
		"my-app":           {"my", "app"},
		"uniswap-v2":       {"uniswap", "v", "2"},
		"pool_together":    {"pool", "together"},
		"myApp":            {"my", "App"},
		"HTTPServer":       {"HTTP", "Server"},
		"  spaced  out":    {"spaced", "out"},
		"ETHEREUM_MAINNET": {"ETHEREUM", "MAINNET"},
		"---":              nil,
	}
	for input, want := range cases {
		if diff := cmp.Diff(want, naming.Words(input)); diff != "" {
			t.Errorf("Words(%q) mismatch (-want +got):\n%s", input, diff)
		}
	}
}

func TestIdentifierDerivation(t *testing.T) {
	tests := []struct {
		in      string
		upper   string
		title   string
		label   string
		compact string
	}{
		{in: "my-app", upper: "MY_APP", title: "MyApp", label: "My App", compact: "myapp"},
		{in: "zapper", upper: "ZAPPER", title: "Zapper", label: "Zapper", compact: "zapper"},
		{in: "uniswap-v2", upper: "UNISWAP_V_2", title: "UniswapV2", label: "Uniswap V 2", compact: "uniswapv2"},
		{in: "BINANCE_SMART_CHAIN_MAINNET", upper: "BINANCE_SMART_CHAIN_MAINNET", title: "BinanceSmartChainMainnet", label: "Binance Smart Chain Mainnet", compact: "binancesmartchainmainnet"},
	}
	for _, tt := range tests {
		if got := naming.UpperCase(tt.in); got != tt.upper {
			t.Errorf("UpperCase(%q) = %q, want %q", tt.in, got, tt.upper)
		}
		if got := naming.TitleCase(tt.in); got != tt.title {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.title)
		}
		if got := naming.Label(tt.in); got != tt.label {
			t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.label)
		}
		if got := naming.Compact(tt.in); got != tt.compact {
			t.Errorf("Compact(%q) = %q, want %q", tt.in, got, tt.compact)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	valid := []string{"pool", "_private", "MY_APP_DEFINITION", "v2"}
	invalid := []string{"", "2pool", "my-app", "a b"}

	for _, s := range valid {
		if !naming.IsIdentifier(s) {
			t.Errorf("IsIdentifier(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if naming.IsIdentifier(s) {
			t.Errorf("IsIdentifier(%q) = true, want false", s)
		}
	}
}
