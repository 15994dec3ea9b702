package finance

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(1000, "USD"), "$1,000.00"},
		{M(0, "USD"), "$0.00"},
		{M(650, "USD"), "$650.00"},
		{M(0.005, "USD"), "$0.01"},
		{M(-42.5, "USD"), "-$42.50"},
		{M(1234567.891, "EUR"), "€1,234,567.89"},
		{M(150, "GBP"), "£150.00"},
		{M(150, "JPY"), "¥150"},
		{M(150, "XYZ"), "150.00XYZ"},
		{M(1e17, "USD"), "$100,000,000,000,000,000.00"},
		{M(-1e17, "USD"), "-$100,000,000,000,000,000.00"},
		{M(1e20, "JPY"), "¥100,000,000,000,000,000,000"},
		{M(1e17, "XYZ"), "100,000,000,000,000,000.00XYZ"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_Equal(t *testing.T) {
	if !M(150, "USD").Equal(M(150.0, "USD")) {
		t.Error("150 USD should equal 150.0 USD")
	}
	if M(150, "USD").Equal(M(150, "EUR")) {
		t.Error("150 USD should not equal 150 EUR")
	}
	if M(900, "USD").Equal(M(650, "USD")) {
		t.Error("900 USD should not equal 650 USD")
	}
}
