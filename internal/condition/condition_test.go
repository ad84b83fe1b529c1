package condition

import (
	"regexp"
	"strings"
	"testing"
)

var iconPattern = regexp.MustCompile(`^\d{2}[dn]$`)

func TestClassifyKnownCodesHaveDayAndNightVariants(t *testing.T) {
	codes := Codes()
	if len(codes) != 28 {
		t.Fatalf("expected 28 known codes, got %d", len(codes))
	}

	for _, code := range codes {
		day := Classify(code, true)
		night := Classify(code, false)

		if day.Description == UnknownDescription || day.Description == "" {
			t.Fatalf("code %d: unexpected description %q", code, day.Description)
		}
		if day.Description != night.Description {
			t.Fatalf("code %d: day/night descriptions differ: %q vs %q", code, day.Description, night.Description)
		}
		if !iconPattern.MatchString(day.Icon) || !strings.HasSuffix(day.Icon, "d") {
			t.Fatalf("code %d: bad day icon %q", code, day.Icon)
		}
		if !iconPattern.MatchString(night.Icon) || !strings.HasSuffix(night.Icon, "n") {
			t.Fatalf("code %d: bad night icon %q", code, night.Icon)
		}
		if day.Icon[:2] != night.Icon[:2] {
			t.Fatalf("code %d: icon base differs: %q vs %q", code, day.Icon, night.Icon)
		}
	}
}

func TestClassifyUnknownCodeFallsBackToClearSky(t *testing.T) {
	for _, code := range []int{-1, 4, 44, 100, 1000} {
		if Known(code) {
			t.Fatalf("code %d should not be known", code)
		}
		if got := Classify(code, true); got != (Condition{Description: UnknownDescription, Icon: "01d"}) {
			t.Fatalf("code %d day: got %+v", code, got)
		}
		if got := Classify(code, false); got != (Condition{Description: UnknownDescription, Icon: "01n"}) {
			t.Fatalf("code %d night: got %+v", code, got)
		}
	}
}

func TestClassifySpotChecks(t *testing.T) {
	cases := []struct {
		code  int
		isDay bool
		want  Condition
	}{
		{0, true, Condition{"Klar", "01d"}},
		{3, false, Condition{"Bewölkt", "03n"}},
		{48, true, Condition{"Reifnebel", "50d"}},
		{63, true, Condition{"Mäßiger Regen", "10d"}},
		{66, false, Condition{"Leichter gefrierender Regen", "13n"}},
		{82, true, Condition{"Starke Regenschauer", "09d"}},
		{99, false, Condition{"Gewitter mit starkem Hagel", "11n"}},
	}

	for _, tc := range cases {
		if got := Classify(tc.code, tc.isDay); got != tc.want {
			t.Fatalf("Classify(%d, %v) = %+v, want %+v", tc.code, tc.isDay, got, tc.want)
		}
	}
}

func TestIconURL(t *testing.T) {
	if got := IconURL("10d"); got != "https://openweathermap.org/img/wn/10d@2x.png" {
		t.Fatalf("unexpected icon url %q", got)
	}
}
