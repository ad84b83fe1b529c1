// Package condition maps WMO weather codes to a German description and an
// OpenWeatherMap-compatible icon identifier.
package condition

import (
	"fmt"
	"sort"
)

// UnknownDescription is reported for codes outside the table.
const UnknownDescription = "Unbekannt"

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

// Condition is the presentation form of a weather code.
type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type entry struct {
	description string
	icon        string // two-digit base, suffixed with d/n
}

var table = map[int]entry{
	0:  {"Klar", "01"},
	1:  {"Überwiegend klar", "01"},
	2:  {"Teilweise bewölkt", "02"},
	3:  {"Bewölkt", "03"},
	45: {"Nebel", "50"},
	48: {"Reifnebel", "50"},
	51: {"Leichter Nieselregen", "09"},
	53: {"Mäßiger Nieselregen", "09"},
	55: {"Starker Nieselregen", "09"},
	56: {"Leichter gefrierender Nieselregen", "09"},
	57: {"Starker gefrierender Nieselregen", "09"},
	61: {"Leichter Regen", "10"},
	63: {"Mäßiger Regen", "10"},
	65: {"Starker Regen", "10"},
	66: {"Leichter gefrierender Regen", "13"},
	67: {"Starker gefrierender Regen", "13"},
	71: {"Leichter Schneefall", "13"},
	73: {"Mäßiger Schneefall", "13"},
	75: {"Starker Schneefall", "13"},
	77: {"Schneegriesel", "13"},
	80: {"Leichte Regenschauer", "09"},
	81: {"Mäßige Regenschauer", "09"},
	82: {"Starke Regenschauer", "09"},
	85: {"Leichte Schneeschauer", "13"},
	86: {"Starke Schneeschauer", "13"},
	95: {"Gewitter", "11"},
	96: {"Gewitter mit leichtem Hagel", "11"},
	99: {"Gewitter mit starkem Hagel", "11"},
}

// Classify returns the description and icon for a weather code.
// Unknown codes fall back to UnknownDescription with the clear-sky icon.
func Classify(code int, isDay bool) Condition {
	e, ok := table[code]
	if !ok {
		return Condition{Description: UnknownDescription, Icon: withSuffix("01", isDay)}
	}
	return Condition{Description: e.description, Icon: withSuffix(e.icon, isDay)}
}

// Known reports whether code is part of the table.
func Known(code int) bool {
	_, ok := table[code]
	return ok
}

// Codes returns all known codes in ascending order.
func Codes() []int {
	codes := make([]int, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// IconURL builds the image URL for an icon identifier such as "10d".
func IconURL(icon string) string {
	return fmt.Sprintf(iconURLFormat, icon)
}

func withSuffix(base string, isDay bool) string {
	if isDay {
		return base + "d"
	}
	return base + "n"
}
