package presentation

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"weather_card/internal/condition"
	"weather_card/internal/weather/transport"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// RetryHint is shown under every failure message.
const RetryHint = "Bitte versuchen Sie es mit einer anderen Stadt."

var germanWeekdays = [...]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}

var germanMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// CardView is a WeatherSnapshot formatted for display.
type CardView struct {
	City        string
	Country     string
	Temperature string
	FeelsLike   string
	Description string
	IconURL     string
	Humidity    string
	WindSpeed   string
	Pressure    string
	UVIndex     string
	Sunrise     string
	Sunset      string
	Daytime     bool
	DayLabel    string
	Date        string
}

// IsDaytime reports whether now lies strictly between sunrise and sunset.
func IsDaytime(s transport.WeatherSnapshot, now time.Time) bool {
	ts := now.Unix()
	return ts > s.Sunrise && ts < s.Sunset
}

// NewCardView formats s for the time zone of now.
func NewCardView(s transport.WeatherSnapshot, now time.Time) CardView {
	p := message.NewPrinter(language.German)
	loc := now.Location()

	uvi := 0.0
	if s.UVIndex != nil {
		uvi = *s.UVIndex
	}

	daytime := IsDaytime(s, now)
	dayLabel := "Nacht"
	if daytime {
		dayLabel = "Tag"
	}

	return CardView{
		City:        s.City,
		Country:     s.Country,
		Temperature: p.Sprintf("%d°C", int(math.Round(s.Temperature))),
		FeelsLike:   p.Sprintf("%d°C", int(math.Round(s.FeelsLike))),
		Description: s.Description,
		IconURL:     condition.IconURL(s.Icon),
		Humidity:    fmt.Sprintf("%d%%", s.Humidity),
		WindSpeed:   p.Sprintf("%v km/h", number.Decimal(s.WindSpeed, number.MaxFractionDigits(1))),
		Pressure:    p.Sprintf("%v hPa", number.Decimal(s.Pressure, number.MaxFractionDigits(1))),
		UVIndex:     p.Sprintf("%v", number.Decimal(uvi, number.MaxFractionDigits(1))),
		Sunrise:     time.Unix(s.Sunrise, 0).In(loc).Format("15:04"),
		Sunset:      time.Unix(s.Sunset, 0).In(loc).Format("15:04"),
		Daytime:     daytime,
		DayLabel:    dayLabel,
		Date:        germanDate(now),
	}
}

// RenderCard writes the text form of the weather card.
func RenderCard(w io.Writer, s transport.WeatherSnapshot, now time.Time) error {
	v := NewCardView(s, now)

	title := v.City
	if v.Country != "" {
		title += ", " + v.Country
	}
	rule := strings.Repeat("─", max(len([]rune(title)), 32))

	lines := []string{
		title,
		rule,
		fmt.Sprintf("%s  %s", v.Temperature, v.Description),
		fmt.Sprintf("Gefühlt wie      %s", v.FeelsLike),
		fmt.Sprintf("Luftfeuchtigkeit %s", v.Humidity),
		fmt.Sprintf("Wind             %s", v.WindSpeed),
		fmt.Sprintf("Luftdruck        %s", v.Pressure),
		fmt.Sprintf("UV-Index         %s", v.UVIndex),
		fmt.Sprintf("Sonnenaufgang    %s", v.Sunrise),
		fmt.Sprintf("Sonnenuntergang  %s", v.Sunset),
		rule,
		fmt.Sprintf("%s · %s", v.DayLabel, v.Date),
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// RenderState writes the text form of st. Idle renders nothing.
func RenderState(w io.Writer, st State, now time.Time) error {
	switch st := st.(type) {
	case Loading:
		_, err := fmt.Fprintf(w, "Lade Wetter für %s …\n", st.Query)
		return err
	case Loaded:
		return RenderCard(w, st.Snapshot, now)
	case Failed:
		_, err := fmt.Fprintf(w, "%s\n%s\n", st.Message, RetryHint)
		return err
	default:
		return nil
	}
}

func germanDate(t time.Time) string {
	return fmt.Sprintf("%s, %d. %s", germanWeekdays[t.Weekday()], t.Day(), germanMonths[t.Month()-1])
}
