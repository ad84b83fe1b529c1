package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"weather_card/internal/presentation"
	"weather_card/platform/sanitize"

	"github.com/spf13/cobra"
)

const (
	prompt = "Stadt> "
	// acceptLine is what a terminal sends for Tab followed by Enter.
	acceptLine = "\t"
)

// runInteractive reads one query per line. Every state change of the
// session is rendered as it happens; the next prompt appears once the
// search has settled.
func runInteractive(cmd *cobra.Command, e *env) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	session := presentation.NewSession(e.services.Weather, e.services.Locator, e.log)
	e.log.Debug("interactive session started", "session_id", session.ID())

	states, unsubscribe := session.Subscribe()
	settled := make(chan struct{})
	go func() {
		for st := range states {
			if err := presentation.RenderState(out, st, time.Now()); err != nil {
				e.log.Warn("render failed", "error", err)
			}
			if st.Kind() != presentation.KindLoading {
				settled <- struct{}{}
			}
		}
	}()
	defer unsubscribe()

	waitFor(session.StartSuggestion(ctx), e.opts.SuggestionWait)

	fmt.Fprintln(out, "Geben Sie eine Stadt ein, um aktuelle Wetterdaten zu erhalten. Beenden mit \"exit\".")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if city, ok := session.Suggestion(); ok {
			fmt.Fprintf(out, "Dein Standort: %s (Tab + Enter zum Auswählen)\n", city)
		}
		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()

		if line == acceptLine {
			if _, ok := session.AcceptSuggestion(ctx); ok {
				<-settled
			}
			continue
		}

		query := sanitize.Query(line)
		if isQuit(query) {
			return nil
		}

		session.SetInput(query)
		if query == "" {
			continue
		}
		if err := e.val.CityName(query); err != nil {
			fmt.Fprintln(out, "Ungültiger Stadtname.")
			continue
		}

		session.Submit(ctx, query)
		<-settled
	}
}

func isQuit(s string) bool {
	switch strings.ToLower(s) {
	case "exit", "quit", ":q":
		return true
	}
	return false
}

// waitFor blocks until done is closed or d has passed.
func waitFor(done <-chan struct{}, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
	}
}
