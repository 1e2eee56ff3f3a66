package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"anilab-chat-be/pkg/events"
	pktNats "anilab-chat-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// scenarios are scripted conversations, each run in a fresh session.
var scenarios = map[string][]string{
	"greeting": {"", "ahoj, čo máte?", "a ďalšie?"},
	"goal":     {"niečo na spánok", "a mletú?"},
	"decaf":    {"chcem kávu bez kofeínu"},
	"faq":      {"Od koľko je doprava zadarmo?", "Koľko stojí dobierka?", "Ako môžem platiť?", "Chcem vrátiť tovar"},
	"b2b":      {"Máme záujem o private label", "private label", "Slovensko", "kávové kapsule", "500 kusov mesačne"},
}

var scenarioOrder = []string{"greeting", "goal", "decaf", "faq", "b2b"}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Print /health",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, body, err := newClient().do(http.MethodGet, "/health", nil)
		if err != nil {
			color.Red("request failed: %v", err)
			return err
		}
		color.Green("Status: %d", status)
		prettyPrint(body)
		return nil
	},
}

var sayCmd = &cobra.Command{
	Use:   "say [message]",
	Short: "Send a single message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := newClient().chat(session(), strings.Join(args, " "))
		return err
	},
}

var leadEmail string

var scenarioCmd = &cobra.Command{
	Use:   "scenario [name...]",
	Short: "Run scripted conversations (" + strings.Join(scenarioOrder, ", ") + ")",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = scenarioOrder
		}

		c := newClient()
		failed := 0
		for _, name := range names {
			steps, ok := scenarios[name]
			if !ok {
				return fmt.Errorf("unknown scenario %q", name)
			}
			if name == "b2b" && leadEmail != "" {
				steps = append(append([]string(nil), steps...), leadEmail)
			}

			sid := session()
			color.Cyan("\n== %s (session %s)", name, sid)
			for _, msg := range steps {
				if _, err := c.chat(sid, msg); err != nil {
					failed++
				}
			}
		}

		if failed > 0 {
			color.Red("\n%d request(s) failed", failed)
			return fmt.Errorf("%d failed", failed)
		}
		color.Cyan("\n✅ Scenarios complete")
		return nil
	},
}

var natsURL string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print lead_captured events from NATS until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sub, err := pktNats.NewSubscriber(natsURL)
		if err != nil {
			color.Red("%v", err)
			return err
		}
		defer sub.Close()

		err = sub.Subscribe(ctx, events.TypeLeadCaptured, "", func(_ context.Context, ev events.Event) error {
			color.Cyan("\n[%s] %s", ev.Timestamp().Format("2006-01-02 15:04:05"), ev.EventType())
			raw, _ := json.Marshal(ev.Payload())
			prettyPrint(raw)
			return nil
		})
		if err != nil {
			color.Red("%v", err)
			return err
		}

		color.Yellow("Watching %s on %s (Ctrl+C to stop)", pktNats.Subject(events.TypeLeadCaptured), natsURL)
		<-ctx.Done()
		return nil
	},
}

func init() {
	scenarioCmd.Flags().StringVar(&leadEmail, "lead-email", "", "finish the b2b scenario with this contact (sends a real lead)")
	watchCmd.Flags().StringVar(&natsURL, "nats", "nats://localhost:4222", "NATS server URL")
}

func session() string {
	if sessionID != "" {
		return sessionID
	}
	return "probe-" + uuid.NewString()
}
