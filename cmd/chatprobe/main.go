// Command chatprobe talks to a running chat backend and prints the replies
// in color. It can also tail lead events from NATS.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	baseURL   string
	sessionID string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "chatprobe",
	Short: "Smoke client for the ANiLab chat backend",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&baseURL, "url", "u", "http://localhost:10000", "backend base URL")
	rootCmd.PersistentFlags().StringVarP(&sessionID, "session", "s", "", "session id (default: generated per run)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(healthCmd, sayCmd, scenarioCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type client struct {
	base string
	http *http.Client
}

func newClient() *client {
	return &client{base: baseURL, http: &http.Client{Timeout: 30 * time.Second}}
}

func (c *client) do(method, path string, body interface{}) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	return resp.StatusCode, out, err
}

// chat sends one message and prints the exchange.
func (c *client) chat(session, message string) (string, error) {
	color.Yellow("› %s", message)

	status, body, err := c.do(http.MethodPost, "/chat", map[string]string{"message": message, "sessionId": session})
	if err != nil {
		color.Red("request failed: %v", err)
		return "", err
	}

	var out struct {
		Reply string `json:"reply"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		color.Red("unreadable response (%d): %s", status, string(body))
		return "", err
	}
	if status != http.StatusOK {
		color.Red("status %d: %s", status, out.Error)
		return "", fmt.Errorf("status %d", status)
	}

	color.Green("%s\n", out.Reply)
	return out.Reply, nil
}

func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
