package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"result": false,
			"msg":    err.Error(),
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"msg": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Envelope:
		o.printEnvelope(v)
	case Player:
		o.printPlayer(v)
	case LoginResult:
		o.printLoginResult(v)
	case CreatePromptResult:
		o.printCreatePromptResult(v)
	case PlayerList:
		o.printPlayerList(v)
	case PromptList:
		o.printPromptList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Envelope response type (matches API)
type Envelope struct {
	Result bool   `json:"result"`
	Msg    string `json:"msg"`
}

// Player response type
type Player struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	GamesPlayed int    `json:"games_played"`
	TotalScore  int    `json:"total_score"`
}

// LoginResult combines the envelope and the authenticated player
type LoginResult struct {
	Envelope
	Player Player `json:"player"`
}

// CreatePromptResult carries the new prompt's ID
type CreatePromptResult struct {
	Envelope
	PromptID string `json:"prompt_id"`
}

// LocalizedText response type
type LocalizedText struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

// Prompt response type
type Prompt struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Texts    []LocalizedText `json:"texts"`
	Status   string          `json:"status"`
	Severity float64         `json:"severity"`
}

// PlayerList response type
type PlayerList struct {
	Result bool     `json:"result"`
	Data   []Player `json:"data"`
}

// PromptList response type
type PromptList struct {
	Result bool     `json:"result"`
	Data   []Prompt `json:"data"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printEnvelope(e Envelope) {
	fmt.Println(e.Msg)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Username, p.ID)
	fmt.Printf("Games Played: %d\n", p.GamesPlayed)
	fmt.Printf("Total Score: %d\n", p.TotalScore)
}

func (o *Output) printLoginResult(l LoginResult) {
	fmt.Println(l.Msg)
	o.printPlayer(l.Player)
}

func (o *Output) printCreatePromptResult(c CreatePromptResult) {
	fmt.Printf("Prompt created: %s\n", c.PromptID)
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Printf("Players (%d):\n", len(l.Data))
	for _, p := range l.Data {
		fmt.Printf("  - %s: %d games, %d points\n", p.Username, p.GamesPlayed, p.TotalScore)
	}
}

func (o *Output) printPromptList(l PromptList) {
	fmt.Printf("Prompts (%d):\n", len(l.Data))
	for _, p := range l.Data {
		text := ""
		for _, t := range p.Texts {
			if t.Language == "en" {
				text = t.Text
				break
			}
		}
		if text == "" && len(p.Texts) > 0 {
			text = p.Texts[0].Text
		}
		fmt.Printf("  - [%s] %s (%s): %q\n", p.Status, p.ID, p.Username, text)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
