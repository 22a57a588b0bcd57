package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
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
		data, _ := json.Marshal(map[string]string{"message": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
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
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case GradeResult:
		o.printGradeResult(v)
	case HistoryResult:
		o.printHistoryResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"sessionToken"`
}

// GradeResult is the grade returned for a submitted trade
type GradeResult struct {
	Grade string `json:"grade"`
}

// TradeRecord is one trade in the history listing
type TradeRecord struct {
	ID        string    `json:"id"`
	SideA     []string  `json:"sideA"`
	SideB     []string  `json:"sideB"`
	Grade     string    `json:"grade"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryResult is one page of trade history
type HistoryResult struct {
	Trades  []TradeRecord `json:"trades"`
	HasMore bool          `json:"hasMore"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printGradeResult(g GradeResult) {
	fmt.Printf("Grade: %s\n", g.Grade)
}

func (o *Output) printHistoryResult(h HistoryResult) {
	if len(h.Trades) == 0 {
		fmt.Println("No trades yet")
		return
	}

	for _, t := range h.Trades {
		fmt.Printf("%s  [%s]\n", t.CreatedAt.Format(time.RFC3339), t.Grade)
		fmt.Printf("  Giving:    %s\n", strings.Join(t.SideA, ", "))
		fmt.Printf("  Receiving: %s\n", strings.Join(t.SideB, ", "))
	}

	if h.HasMore {
		fmt.Println("\nMore trades available - use --page to see older ones")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
