package query

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"inventory-manager/core/metrics"
	"inventory-manager/core/utils"
	"inventory-manager/feature/inventory"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	// QuitToken ends the session, compared case-insensitively.
	QuitToken = "q"

	Prompt         = "Enter the manufacturer and item type or q to quit: "
	MsgInvalid     = "Invalid input format. Please enter both the manufacturer and item type."
	MsgNoMatch     = "No such item in inventory"
	MsgBest        = "Your item is: "
	MsgAlternative = "You may also consider similar item: "
)

var divider = strings.Repeat("-", 63)

// Outcome labels one handled input line.
type Outcome string

const (
	OutcomeFound   Outcome = "found"
	OutcomeNoMatch Outcome = "no_match"
	OutcomeInvalid Outcome = "invalid"
	OutcomeError   Outcome = "error"
	OutcomeQuit    Outcome = "quit"
)

// Session runs the interactive read-evaluate loop over an immutable inventory.
type Session struct {
	inv     *inventory.Inventory
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	headline lipgloss.Style
	warning  lipgloss.Style
	faint    lipgloss.Style
}

// NewSession creates a session reading queries from in and answering on out.
// now defaults to time.Now; logger and m may be nil.
func NewSession(inv *inventory.Inventory, in io.Reader, out io.Writer, logger *zap.Logger, m *metrics.Metrics, now func() time.Time) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	r := lipgloss.NewRenderer(out)
	return &Session{
		inv:      inv,
		in:       in,
		out:      out,
		logger:   logger,
		metrics:  m,
		now:      now,
		headline: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		warning:  r.NewStyle().Foreground(lipgloss.Color("11")),
		faint:    r.NewStyle().Faint(true),
	}
}

// Run prompts until the quit token, end of input or context cancellation.
func (s *Session) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if s.Handle(scanner.Text()) == OutcomeQuit {
			return nil
		}
	}
}

// Handle evaluates a single input line and writes the answer.
func (s *Session) Handle(line string) Outcome {
	if strings.EqualFold(strings.TrimSpace(line), QuitToken) {
		return OutcomeQuit
	}

	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Fprintln(s.out, s.warning.Render(MsgInvalid))
		return s.record(OutcomeInvalid)
	}
	manufacturer, itemType := parts[0], parts[1]

	result, err := FindBestAndAlternative(s.inv, manufacturer, itemType, s.now())
	if err != nil {
		s.logger.Error("Query failed",
			zap.String("manufacturer", manufacturer),
			zap.String("item_type", itemType),
			zap.Error(err),
		)
		fmt.Fprintln(s.out, s.warning.Render("Query failed: "+err.Error()))
		return s.record(OutcomeError)
	}

	if !result.Found {
		fmt.Fprintln(s.out, s.warning.Render(MsgNoMatch))
		fmt.Fprintln(s.out)
		return s.record(OutcomeNoMatch)
	}

	fmt.Fprintln(s.out, s.faint.Render(divider))
	fmt.Fprintln(s.out, s.headline.Render(MsgBest+describe(result.Best)))
	if result.HasAlternative {
		fmt.Fprintln(s.out, MsgAlternative+describe(result.Alternative))
	}
	fmt.Fprintln(s.out, s.faint.Render(divider))
	fmt.Fprintln(s.out)
	return s.record(OutcomeFound)
}

func (s *Session) record(o Outcome) Outcome {
	s.metrics.QueryAnswered(string(o))
	s.logger.Debug("Query handled", zap.String("outcome", string(o)))
	return o
}

// describe renders "id, manufacturer, type, $price". Callers only pass items
// whose price was already resolved by the engine.
func describe(item inventory.Item) string {
	return fmt.Sprintf("%s, %s, %s, $%s", item.ID, item.Manufacturer, item.Type, utils.FormatFloat(item.Price))
}
