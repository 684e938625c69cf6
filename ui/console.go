// Package ui renders the shared conversation state in the terminal and
// turns operator input into admin or human actions. It never mutates
// domain state directly; every action goes through the dispatch service
// and comes back as a stream event.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"social-bridge/contract"
	"social-bridge/domain"
	"social-bridge/errors"
	"social-bridge/state"
)

// AdminActions is the subset of the dispatch service the console needs.
type AdminActions interface {
	BanUser(ctx context.Context, admin domain.Identity, target domain.Identity) error
}

type Console struct {
	store    *state.Store
	actions  contract.ConversationActions
	admin    AdminActions
	adminID  domain.Identity
	human    domain.Identity
	targets  map[string]domain.Identity
	in       io.Reader
	out      io.Writer
	log      *slog.Logger
	rendered int
}

func NewConsole(
	store *state.Store,
	actions contract.ConversationActions,
	admin AdminActions,
	adminID domain.Identity,
	human domain.Identity,
	targets map[string]domain.Identity,
	log *slog.Logger,
) *Console {
	return &Console{
		store:   store,
		actions: actions,
		admin:   admin,
		adminID: adminID,
		human:   human,
		targets: targets,
		in:      os.Stdin,
		out:     os.Stdout,
		log:     log,
	}
}

// Run is the foreground loop: re-render on every state refresh, and
// dispatch operator input as background tasks so a slow ledger round-trip
// never freezes the prompt.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	go c.readInput(ctx, lines)

	c.render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.store.Refresh():
			c.render()
		case line, ok := <-lines:
			if !ok {
				// stdin closed; keep rendering until the context stops us
				lines = nil
				continue
			}
			c.handle(ctx, line)
		}
	}
}

func (c *Console) readInput(ctx context.Context, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		case lines <- strings.TrimSpace(scanner.Text()):
		}
	}
}

// handle interprets one input line: "/ban <name>" is an admin action,
// anything else is sent as the human participant's message.
func (c *Console) handle(ctx context.Context, line string) {
	if line == "" {
		return
	}

	if name, ok := strings.CutPrefix(line, "/ban "); ok {
		target, known := c.targets[strings.TrimSpace(name)]
		if !known {
			c.log.Warn("Ban refused", "target", name, "error", errors.ErrUnknownIdentity)
			fmt.Fprintln(c.out, color.Red.Render("Unknown participant: "+name))
			return
		}
		go func() {
			if err := c.admin.BanUser(ctx, c.adminID, target); err != nil {
				c.log.Warn("Ban failed", "target", target.Name, "error", err)
			}
		}()
		return
	}

	go func() {
		if err := c.actions.SendText(ctx, c.human, line); err != nil {
			c.log.Warn("Message failed", "error", err)
		}
	}()
}

// render prints chat entries appended since the last call, then the
// participant status table.
func (c *Console) render() {
	snapshot := c.store.Snapshot()

	for _, entry := range snapshot.Entries[c.rendered:] {
		c.printEntry(entry.Text)
	}
	c.rendered = len(snapshot.Entries)

	if len(snapshot.Statuses) > 0 {
		c.printStatuses(snapshot)
	}
}

func (c *Console) printEntry(text string) {
	switch {
	case strings.HasPrefix(text, "[ADMIN]"):
		fmt.Fprintln(c.out, color.Red.Render(text))
	case strings.Contains(text, "sent a paid sticker"):
		fmt.Fprintln(c.out, color.Yellow.Render(text))
	case strings.Contains(text, "sent a file transfer request"):
		fmt.Fprintln(c.out, color.Cyan.Render(text))
	default:
		fmt.Fprintln(c.out, color.Green.Render(text))
	}
}

func (c *Console) printStatuses(snapshot state.Snapshot) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Participant", "Status"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for name, status := range snapshot.Statuses {
		table.Append([]string{name, statusLabel(status)})
	}
	table.Render()
}

func statusLabel(status domain.IdentityStatus) string {
	switch status {
	case domain.StatusBanned:
		return color.Red.Render("BANNED")
	case domain.StatusError:
		return color.Yellow.Render("ERROR")
	default:
		return color.Green.Render("ONLINE")
	}
}
