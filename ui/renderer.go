package ui

import (
	"fmt"
	"io"
	"social-client/domain/session"
	"strconv"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Renderer prints the session to a terminal. Each flash message is shown once.
type Renderer struct {
	mu       sync.Mutex
	out      io.Writer
	colours  bool
	rendered int
}

func NewRenderer(out io.Writer, colours bool) *Renderer {
	return &Renderer{out: out, colours: colours}
}

func (r *Renderer) Notify(state session.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rendered > len(state.FlashMessages) {
		r.rendered = 0
	}
	for _, message := range state.FlashMessages[r.rendered:] {
		line := "  " + message + "  "
		if r.colours {
			line = color.New(color.BgGreen, color.FgBlack).Render(line)
		}
		_, _ = fmt.Fprintln(r.out, line)
	}
	r.rendered = len(state.FlashMessages)

	r.table(state)
}

func (r *Renderer) table(state session.State) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.AppendBulk([][]string{
		{"Logged in", strconv.FormatBool(state.LoggedIn)},
		{"Username", orDash(state.User.UsernameValue())},
		{"Avatar", orDash(state.User.AvatarValue())},
		{"Search", openClosed(state.IsSearchOpen)},
		{"Chat", openClosed(state.IsChatOpen)},
		{"Unread chat", strconv.Itoa(state.UnreadChatCount)},
	})
	table.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func openClosed(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
