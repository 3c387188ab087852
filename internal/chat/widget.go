// Package chat implements the chat widget: an in-memory transcript seeded
// with an assistant greeting, an input buffer, and a pending-reply flag.
package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/qmuntal/stateless"
	"go.uber.org/zap"

	"github.com/Rorical/niveshak/internal/dispatcher"
	"github.com/Rorical/niveshak/internal/eventbus"
	"github.com/Rorical/niveshak/internal/models"
	"github.com/Rorical/niveshak/internal/router"
	"github.com/Rorical/niveshak/ui/components"
	"github.com/Rorical/niveshak/ui/styles"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	inputHeight   = 3
	// header (2) + framed input (inputHeight + 2) + status (1)
	chromeHeight = 2 + inputHeight + 2 + 1
)

// Publisher forwards submissions to whatever produces replies.
type Publisher interface {
	SendToCore(event eventbus.UIEvent) error
}

type Options struct {
	AssistantName string
	Greeting      string
	Navigator     router.Navigator
	Publisher     Publisher // nil when no assistant backend is configured
	Logger        *zap.Logger
	Now           func() time.Time
}

// Widget owns its transcript exclusively; other components only see
// copies returned by Messages.
type Widget struct {
	sessionID  string
	assistant  string
	transcript *Transcript
	machine    *stateless.StateMachine
	pending    int
	lastErr    error

	input    textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	markdown *glamour.TermRenderer
	rendered string

	nav       router.Navigator
	publisher Publisher
	logger    *zap.Logger
	width     int
	height    int
}

func New(opts Options) *Widget {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sessionID := uuid.NewString()

	ta := textarea.New()
	ta.Placeholder = "Message " + opts.AssistantName + "..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 4096
	ta.SetHeight(inputHeight)
	ta.KeyMap.InsertNewline = key.NewBinding(
		key.WithKeys("alt+enter", "ctrl+j"),
		key.WithHelp("alt+enter", "new line"),
	)
	ta.Focus()

	w := &Widget{
		sessionID:  sessionID,
		assistant:  opts.AssistantName,
		transcript: NewTranscript(opts.Greeting, opts.Now),
		machine:    newReplyMachine(),
		input:      ta,
		viewport:   viewport.New(defaultWidth, defaultHeight-chromeHeight),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.SpinnerStyle())),
		nav:        opts.Navigator,
		publisher:  opts.Publisher,
		logger:     logger.Named("chat").With(zap.String("session", sessionID)),
	}
	w.SetSize(defaultWidth, defaultHeight)
	w.logger.Info("chat session started", zap.Bool("replies", w.publisher != nil))

	return w
}

// Submit appends text as a user message, clears the input buffer and
// marks a reply as pending. Whitespace-only text is ignored.
func (w *Widget) Submit(text string) tea.Cmd {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	wasIdle := !w.Loading()
	msg := w.transcript.Append(models.User, text)
	w.input.Reset()
	w.pending++
	w.lastErr = nil
	w.fire(TriggerSubmit)
	w.logger.Debug("user message", zap.Int("id", msg.ID), zap.Int("length", len(text)))

	w.publish(msg)
	w.scrollToNewest()

	if wasIdle && w.Loading() {
		return w.spinner.Tick
	}
	return nil
}

// OnKeySubmit submits the input buffer on a plain Enter. Enter combined
// with Alt is left to the text area, which inserts a line break.
func (w *Widget) OnKeySubmit(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.Type != tea.KeyEnter || msg.Alt {
		return false, nil
	}
	return true, w.Submit(w.input.Value())
}

// Close leaves the chat for the home route.
func (w *Widget) Close() tea.Cmd {
	if w.nav == nil {
		return nil
	}
	w.logger.Info("chat session closed", zap.Int("messages", w.transcript.Len()))
	return w.nav.Navigate(router.HomePath)
}

// HandleReply appends the assistant's answer. Replies addressed to other
// sessions, or arriving when nothing is pending, are dropped.
func (w *Widget) HandleReply(reply eventbus.ReplyEvent) tea.Cmd {
	if reply.SessionID != w.sessionID || w.pending == 0 {
		w.logger.Debug("dropping reply", zap.String("reply_session", reply.SessionID), zap.Int("pending", w.pending))
		return nil
	}

	w.pending--
	trigger := TriggerReply
	if reply.Err != nil {
		w.lastErr = reply.Err
		trigger = TriggerReplyFailed
	} else {
		w.transcript.Append(models.Assistant, reply.Content)
	}

	if w.pending == 0 {
		w.fire(trigger)
	}
	w.scrollToNewest()
	return nil
}

func (w *Widget) Messages() []models.Message {
	return w.transcript.Messages()
}

// Loading reports whether a reply is pending.
func (w *Widget) Loading() bool {
	return w.State() == StateAwaitingReply
}

func (w *Widget) State() string {
	state, _ := w.machine.MustState().(string)
	return state
}

func (w *Widget) Input() string {
	return w.input.Value()
}

func (w *Widget) SetInput(text string) {
	w.input.SetValue(text)
}

func (w *Widget) SessionID() string {
	return w.sessionID
}

func (w *Widget) Err() error {
	return w.lastErr
}

func (w *Widget) SetSize(width, height int) {
	w.width = width
	w.height = height

	w.input.SetWidth(max(width-6, 10))
	w.viewport.Width = width
	w.viewport.Height = max(height-chromeHeight, 1)

	md, err := components.NewMarkdownRenderer(max(width*4/5-4, 20))
	if err != nil {
		w.logger.Warn("markdown renderer unavailable", zap.Error(err))
		md = nil
	}
	w.markdown = md
	w.scrollToNewest()
}

func (w *Widget) Init() tea.Cmd {
	return textarea.Blink
}

func (w *Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.SetSize(msg.Width, msg.Height)
		return w, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return w, w.Close()
		}
		if handled, cmd := w.OnKeySubmit(msg); handled {
			return w, cmd
		}
		switch msg.Type {
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			w.viewport, cmd = w.viewport.Update(msg)
			return w, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		w.viewport, cmd = w.viewport.Update(msg)
		return w, cmd

	case dispatcher.CoreEventMsg:
		if reply, ok := msg.Event.(eventbus.ReplyEvent); ok {
			return w, w.HandleReply(reply)
		}
		return w, nil

	case spinner.TickMsg:
		if !w.Loading() {
			return w, nil
		}
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		w.refresh(false)
		return w, cmd
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *Widget) View() string {
	var b strings.Builder

	b.WriteString(components.RenderHeader(w.assistant, w.width))
	b.WriteString("\n")
	b.WriteString(w.viewport.View())
	b.WriteString("\n")
	b.WriteString(components.RenderInput(w.input.View(), w.width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(w.statusLine(), w.lastErr != nil, w.width))

	return b.String()
}

func (w *Widget) statusLine() string {
	switch {
	case w.lastErr != nil:
		return "Error: " + w.lastErr.Error()
	case w.Loading():
		return "Waiting for " + w.assistant + " · esc to close"
	default:
		return "enter send · alt+enter new line · esc close"
	}
}

func (w *Widget) publish(msg models.Message) {
	if w.publisher == nil {
		return
	}

	err := w.publisher.SendToCore(eventbus.SubmitEvent{
		SessionID: w.sessionID,
		MessageID: msg.ID,
		History:   w.transcript.Messages(),
	})
	if err == nil {
		return
	}

	// Nothing will answer this message.
	w.logger.Error("failed to publish message", zap.Int("id", msg.ID), zap.Error(err))
	w.lastErr = err
	w.pending--
	if w.pending == 0 {
		w.fire(TriggerReplyFailed)
	}
}

func (w *Widget) fire(trigger string) {
	if err := w.machine.Fire(trigger); err != nil {
		w.logger.Error("reply state transition", zap.String("trigger", trigger), zap.Error(err))
	}
}

// scrollToNewest re-renders the transcript and moves the viewport to the
// newest message.
func (w *Widget) scrollToNewest() {
	w.rendered = components.RenderMessages(w.transcript.Messages(), w.width, w.markdown)
	w.refresh(true)
}

func (w *Widget) refresh(bottom bool) {
	content := w.rendered
	if w.Loading() {
		content += components.RenderTyping(w.assistant, w.spinner.View())
	}
	w.viewport.SetContent(content)
	if bottom {
		w.viewport.GotoBottom()
	}
}
