// Package router mounts one view at a time by path. Views receive the
// router as their Navigator and request navigation by returning the
// command produced by Navigate.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	ChatPath     = "/chat"
	HomePath     = "/home"
	FallbackPath = "/silver"
)

// Navigator requests a route change.
type Navigator interface {
	Navigate(path string) tea.Cmd
}

// NavigateMsg asks the router to mount the view registered for Path.
type NavigateMsg struct {
	Path string
}

// MountFunc creates a fresh view each time its route is entered.
type MountFunc func() tea.Model

type Router struct {
	routes   map[string]MountFunc
	notFound MountFunc
	active   tea.Model
	location string
	size     *tea.WindowSizeMsg
	logger   *zap.Logger
}

func New(logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		routes: make(map[string]MountFunc),
		logger: logger.Named("router"),
	}
}

// Handle registers the view mounted for path.
func (r *Router) Handle(path string, mount MountFunc) {
	r.routes[path] = mount
}

// NotFound registers the view mounted for unknown paths.
func (r *Router) NotFound(mount MountFunc) {
	r.notFound = mount
}

func (r *Router) Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// Location returns the path of the mounted view.
func (r *Router) Location() string {
	return r.location
}

// Active returns the mounted view.
func (r *Router) Active() tea.Model {
	return r.active
}

func (r *Router) Init() tea.Cmd {
	return nil
}

func (r *Router) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return r, tea.Quit
		}
	case tea.WindowSizeMsg:
		r.size = &msg
	case NavigateMsg:
		return r, r.mount(msg.Path)
	}

	if r.active == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.active, cmd = r.active.Update(msg)
	return r, cmd
}

func (r *Router) View() string {
	if r.active == nil {
		return ""
	}
	return r.active.View()
}

func (r *Router) mount(path string) tea.Cmd {
	mount, ok := r.routes[path]
	if !ok {
		r.logger.Info("no route", zap.String("path", path))
		mount = r.notFound
	}
	if mount == nil {
		return nil
	}

	r.logger.Debug("navigate", zap.String("from", r.location), zap.String("to", path))
	r.location = path

	view := mount()
	cmds := []tea.Cmd{view.Init()}
	if r.size != nil {
		var cmd tea.Cmd
		view, cmd = view.Update(*r.size)
		cmds = append(cmds, cmd)
	}
	r.active = view

	return tea.Batch(cmds...)
}
