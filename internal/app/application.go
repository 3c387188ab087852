package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Rorical/niveshak/internal/chat"
	"github.com/Rorical/niveshak/internal/config"
	"github.com/Rorical/niveshak/internal/core"
	"github.com/Rorical/niveshak/internal/dispatcher"
	"github.com/Rorical/niveshak/internal/eventbus"
	"github.com/Rorical/niveshak/internal/home"
	"github.com/Rorical/niveshak/internal/notfound"
	"github.com/Rorical/niveshak/internal/router"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *zap.Logger
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.ReplyService
	model      *AppModel
}

// NewApplication wires the views behind the router. responder may be nil,
// in which case chat messages never get an answer.
func NewApplication(cfg *config.Config, responder core.Responder, logger *zap.Logger, startPath string) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(err eventbus.BusError) {
		logger.Warn("event bus error", zap.String("operation", err.Operation), zap.Error(err.Err))
	})

	disp := dispatcher.NewEventDispatcher(eb)
	service := core.NewReplyService(responder, eb, logger)

	return &Application{
		config:     cfg,
		logger:     logger,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model: &AppModel{
			router:     newRouter(cfg, service, eb, logger),
			dispatcher: disp,
			startPath:  startPath,
		},
	}
}

func newRouter(cfg *config.Config, service *core.ReplyService, eb *eventbus.EventBus, logger *zap.Logger) *router.Router {
	r := router.New(logger)

	var publisher chat.Publisher
	if service.IsReady() {
		publisher = eb
	}

	r.Handle(router.ChatPath, func() tea.Model {
		return chat.New(chat.Options{
			AssistantName: cfg.GetAssistantName(),
			Greeting:      cfg.GetGreeting(),
			Navigator:     r,
			Publisher:     publisher,
			Logger:        logger,
		})
	})

	landing := func() tea.Model {
		return home.New(r, cfg.GetAssistantName())
	}
	r.Handle(router.HomePath, landing)
	r.Handle(router.FallbackPath, landing)

	r.NotFound(func() tea.Model {
		return notfound.New(r)
	})

	return r
}

func (app *Application) Start() error {
	app.service.Start()
	app.logger.Info("starting", zap.String("path", app.model.startPath), zap.Bool("replies", app.service.IsReady()))

	p := tea.NewProgram(app.model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	_ = app.logger.Sync()
}
