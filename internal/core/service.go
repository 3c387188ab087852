package core

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Rorical/niveshak/internal/eventbus"
)

// ReplyService answers chat submissions. Without a Responder it is not
// ready, never starts its loop, and no reply is ever produced.
type ReplyService struct {
	responder Responder
	eventBus  *eventbus.EventBus
	logger    *zap.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

func NewReplyService(responder Responder, eb *eventbus.EventBus, logger *zap.Logger) *ReplyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &ReplyService{
		responder: responder,
		eventBus:  eb,
		logger:    logger.Named("reply"),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (rs *ReplyService) IsReady() bool {
	return rs.responder != nil
}

// Start runs the service loop in a goroutine
func (rs *ReplyService) Start() {
	if !rs.IsReady() {
		rs.logger.Info("no responder configured; replies disabled")
		return
	}

	rs.wg.Add(1)
	go rs.eventLoop()
}

// Stop cancels in-flight replies and waits for the loop to exit.
func (rs *ReplyService) Stop() {
	rs.cancel()
	rs.wg.Wait()
}

func (rs *ReplyService) eventLoop() {
	defer rs.wg.Done()

	for {
		select {
		case <-rs.ctx.Done():
			return
		case event, ok := <-rs.eventBus.UIToCore():
			if !ok {
				return
			}
			rs.handleUIEvent(event)
		}
	}
}

func (rs *ReplyService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitEvent:
		rs.processSubmit(e)
	}
}

func (rs *ReplyService) processSubmit(e eventbus.SubmitEvent) {
	log := rs.logger.With(zap.String("session", e.SessionID), zap.Int("message_id", e.MessageID))
	log.Debug("requesting reply", zap.Int("history", len(e.History)))

	content, err := rs.responder.Reply(rs.ctx, e.History)
	if rs.ctx.Err() != nil {
		return
	}
	if err != nil {
		log.Error("reply failed", zap.Error(err))
	}

	reply := eventbus.ReplyEvent{
		SessionID: e.SessionID,
		ReplyTo:   e.MessageID,
		Content:   content,
		Err:       err,
	}
	if err := rs.eventBus.SendToUI(reply); err != nil {
		log.Warn("failed to deliver reply", zap.Error(err))
	}
}
