package gateway

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/wakacab/wakacab/internal/pkg/logger"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/internal/pkg/nsq"
	"github.com/wakacab/wakacab/services/dispatch"
)

type dispatchGW struct {
	cfg      *models.Config
	producer *nsq.Producer
	log      *logger.AppLogger
}

// NewDispatchGW creates the ride event publisher. A nil producer
// disables publishing, which keeps local runs working without NSQ.
func NewDispatchGW(cfg *models.Config, producer *nsq.Producer, log *logger.AppLogger) dispatch.DispatchGW {
	return &dispatchGW{cfg: cfg, producer: producer, log: log}
}

func (g *dispatchGW) publish(topic string, event interface{}) {
	if g.producer == nil || !g.cfg.NSQ.PublishEnabled {
		return
	}
	if err := g.producer.Publish(topic, event); err != nil {
		g.log.WithFields(logrus.Fields{
			"topic": topic,
			"error": err.Error(),
		}).Warn("Failed to publish ride event")
	}
}

func (g *dispatchGW) PublishRideRequested(_ context.Context, event models.RideRequestedEvent) {
	g.publish(models.TopicRideRequested, event)
}

func (g *dispatchGW) PublishRideRequestExpired(_ context.Context, event models.RideRequestedEvent) {
	g.publish(models.TopicRideRequestExpired, event)
}

func (g *dispatchGW) PublishRideAccepted(_ context.Context, event models.RideEvent) {
	g.publish(models.TopicRideAccepted, event)
}

func (g *dispatchGW) PublishRideStatusChanged(_ context.Context, event models.RideEvent) {
	g.publish(models.TopicRideStatusChanged, event)
}

func (g *dispatchGW) PublishRideCompleted(_ context.Context, event models.RideCompletedEvent) {
	g.publish(models.TopicRideCompleted, event)
}

func (g *dispatchGW) PublishRideCancelled(_ context.Context, event models.RideCancelledEvent) {
	g.publish(models.TopicRideCancelled, event)
}
