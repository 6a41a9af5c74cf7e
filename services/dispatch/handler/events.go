package handler

import (
	"github.com/sirupsen/logrus"

	"github.com/wakacab/wakacab/internal/pkg/logger"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/internal/pkg/nsq"
)

// InitEventConsumers subscribes the notification relay to ride lifecycle
// topics. Each event is turned into a structured delivery record; the
// push channel consumes those downstream.
func InitEventConsumers(cfg *models.Config, log *logger.AppLogger) ([]*nsq.Consumer, error) {
	channel := cfg.NSQ.Channel
	address := cfg.NSQ.NSQDAddress
	consumers := make([]*nsq.Consumer, 0, 3)

	requested, err := nsq.NewConsumer(models.TopicRideRequested, channel, address, func(body []byte) error {
		var event models.RideRequestedEvent
		if err := nsq.UnmarshalMessage(body, &event); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"request_id": event.RequestID,
			"ride_type":  event.RideType,
			"candidates": len(event.Candidates),
		}).Info("Notifying candidate drivers")
		return nil
	})
	if err != nil {
		return nil, err
	}
	consumers = append(consumers, requested)

	completed, err := nsq.NewConsumer(models.TopicRideCompleted, channel, address, func(body []byte) error {
		var event models.RideCompletedEvent
		if err := nsq.UnmarshalMessage(body, &event); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"ride_id":  event.RideID,
			"price":    event.Price.String(),
			"earnings": event.DriverEarnings.String(),
		}).Info("Notifying parties of completed ride")
		return nil
	})
	if err != nil {
		stopConsumers(consumers)
		return nil, err
	}
	consumers = append(consumers, completed)

	cancelled, err := nsq.NewConsumer(models.TopicRideCancelled, channel, address, func(body []byte) error {
		var event models.RideCancelledEvent
		if err := nsq.UnmarshalMessage(body, &event); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"ride_id":      event.RideID,
			"cancelled_by": event.CancelledBy,
			"reason":       event.Reason,
		}).Info("Notifying parties of cancelled ride")
		return nil
	})
	if err != nil {
		stopConsumers(consumers)
		return nil, err
	}
	consumers = append(consumers, cancelled)

	return consumers, nil
}

func stopConsumers(consumers []*nsq.Consumer) {
	for _, c := range consumers {
		c.Stop()
	}
}
