package usecase

import (
	"videau/pkg/logger"
)

const (
	EventNewVideo  = "new_video"
	EventComment   = "comment"
	EventFavourite = "favourite"
)

// notifier publishes tasks in the background. A nil publisher drops them.
type notifier struct {
	publisher EventPublisher
	logger    *logger.Logger
}

func (n *notifier) publish(task map[string]interface{}) {
	if n.publisher == nil {
		return
	}

	go func() {
		n.logger.Info("[NOTIFICATION QUEUE] Publishing %v notification task", task["type"])
		if err := n.publisher.PublishNotificationTask(task); err != nil {
			n.logger.Error("[NOTIFICATION QUEUE] Failed to publish %v notification task: %v", task["type"], err)
		}
	}()
}
