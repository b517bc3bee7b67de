package public

import (
	"io"
	"net/http"
	"strings"

	"github.com/cartella/internal/cache"
	"github.com/cartella/internal/events"
	"github.com/cartella/internal/http/response"

	"github.com/gin-gonic/gin"
)

// StreamEvents 以 SSE 推送存储变更事件，topics 为逗号分隔的主题过滤
func (h *Handler) StreamEvents(c *gin.Context) {
	topics := parseTopics(c.Query("topics"))
	ch, cancel := h.Bus.Subscribe(topics...)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Topic), event)
			return true
		}
	})
}

// GetLastEvent 读取 Redis 中某主题的最近一次事件
func (h *Handler) GetLastEvent(c *gin.Context) {
	topic := strings.TrimSpace(c.Query("topic"))
	if !isKnownTopic(topic) {
		respondError(c, response.CodeBadRequest, "invalid topic", nil)
		return
	}
	if !h.Redis.Enabled() {
		respondError(c, response.CodeNotFound, "event cache disabled", nil)
		return
	}
	var event events.Event
	hit, err := h.Redis.GetJSON(c.Request.Context(), cache.LastEventKey(topic), &event)
	if err != nil {
		respondError(c, response.CodeInternal, "event cache unavailable", err)
		return
	}
	if !hit {
		respondError(c, response.CodeNotFound, "no event recorded", nil)
		return
	}
	response.Success(c, event)
}

func parseTopics(raw string) []events.Topic {
	var topics []events.Topic
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if isKnownTopic(part) {
			topics = append(topics, events.Topic(part))
		}
	}
	return topics
}

func isKnownTopic(topic string) bool {
	for _, t := range events.AllTopics {
		if string(t) == topic {
			return true
		}
	}
	return false
}
