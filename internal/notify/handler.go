package notify

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
)

// webhookPayload is the slice of the LINE webhook event we care about: the
// source group id, needed once to configure LINE_GROUP_ID.
type webhookPayload struct {
	Events []struct {
		Source struct {
			GroupID string `json:"groupId"`
		} `json:"source"`
	} `json:"events"`
}

// WebhookHandler logs the group id of the first webhook event it sees.
// Operator aid: send the bot a message in the target group and read the id
// off the log.
type WebhookHandler struct {
	once sync.Once
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler() *WebhookHandler {
	return &WebhookHandler{}
}

// Routes returns the router for the LINE webhook endpoints
func (h *WebhookHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/webhook", h.Receive)
	r.Get("/webhook", h.Verify)

	return r
}

// Receive handles POST /line/webhook
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
		for _, event := range payload.Events {
			if event.Source.GroupID == "" {
				continue
			}
			h.once.Do(func() {
				slog.Info("line webhook received group id, set it as LINE_GROUP_ID",
					"groupId", event.Source.GroupID)
			})
			break
		}
	}
	w.Write([]byte("OK"))
}

// Verify handles GET /line/webhook
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("LINE Webhook is ready"))
}
