package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"quizbank-service/internal/domain"
)

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades an authenticated request to a websocket for taking the
// quiz: "quizzes" returns the current bank, "submit" grades a flat
// answer<N> payload.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		var out any
		switch inbound.Type {
		case "quizzes":
			quizzes, err := h.quizzes.List(r.Context(), p)
			if err != nil {
				out = wsError(err)
				break
			}
			out = outboundMessage[[]quizView]{Type: "quizzes", Payload: quizViews(p, quizzes)}
		case "submit":
			fields := map[string]string{}
			if len(inbound.Payload) > 0 {
				if err := json.Unmarshal(inbound.Payload, &fields); err != nil {
					out = outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "invalid submit payload"}}
					break
				}
			}
			result, err := h.quizzes.Submit(r.Context(), p, ParseAttempt(fields))
			if err != nil {
				out = wsError(err)
				break
			}
			out = outboundMessage[domain.Result]{Type: "result", Payload: result}
		default:
			out = outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}

		if err := conn.WriteJSON(out); err != nil {
			h.log.Warn("ws write error", "err", err)
			return
		}
	}
}

func wsError(err error) outboundMessage[errorPayload] {
	msg := "internal error"
	if errors.Is(err, domain.ErrAuthorizationDenied) {
		msg = "not permitted"
	}
	return outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: msg}}
}
