package handler

import (
	"errors"
	"net/http"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/api/response"
	"github.com/corpac/coba/internal/assistant"
)

// AssistantKeyHeader carries the caller's completion API credential.
const AssistantKeyHeader = "X-Assistant-Key"

type Assistant struct {
	svc *assistant.Service
}

func NewAssistant(svc *assistant.Service) *Assistant {
	return &Assistant{svc: svc}
}

// Start godoc
//
//	@Summary		Start a conversation
//	@Description	Opens an assistant conversation holding the greeting turn. Conversations expire after a period of inactivity.
//	@Tags			Assistant
//	@Success		201	{object}	model.Conversation
//	@Router			/assistant/conversations [post]
func (h *Assistant) Start(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusCreated, h.svc.NewConversation())
}

// Get godoc
//
//	@Summary		Get a conversation
//	@Tags			Assistant
//	@Param			id	path		string	true	"Conversation ID"
//	@Success		200	{object}	model.Conversation
//	@Failure		404	{object}	response.ErrorResponse
//	@Router			/assistant/conversations/{id} [get]
func (h *Assistant) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	conv, err := h.svc.Get(id)
	if err != nil {
		writeAssistantError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, conv)
}

// Send godoc
//
//	@Summary		Send a message
//	@Description	Appends the user turn and the assistant's answer. When the completion API fails a fallback answer is appended and the reply carries fallback=true with the error; the status is still 200.
//	@Tags			Assistant
//	@Param			id				path		string				true	"Conversation ID"
//	@Param			X-Assistant-Key	header		string				false	"Completion API key; the server key is used when absent"
//	@Param			body			body		request.SendMessage	true	"Message"
//	@Success		200				{object}	model.Reply
//	@Failure		400				{object}	response.ErrorResponse
//	@Failure		404				{object}	response.ErrorResponse
//	@Router			/assistant/conversations/{id}/messages [post]
func (h *Assistant) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req request.SendMessage
	if err := request.Decode(r, &req); err != nil {
		response.WriteDecodeError(w, err)
		return
	}

	reply, err := h.svc.Send(r.Context(), id, r.Header.Get(AssistantKeyHeader), req.Content)
	if err != nil {
		writeAssistantError(w, r, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, reply)
}

func writeAssistantError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, assistant.ErrNotFound):
		response.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, assistant.ErrEmptyMessage):
		response.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		response.WriteServiceError(w, r, err)
	}
}
