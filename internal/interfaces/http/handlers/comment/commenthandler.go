// Package comment exposes the ticket comment endpoints, including the SSE
// live feed.
package comment

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	commentdto "guildesk/internal/application/comment/dto"
	"guildesk/internal/application/comment/usecases"
	"guildesk/internal/shared/constants"
	"guildesk/internal/shared/logger"
	"guildesk/internal/shared/utils"
)

// sseKeepaliveInterval is the interval for sending keepalive comments on the
// stream endpoint.
const sseKeepaliveInterval = 30 * time.Second

type AddCommentRequest struct {
	Content       string `json:"content" binding:"required,max=5000"`
	AttachmentURL string `json:"attachment_url" binding:"omitempty,max=500"`
}

type CommentHandler struct {
	addCommentUC        usecases.AddCommentExecutor
	listCommentsUC      usecases.ListCommentsExecutor
	subscribeCommentsUC usecases.SubscribeCommentsExecutor
	logger              logger.Interface
}

func NewCommentHandler(
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	subscribeCommentsUC usecases.SubscribeCommentsExecutor,
) *CommentHandler {
	return &CommentHandler{
		addCommentUC:        addCommentUC,
		listCommentsUC:      listCommentsUC,
		subscribeCommentsUC: subscribeCommentsUC,
		logger:              logger.NewLogger(),
	}
}

// AddComment handles POST /tickets/:id/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddCommentCommand{
		TicketID:      ticketID,
		AuthorID:      c.GetUint(constants.ContextKeyUserID),
		Content:       req.Content,
		AttachmentURL: req.AttachmentURL,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /tickets/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// StreamComments handles GET /tickets/:id/comments/stream as an SSE feed.
// The full comment list is sent on connect and again after every change.
func (h *CommentHandler) StreamComments(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable Nginx buffering

	// Each delivery is the full list, so only the latest snapshot matters:
	// a pending older one is dropped instead of queued. The callback never
	// blocks, which the feed hub requires.
	updates := make(chan []commentdto.CommentDTO, 1)
	onUpdate := func(comments []commentdto.CommentDTO) {
		for {
			select {
			case updates <- comments:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	}

	sub, err := h.subscribeCommentsUC.Execute(c.Request.Context(), usecases.SubscribeCommentsCommand{
		TicketID: ticketID,
		OnUpdate: onUpdate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer sub.Unsubscribe()

	keepAliveTicker := time.NewTicker(sseKeepaliveInterval)
	defer keepAliveTicker.Stop()

	ctx := c.Request.Context()
	userID := c.GetUint(constants.ContextKeyUserID)

	for {
		select {
		case <-ctx.Done():
			h.logger.Infow("comment stream closed by client",
				"ticket_id", ticketID,
				"user_id", userID,
			)
			return

		case comments := <-updates:
			payload, err := json.Marshal(comments)
			if err != nil {
				h.logger.Errorw("failed to marshal comment feed payload",
					"ticket_id", ticketID,
					"error", err,
				)
				continue
			}
			if _, err := c.Writer.WriteString("event: comments\ndata: " + string(payload) + "\n\n"); err != nil {
				h.logger.Warnw("comment stream write error",
					"ticket_id", ticketID,
					"error", err,
				)
				return
			}
			c.Writer.Flush()

		case <-keepAliveTicker.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				h.logger.Warnw("comment stream keepalive error",
					"ticket_id", ticketID,
					"error", err,
				)
				return
			}
			c.Writer.Flush()
		}
	}
}
