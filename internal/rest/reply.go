package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forumapi/go-clean-forum/domain"
	"github.com/forumapi/go-clean-forum/internal/rest/request"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

func (h *replyHandler) CreateReply(c *gin.Context) {
	var req request.Reply
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	threadID := c.Param("threadId")
	commentID := c.Param("commentId")

	ctx := c.Request.Context()
	created, err := h.Service.AddReply(ctx, threadID, commentID, userID.(string), req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"added_reply": created})
}

func (h *replyHandler) DeleteReply(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	threadID := c.Param("threadId")
	commentID := c.Param("commentId")
	replyID := c.Param("replyId")

	ctx := c.Request.Context()
	if err := h.Service.DeleteReply(ctx, threadID, commentID, replyID, userID.(string)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reply deleted successfully"})
}
