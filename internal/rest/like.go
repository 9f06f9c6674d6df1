package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forumapi/go-clean-forum/domain"
)

type likeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *likeHandler {
	return &likeHandler{
		Service: svc,
	}
}

// ToggleLike likes the comment if the caller has not liked it yet and
// unlikes it otherwise
func (h *likeHandler) ToggleLike(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	threadID := c.Param("threadId")
	commentID := c.Param("commentId")

	ctx := c.Request.Context()
	liked, err := h.Service.ToggleLike(ctx, threadID, commentID, userID.(string))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_liked": liked})
}
