package handler

import (
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateQuestion records one immutable feedback rating. Ratings are
// decoupled from difficulty and never modify the question.
func (h *Handler) RateQuestion(c *gin.Context) {
	var req model.CreateRatingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	created, err := h.Ratings.CreateRating(c.Request.Context(), &model.Rating{
		QuestionID: req.QuestionID,
		Rating:     req.Rating,
		Feedback:   req.Feedback,
	})
	if err != nil {
		h.Logger.Error("rate_question: failed to create rating",
			zap.Int64("question_id", req.QuestionID),
			zap.Error(err),
		)
		h.respondErr(c, err)
		return
	}

	h.Logger.Info("rate_question: rating recorded",
		zap.Int64("question_id", req.QuestionID),
		zap.Float64("rating", req.Rating),
	)

	response.Created(c, created)
}
