package handler

import (
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateQuestionSet builds a named, ordered set from existing
// questions; creation is all-or-nothing.
func (h *Handler) CreateQuestionSet(c *gin.Context) {
	var req model.CreateQuestionSetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	created, err := h.Sets.CreateQuestionSet(c.Request.Context(), &model.QuestionSet{
		Name:        req.Name,
		Description: req.Description,
		JobTitle:    req.JobTitle,
		QuestionIDs: req.QuestionIDs,
	})
	if err != nil {
		h.Logger.Error("create_question_set: failed to create",
			zap.String("name", req.Name),
			zap.Error(err),
		)
		h.respondErr(c, err)
		return
	}

	h.Logger.Info("create_question_set: set created",
		zap.Int64("set_id", created.ID),
		zap.Int("members", len(created.QuestionIDs)),
	)
	h.invalidateStats(c.Request.Context())

	response.Created(c, created)
}

func (h *Handler) GetQuestionSet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	set, err := h.Sets.GetQuestionSetByID(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	response.OK(c, set)
}

// ListQuestionSets returns sets in creation order
func (h *Handler) ListQuestionSets(c *gin.Context) {
	var query model.ListQuestionSetsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	if err := query.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	sets, total, err := h.Sets.ListQuestionSets(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		h.Logger.Error("list_question_sets: failed to fetch", zap.Error(err))
		h.respondErr(c, err)
		return
	}

	response.OKWithMeta(c, sets, &response.Meta{
		Skip:    query.Skip,
		Limit:   query.Limit,
		Total:   total,
		HasNext: query.Skip+len(sets) < total,
	})
}

// DeleteQuestionSet removes a set; member questions are untouched
func (h *Handler) DeleteQuestionSet(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.Sets.DeleteQuestionSet(c.Request.Context(), id); err != nil {
		h.Logger.Error("delete_question_set: failed to delete",
			zap.Int64("set_id", id),
			zap.Error(err),
		)
		h.respondErr(c, err)
		return
	}

	h.Logger.Info("delete_question_set: set deleted",
		zap.Int64("set_id", id),
	)
	h.invalidateStats(c.Request.Context())

	response.Message(c, "question set deleted successfully")
}
