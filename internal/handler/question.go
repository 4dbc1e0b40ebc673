package handler

import (
	"strconv"

	"github.com/eslam-aboutaleb/Interview-Helper-Agent/internal/generator"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/model"
	"github.com/eslam-aboutaleb/Interview-Helper-Agent/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateQuestions runs the AI generation pipeline and returns the
// persisted batch. Upstream failures never surface here; the fallback
// absorbs them.
func (h *Handler) GenerateQuestions(c *gin.Context) {
	var req generator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if req.Count == 0 {
		req.Count = h.DefaultCount
	}
	if req.QuestionType == "" {
		req.QuestionType = model.QuestionTypeMixed
	}

	questions, err := h.Generator.Generate(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("generate_questions: generation failed",
			zap.String("job_title", req.JobTitle),
			zap.Int("count", req.Count),
			zap.Error(err),
		)
		h.respondErr(c, err)
		return
	}

	h.Logger.Info("generate_questions: batch persisted",
		zap.String("job_title", req.JobTitle),
		zap.Int("count", len(questions)),
	)
	h.invalidateStats(c.Request.Context())

	response.Created(c, questions)
}

// CreateQuestion creates a single question manually
func (h *Handler) CreateQuestion(c *gin.Context) {
	var req model.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	created, err := h.Questions.CreateQuestion(c.Request.Context(), &model.Question{
		JobTitle:     req.JobTitle,
		QuestionText: req.QuestionText,
		QuestionType: req.QuestionType,
		Difficulty:   req.DifficultyOrDefault(),
		Tags:         pkg.NormalizeTags(req.Tags),
	})
	if err != nil {
		h.Logger.Error("create_question: failed to create",
			zap.String("job_title", req.JobTitle),
			zap.Error(err),
		)
		h.respondErr(c, err)
		return
	}

	h.Logger.Info("create_question: question created",
		zap.Int64("question_id", created.ID),
	)
	h.invalidateStats(c.Request.Context())

	response.Created(c, created)
}

// ListQuestions returns a filtered page of questions in creation order
func (h *Handler) ListQuestions(c *gin.Context) {
	var query model.ListQuestionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	if err := query.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	questions, total, err := h.Questions.ListQuestions(c.Request.Context(), query)
	if err != nil {
		h.Logger.Error("list_questions: failed to fetch", zap.Error(err))
		h.respondErr(c, err)
		return
	}

	response.OKWithMeta(c, questions, &response.Meta{
		Skip:    query.Skip,
		Limit:   query.Limit,
		Total:   total,
		HasNext: query.Skip+len(questions) < total,
	})
}

func (h *Handler) GetQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	question, err := h.Questions.GetQuestionByID(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	response.OK(c, question)
}

// UpdateQuestion applies a partial update to the curation fields
func (h *Handler) UpdateQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	updated, err := h.Questions.UpdateQuestion(c.Request.Context(), id, req.Updates())
	if err != nil {
		h.Logger.Error("update_question: failed to update",
			zap.Int64("question_id", id),
			zap.Error(err),
		)
		h.respondErr(c, err)
		return
	}

	h.Logger.Info("update_question: question updated",
		zap.Int64("question_id", id),
	)
	h.invalidateStats(c.Request.Context())

	response.OK(c, updated)
}

// DeleteQuestion deletes a question, cascading to its ratings and set
// memberships
func (h *Handler) DeleteQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.Questions.DeleteQuestion(c.Request.Context(), id); err != nil {
		h.Logger.Error("delete_question: failed to delete",
			zap.Int64("question_id", id),
			zap.Error(err),
		)
		h.respondErr(c, err)
		return
	}

	h.Logger.Info("delete_question: question deleted",
		zap.Int64("question_id", id),
	)
	h.invalidateStats(c.Request.Context())

	response.Message(c, "question deleted successfully")
}

// ListJobTitles returns the distinct job titles seen across questions
func (h *Handler) ListJobTitles(c *gin.Context) {
	titles, err := h.Questions.DistinctJobTitles(c.Request.Context())
	if err != nil {
		h.Logger.Error("list_job_titles: failed to fetch", zap.Error(err))
		h.respondErr(c, err)
		return
	}

	response.OK(c, titles)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	idStr := c.Param(name)
	if idStr == "" {
		response.BadRequest(c, name+" is required")
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name+" format")
		return 0, false
	}
	return id, true
}
