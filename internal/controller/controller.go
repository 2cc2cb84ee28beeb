package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/QuizMe/internal/dto"
	"github.com/lshigami/QuizMe/internal/model"
	"github.com/lshigami/QuizMe/internal/service"
)

type Controller struct {
	quizSvc          service.QuizService
	participationSvc service.ParticipationService
	reportSvc        service.ReportService
	pdfSvc           service.PDFService
}

func NewController(
	quizSvc service.QuizService,
	participationSvc service.ParticipationService,
	reportSvc service.ReportService,
	pdfSvc service.PDFService,
) *Controller {
	return &Controller{
		quizSvc:          quizSvc,
		participationSvc: participationSvc,
		reportSvc:        reportSvc,
		pdfSvc:           pdfSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/health", ctrl.HealthHandler)

		quizzes := api.Group("/quizzes")
		quizzes.POST("", ctrl.CreateQuizHandler)
		quizzes.GET("", ctrl.GetAllQuizzesHandler)
		quizzes.GET("/:id", ctrl.GetQuizHandler)
		quizzes.GET("/code/:code", ctrl.GetQuizByCodeHandler)
		quizzes.DELETE("/:id", ctrl.DeleteQuizHandler)
		quizzes.GET("/:id/participations", ctrl.GetQuizParticipationsHandler)

		participations := api.Group("/participations")
		participations.POST("", ctrl.StartParticipationHandler)
		participations.GET("/:id/responses", ctrl.GetParticipationResponsesHandler)
		participations.POST("/:id/submit", ctrl.SubmitParticipationHandler)
		participations.GET("/:id/pdf", ctrl.ExportPDFHandler)

		responses := api.Group("/responses")
		responses.POST("", ctrl.RecordResponseHandler)
		responses.PUT("/:id/challenge", ctrl.ChallengeResponseHandler)
	}
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateQuizHandler godoc
// @Summary Create a quiz with its questions
// @Description The server generates the shareable 6-character quiz code.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizCreateDTO true "Quiz with questions"
// @Success 201 {object} dto.QuizDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [post]
func (ctrl *Controller) CreateQuizHandler(c *gin.Context) {
	var req dto.QuizCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuizCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := ctrl.quizSvc.CreateQuiz(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// GetAllQuizzesHandler godoc
// @Summary List all quizzes
// @Tags quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (ctrl *Controller) GetAllQuizzesHandler(c *gin.Context) {
	quizzes, err := ctrl.quizSvc.GetAllQuizzes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuizHandler godoc
// @Summary Get a quiz by id with its questions
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [get]
func (ctrl *Controller) GetQuizHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	quiz, err := ctrl.quizSvc.GetQuizByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// GetQuizByCodeHandler godoc
// @Summary Get a quiz by its shareable code
// @Tags quizzes
// @Produce json
// @Param code path string true "Quiz code"
// @Success 200 {object} dto.QuizDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/code/{code} [get]
func (ctrl *Controller) GetQuizByCodeHandler(c *gin.Context) {
	quiz, err := ctrl.quizSvc.GetQuizByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// DeleteQuizHandler godoc
// @Summary Delete a quiz and its questions
// @Tags quizzes
// @Param id path int true "Quiz ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id} [delete]
func (ctrl *Controller) DeleteQuizHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.quizSvc.DeleteQuiz(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetQuizParticipationsHandler godoc
// @Summary List participations for a quiz
// @Tags participations
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {array} dto.ParticipationDTO
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{id}/participations [get]
func (ctrl *Controller) GetQuizParticipationsHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	participations, err := ctrl.quizSvc.GetParticipations(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participations)
}

// StartParticipationHandler godoc
// @Summary Start a participation
// @Tags participations
// @Accept json
// @Produce json
// @Param participation body dto.ParticipationCreateDTO true "Quiz id and participant name"
// @Success 201 {object} dto.ParticipationDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /participations [post]
func (ctrl *Controller) StartParticipationHandler(c *gin.Context) {
	var req dto.ParticipationCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ParticipationCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	participation, err := ctrl.participationSvc.Start(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, participation)
}

// GetParticipationResponsesHandler godoc
// @Summary List the responses recorded for a participation
// @Tags participations
// @Produce json
// @Param id path int true "Participation ID"
// @Success 200 {array} dto.ResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Participation not found"
// @Router /participations/{id}/responses [get]
func (ctrl *Controller) GetParticipationResponsesHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	responses, err := ctrl.participationSvc.GetResponses(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// SubmitParticipationHandler godoc
// @Summary Submit a participation and compute its final score
// @Description A participation can only be submitted once.
// @Tags participations
// @Accept json
// @Produce json
// @Param id path int true "Participation ID"
// @Param submission body dto.SubmitDTO true "Time spent in seconds"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Already submitted"
// @Failure 404 {object} dto.ErrorResponse "Participation not found"
// @Router /participations/{id}/submit [post]
func (ctrl *Controller) SubmitParticipationHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.SubmitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := ctrl.participationSvc.Submit(id, req.TimeSpent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportPDFHandler godoc
// @Summary Export a participation's results as PDF
// @Tags participations
// @Produce application/pdf
// @Param id path int true "Participation ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "Participation not found"
// @Failure 500 {object} dto.ErrorResponse "Rendering failed"
// @Router /participations/{id}/pdf [get]
func (ctrl *Controller) ExportPDFHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	report, err := ctrl.reportSvc.BuildReport(id)
	if err != nil {
		respondError(c, err)
		return
	}
	pdfBytes, err := ctrl.pdfSvc.Render(report)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quiz-%s-results.pdf", report.QuizCode))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// RecordResponseHandler godoc
// @Summary Record an answer for a participation
// @Description The answer is scored immediately; answering the same question again replaces the earlier response.
// @Tags responses
// @Accept json
// @Produce json
// @Param response body dto.ResponseCreateDTO true "Answer"
// @Success 201 {object} dto.ResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or cross-quiz answer"
// @Failure 404 {object} dto.ErrorResponse "Question or participation not found"
// @Router /responses [post]
func (ctrl *Controller) RecordResponseHandler(c *gin.Context) {
	var req dto.ResponseCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ResponseCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := ctrl.participationSvc.RecordAnswer(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// ChallengeResponseHandler godoc
// @Summary Challenge the grading of a response
// @Description Attaches a dispute reason for human review; the grading outcome is unchanged.
// @Tags responses
// @Accept json
// @Produce json
// @Param id path int true "Response ID"
// @Param challenge body dto.ChallengeDTO true "Reason"
// @Success 200 {object} dto.ResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing reason"
// @Failure 404 {object} dto.ErrorResponse "Response not found"
// @Router /responses/{id}/challenge [put]
func (ctrl *Controller) ChallengeResponseHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ChallengeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ChallengeDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	response, err := ctrl.participationSvc.Challenge(id, req.ChallengeReason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id format"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain errors to client-facing statuses. Unexpected
// errors surface as a generic 500 with no internal detail.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
