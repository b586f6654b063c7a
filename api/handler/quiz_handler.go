package handler

import (
	"context"
	"net/http"

	"driveincinema/internal/dto"
	"driveincinema/internal/entity"
	"driveincinema/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type QuizService interface {
	Activate(ctx context.Context, actor service.Actor, input service.QuizInput) (*entity.Quiz, error)
	Active(ctx context.Context) (*entity.Quiz, error)
	Answer(ctx context.Context, quizID uuid.UUID, answer string) (bool, error)
}

type QuizHandler struct {
	Service  QuizService
	Validate *validator.Validate
}

func NewQuizHandler(svc QuizService, validate *validator.Validate) *QuizHandler {
	return &QuizHandler{Service: svc, Validate: validate}
}

func (h *QuizHandler) Activate(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return unauthorized(c)
	}
	var req dto.CreateQuizRequest
	if err := bind(c, h.Validate, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	quiz, err := h.Service.Activate(c.Request().Context(), actor, service.QuizInput{
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) Active(c echo.Context) error {
	quiz, err := h.Service.Active(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.QuizResponseFromEntity(quiz))
}

func (h *QuizHandler) Answer(c echo.Context) error {
	var req dto.AnswerQuizRequest
	if err := bind(c, h.Validate, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	correct, err := h.Service.Answer(c.Request().Context(), req.QuizID, req.Answer)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AnswerQuizResponse{Correct: correct})
}
