package dto

import (
	"time"

	"driveincinema/internal/entity"
	"driveincinema/internal/service"

	"github.com/google/uuid"
)

type CreateQuizRequest struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

type AnswerQuizRequest struct {
	QuizID uuid.UUID `json:"quizId" validate:"required"`
	Answer string    `json:"answer" validate:"required"`
}

type AnswerQuizResponse struct {
	Correct bool `json:"correct"`
}

// QuizResponse is the public view of a quiz; it never carries the answer.
type QuizResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"createdAt"`
}

func QuizResponseFromEntity(quiz *entity.Quiz) QuizResponse {
	return QuizResponse{
		ID:        quiz.ID.String(),
		Question:  quiz.Question,
		Options:   quiz.Options,
		CreatedAt: quiz.CreatedAt,
	}
}

type DashboardResponse struct {
	Users      int64            `json:"users"`
	Products   int64            `json:"products"`
	Orders     map[string]int64 `json:"orders"`
	ActiveQuiz *QuizResponse    `json:"activeQuiz"`
}

func DashboardResponseFromSummary(summary *service.DashboardSummary) DashboardResponse {
	orders := make(map[string]int64, len(summary.Orders))
	for status, count := range summary.Orders {
		orders[string(status)] = count
	}
	response := DashboardResponse{
		Users:    summary.Users,
		Products: summary.Products,
		Orders:   orders,
	}
	if summary.ActiveQuiz != nil {
		quiz := QuizResponseFromEntity(summary.ActiveQuiz)
		response.ActiveQuiz = &quiz
	}
	return response
}
