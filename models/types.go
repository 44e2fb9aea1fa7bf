package models

import (
	"github.com/danielhkuo/lotto-gen/quiz"
	"github.com/danielhkuo/lotto-gen/validate"
)

// Result kind constants
const (
	ResultBirth = "BIRTH"
	ResultPsy   = "PSY"
)

// Submission status constants
const (
	StatusIdle    = "idle"
	StatusLoading = "loading"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Request types

// Absent fields are left untouched
type BirthFieldsRequest struct {
	Name  *string `json:"name,omitempty"`
	Year  *int    `json:"year,omitempty"`
	Month *int    `json:"month,omitempty"`
	Day   *int    `json:"day,omitempty"`
}

type AnswerRequest struct {
	Value string `json:"value"`
}

// Response types

type BirthSessionResponse struct {
	ID      string              `json:"id"`
	Input   validate.BirthInput `json:"input"`
	Status  string              `json:"status"`
	Result  *LottoResult        `json:"result,omitempty"`
	Failure string              `json:"failure,omitempty"`
}

type QuizSessionResponse struct {
	ID         string          `json:"id"`
	Phase      quiz.Phase      `json:"phase"`
	Status     string          `json:"status"`
	CurrentID  int             `json:"current_id"`
	Position   int             `json:"position"`
	Total      int             `json:"total"`
	IsFirst    bool            `json:"is_first"`
	IsLast     bool            `json:"is_last"`
	Question   quiz.Question   `json:"question"`
	Questions  []quiz.Question `json:"questions"`
	Transition *TransitionInfo `json:"transition,omitempty"`
	Result     *LottoResult    `json:"result,omitempty"`
	Failure    string          `json:"failure,omitempty"`
}

// TransitionInfo tells the presenter what just happened; Animate asks for the fade cue
type TransitionInfo struct {
	Event   quiz.Event `json:"event"`
	FromID  int        `json:"from_id"`
	ToID    int        `json:"to_id"`
	Animate bool       `json:"animate"`
}

type QuestionsResponse struct {
	Questions []quiz.Question `json:"questions"`
}

// Domain types

// LottoResult is a tagged union on Type. Name and Birth are only set for BIRTH.
type LottoResult struct {
	Type    string `json:"type"`
	Numbers []int  `json:"numbers"`
	Name    string `json:"name,omitempty"`
	Birth   string `json:"birth,omitempty"`
}

func NewBirthResult(numbers []int, name, birth string) LottoResult {
	return LottoResult{
		Type:    ResultBirth,
		Numbers: append([]int(nil), numbers...),
		Name:    name,
		Birth:   birth,
	}
}

func NewPsyResult(numbers []int) LottoResult {
	return LottoResult{
		Type:    ResultPsy,
		Numbers: append([]int(nil), numbers...),
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}
