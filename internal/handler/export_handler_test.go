package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triviahub/trivia-api/internal/domain/entity"
)

func TestExportQuestions_CSV(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("ListAll").Return([]entity.Question{
		{ID: 1, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", CategoryID: 1, Difficulty: 3},
		{ID: 2, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", CategoryID: 2, Difficulty: 3},
	}, nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodGet, "/questions/export", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, w.Body.String(), "Who discovered penicillin?")
	assert.Contains(t, w.Body.String(), "Mona Lisa")
}

func TestExportQuestions_CSV_FormulaInjectionEscaped(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("ListAll").Return([]entity.Question{
		{ID: 1, Question: "=SUM(A1:A2)", Answer: "safe", CategoryID: 1, Difficulty: 1},
	}, nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodGet, "/questions/export?format=csv", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "'=SUM(A1:A2)", "значения-формулы должны экранироваться апострофом")
}

func TestExportQuestions_XLSX(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("ListAll").Return([]entity.Question{
		{ID: 1, Question: "Q1", Answer: "A1", CategoryID: 1, Difficulty: 1},
	}, nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodGet, "/questions/export?format=xlsx", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}
