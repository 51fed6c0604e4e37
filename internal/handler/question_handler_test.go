package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/triviahub/trivia-api/internal/domain/entity"
	"github.com/triviahub/trivia-api/internal/middleware"
	apperrors "github.com/triviahub/trivia-api/internal/pkg/errors"
	"github.com/triviahub/trivia-api/internal/service"
)

// ============================================================================
// Моки репозиториев (дублируют моки сервисного пакета: пакеты тестируются
// независимо)
// ============================================================================

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListPage(offset, limit int) ([]entity.Question, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListPageByCategory(categoryID uint, offset, limit int) ([]entity.Question, error) {
	args := m.Called(categoryID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) CountByCategory(categoryID uint) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) SearchByText(term string) ([]entity.Question, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetRandomUnseen(categoryID uint, excludeIDs []uint) (*entity.Question, error) {
	args := m.Called(categoryID, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListAll() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

// MockCategoryRepository реализует repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

// newTestRouter собирает роутер с теми же маршрутами, что и cmd/api
func newTestRouter(questionRepo *MockQuestionRepository, categoryRepo *MockCategoryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	categoryService := service.NewCategoryService(categoryRepo)
	questionService := service.NewQuestionService(questionRepo)
	quizService := service.NewQuizService(questionRepo)

	categoryHandler := NewCategoryHandler(categoryService)
	questionHandler := NewQuestionHandler(questionService, categoryService)
	quizHandler := NewQuizHandler(quizService)

	router := gin.New()
	router.GET("/categories", categoryHandler.GetCategories)
	router.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		questionHandler.GetQuestionsByCategory)
	router.GET("/questions", questionHandler.GetQuestions)
	router.POST("/questions", questionHandler.CreateQuestion)
	router.POST("/questions/search", questionHandler.SearchQuestions)
	router.GET("/questions/export", questionHandler.ExportQuestions)
	router.DELETE("/questions/:id",
		middleware.ExtractUintParam("id", "questionID"),
		questionHandler.DeleteQuestion)
	router.POST("/quizzes", quizHandler.NextQuestion)
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// assertErrorEnvelope проверяет единый конверт ошибки {success, error, message}
func assertErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, code int) {
	t.Helper()
	assert.Equal(t, code, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(code), body["error"])
	assert.NotEmpty(t, body["message"])
}

func seedCategories(categoryRepo *MockCategoryRepository) {
	categoryRepo.On("GetAll").Return([]entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}, nil)
}

// ============================================================================
// GET /categories
// ============================================================================

func TestGetCategories(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	seedCategories(categoryRepo)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodGet, "/categories", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	categories := body["categories"].(map[string]interface{})
	assert.Equal(t, "Science", categories["1"])
	assert.Equal(t, "Art", categories["2"])
}

func TestGetCategories_EmptyTable(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	categoryRepo.On("GetAll").Return([]entity.Category{}, nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodGet, "/categories", "")

	assertErrorEnvelope(t, w, http.StatusNotFound)
}

// ============================================================================
// GET /questions
// ============================================================================

func TestGetQuestions(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	seedCategories(categoryRepo)
	questionRepo.On("ListPage", 0, service.QuestionsPerPage).Return([]entity.Question{
		{ID: 1, Question: "Q1", Answer: "A1", CategoryID: 1, Difficulty: 2},
		{ID: 2, Question: "Q2", Answer: "A2", CategoryID: 2, Difficulty: 3},
	}, nil)
	questionRepo.On("Count").Return(int64(2), nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodGet, "/questions", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["total_questions"])
	assert.Len(t, body["questions"], 2)
	assert.Contains(t, body, "categories")

	// Форма вопроса: {id, question, answer, category, difficulty}
	first := body["questions"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Q1", first["question"])
	assert.Equal(t, "A1", first["answer"])
	assert.Equal(t, float64(1), first["category"])
	assert.Equal(t, float64(2), first["difficulty"])
}

func TestGetQuestions_PageBeyondRange(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("ListPage", 9990, service.QuestionsPerPage).Return([]entity.Question{}, nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodGet, "/questions?page=1000", "")

	assertErrorEnvelope(t, w, http.StatusNotFound)
}

func TestGetQuestions_NonNumericPage(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodGet, "/questions?page=abc", "")

	assertErrorEnvelope(t, w, http.StatusBadRequest)
}

// ============================================================================
// GET /categories/:id/questions
// ============================================================================

func TestGetQuestionsByCategory(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("ListPageByCategory", uint(2), 0, service.QuestionsPerPage).Return([]entity.Question{
		{ID: 5, Question: "Q5", Answer: "A5", CategoryID: 2, Difficulty: 1},
	}, nil)
	questionRepo.On("CountByCategory", uint(2)).Return(int64(1), nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodGet, "/categories/2/questions", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["current_category"])
	assert.Equal(t, float64(1), body["total_questions"])
	// Карта категорий в ответах по категории не возвращается
	assert.NotContains(t, body, "categories")
}

func TestGetQuestionsByCategory_NonNumericID(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodGet, "/categories/science/questions", "")

	assertErrorEnvelope(t, w, http.StatusBadRequest)
}

// ============================================================================
// POST /questions
// ============================================================================

func TestCreateQuestion(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("Create", mock.AnythingOfType("*entity.Question")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*entity.Question).ID = 24
		}).
		Return(nil)
	questionRepo.On("Count").Return(int64(20), nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodPost, "/questions",
		`{"question": "Q1", "answer": "A1", "category": 1, "difficulty": 2}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(24), body["created"])
	assert.Equal(t, float64(20), body["total_questions"])
}

func TestCreateQuestion_CategoryAsString(t *testing.T) {
	// Исторический фронтенд шлёт category то числом, то строкой
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("Create", mock.MatchedBy(func(q *entity.Question) bool {
		return q.CategoryID == 3 && q.Difficulty == 4
	})).Return(nil)
	questionRepo.On("Count").Return(int64(20), nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodPost, "/questions",
		`{"question": "Q1", "answer": "A1", "category": "3", "difficulty": "4"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	questionRepo.AssertExpectations(t)
}

func TestCreateQuestion_NonNumericCategory(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodPost, "/questions",
		`{"question": "Q1", "answer": "A1", "category": "science", "difficulty": 2}`)

	assertErrorEnvelope(t, w, http.StatusBadRequest)
	questionRepo.AssertNotCalled(t, "Create")
}

func TestCreateQuestion_MissingField(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodPost, "/questions",
		`{"question": "Q1", "category": 1, "difficulty": 2}`)

	assertErrorEnvelope(t, w, http.StatusBadRequest)
	questionRepo.AssertNotCalled(t, "Create")
}

func TestCreateQuestion_EmptyQuestionText(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodPost, "/questions",
		`{"question": "", "answer": "A1", "category": 1, "difficulty": 2}`)

	// Поле есть, но текст пустой — семантическая ошибка, 422
	assertErrorEnvelope(t, w, http.StatusUnprocessableEntity)
	questionRepo.AssertNotCalled(t, "Create")
}

func TestCreateQuestion_MalformedJSON(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodPost, "/questions", `{"question": `)

	assertErrorEnvelope(t, w, http.StatusBadRequest)
}

// ============================================================================
// DELETE /questions/:id
// ============================================================================

func TestDeleteQuestion(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("Delete", uint(5)).Return(nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodDelete, "/questions/5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(5), body["deleted"])
}

func TestDeleteQuestion_NotFound(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("Delete", uint(9999)).Return(apperrors.ErrNotFound)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodDelete, "/questions/9999", "")

	assertErrorEnvelope(t, w, http.StatusNotFound)
}

func TestDeleteQuestion_NonNumericID(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodDelete, "/questions/abc", "")

	assertErrorEnvelope(t, w, http.StatusBadRequest)
	questionRepo.AssertNotCalled(t, "Delete")
}

// ============================================================================
// POST /questions/search
// ============================================================================

func TestSearchQuestions(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("SearchByText", "peanut").Return([]entity.Question{
		{ID: 12, Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", CategoryID: 4, Difficulty: 2},
	}, nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodPost, "/questions/search", `{"searchTerm": "peanut"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	// total_questions — количество совпадений, выдача не пагинируется
	assert.Equal(t, float64(1), body["total_questions"])
	assert.Len(t, body["questions"], 1)
	assert.NotContains(t, body, "categories")
}

func TestSearchQuestions_EmptyTermAllowed(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("SearchByText", "").Return([]entity.Question{
		{ID: 1}, {ID: 2}, {ID: 3},
	}, nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodPost, "/questions/search", `{"searchTerm": ""}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["total_questions"])
}

func TestSearchQuestions_MissingTerm(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodPost, "/questions/search", `{}`)

	assertErrorEnvelope(t, w, http.StatusBadRequest)
	questionRepo.AssertNotCalled(t, "SearchByText")
}

func TestSearchQuestions_NoMatches(t *testing.T) {
	questionRepo := new(MockQuestionRepository)
	categoryRepo := new(MockCategoryRepository)
	questionRepo.On("SearchByText", "zzz").Return([]entity.Question{}, nil)
	router := newTestRouter(questionRepo, categoryRepo)

	w := performRequest(router, http.MethodPost, "/questions/search", `{"searchTerm": "zzz"}`)

	// Ноль совпадений — успех с пустым списком, не 404
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["total_questions"])
}
