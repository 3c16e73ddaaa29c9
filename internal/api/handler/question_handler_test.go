package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"interview_quiz/internal/app/service"
	"interview_quiz/internal/common"
	"interview_quiz/internal/common/security"
	"interview_quiz/internal/domain/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

func questionRouter(svc QuestionService) http.Handler {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(security.TokenAuth))
	r.Route("/questions", NewQuestionHandler(svc).RegisterRoutes)
	return r
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := security.GenerateToken("a1", "root", model.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func userToken(t *testing.T) string {
	t.Helper()
	token, err := security.GenerateToken("u1", "alice", model.RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func TestQuestions_NonAdminCallersGet401AndNoData(t *testing.T) {
	serviceCalled := false
	svc := &mockQuestionService{
		listQuestionsFn: func(ctx context.Context) ([]model.Question, error) {
			serviceCalled = true
			return []model.Question{{ID: "q1", CorrectAnswer: "4"}}, nil
		},
		addQuestionFn: func(ctx context.Context, req service.AddQuestionRequest) (*service.AddQuestionResponse, error) {
			serviceCalled = true
			return &service.AddQuestionResponse{ID: "q1"}, nil
		},
	}
	router := questionRouter(svc)

	tests := []struct {
		name   string
		method string
		token  string
	}{
		{name: "GET unauthenticated", method: http.MethodGet, token: ""},
		{name: "POST unauthenticated", method: http.MethodPost, token: ""},
		{name: "GET non-admin", method: http.MethodGet, token: userToken(t)},
		{name: "POST non-admin", method: http.MethodPost, token: userToken(t)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.method == http.MethodPost {
				body = strings.NewReader(`{"question":"2+2?","options":["3","4"],"correctAnswer":"4"}`)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, "/questions/", body)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
			if strings.Contains(w.Body.String(), "q1") {
				t.Errorf("response leaked data: %s", w.Body.String())
			}
		})
	}

	if serviceCalled {
		t.Error("service was reached by an unauthorized caller")
	}
}

func TestQuestions_AdminList(t *testing.T) {
	svc := &mockQuestionService{
		listQuestionsFn: func(ctx context.Context) ([]model.Question, error) {
			return []model.Question{
				{ID: "q1", Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/questions/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	questionRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var questions []model.Question
	if err := json.Unmarshal(w.Body.Bytes(), &questions); err != nil {
		t.Fatalf("response is not a question list: %v", err)
	}
	if len(questions) != 1 || questions[0].CorrectAnswer != "4" {
		t.Errorf("admin listing = %+v, want full rows with correct_answer", questions)
	}
}

func TestQuestions_AdminCreate(t *testing.T) {
	var gotReq service.AddQuestionRequest
	svc := &mockQuestionService{
		addQuestionFn: func(ctx context.Context, req service.AddQuestionRequest) (*service.AddQuestionResponse, error) {
			gotReq = req
			return &service.AddQuestionResponse{ID: "q-new"}, nil
		},
	}

	body := strings.NewReader(`{"question":"2+2?","options":["3","4"],"correctAnswer":"4"}`)
	req := httptest.NewRequest(http.MethodPost, "/questions/", body)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	questionRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusCreated, w.Body.String())
	}
	if gotReq.Question != "2+2?" || gotReq.CorrectAnswer != "4" || len(gotReq.Options) != 2 {
		t.Errorf("decoded request = %+v", gotReq)
	}
	if !strings.Contains(w.Body.String(), "q-new") {
		t.Errorf("response = %s, want id q-new", w.Body.String())
	}
}

func TestQuestions_AdminCreateMalformedBody(t *testing.T) {
	svc := &mockQuestionService{}

	// options as a string, not an array
	body := strings.NewReader(`{"question":"2+2?","options":"34","correctAnswer":"4"}`)
	req := httptest.NewRequest(http.MethodPost, "/questions/", body)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	questionRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestQuestions_AdminCreateStoreFailureIs500WithGenericMessage(t *testing.T) {
	svc := &mockQuestionService{
		addQuestionFn: func(ctx context.Context, req service.AddQuestionRequest) (*service.AddQuestionResponse, error) {
			return nil, common.Errorf("pgQuestionRepository.CreateQuestion: connection refused to 10.0.0.5:5432: %w", common.ErrInternalServer)
		},
	}

	body := strings.NewReader(`{"question":"2+2?","options":["3","4"],"correctAnswer":"4"}`)
	req := httptest.NewRequest(http.MethodPost, "/questions/", body)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	questionRouter(svc).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("response leaked storage detail: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Failed to add question") {
		t.Errorf("response = %s, want generic failure message", w.Body.String())
	}
}
