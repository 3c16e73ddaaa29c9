package service

import (
	"context"

	"interview_quiz/internal/domain/model"
)

type mockUserRepo struct {
	createFn         func(ctx context.Context, user *model.User) error
	findByUsernameFn func(ctx context.Context, username string) (*model.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return nil, nil
}

type mockQuestionRepo struct {
	createQuestionFn func(ctx context.Context, q *model.Question) error
	listQuestionsFn  func(ctx context.Context) ([]model.Question, error)
}

func (m *mockQuestionRepo) CreateQuestion(ctx context.Context, q *model.Question) error {
	if m.createQuestionFn != nil {
		return m.createQuestionFn(ctx, q)
	}
	return nil
}

func (m *mockQuestionRepo) ListQuestions(ctx context.Context) ([]model.Question, error) {
	if m.listQuestionsFn != nil {
		return m.listQuestionsFn(ctx)
	}
	return []model.Question{}, nil
}

type mockResultRepo struct {
	createResultFn func(ctx context.Context, result *model.Result) error
	listByUserIDFn func(ctx context.Context, userID string) ([]model.Result, error)
	listAllFn      func(ctx context.Context) ([]model.Result, error)
}

func (m *mockResultRepo) CreateResult(ctx context.Context, result *model.Result) error {
	if m.createResultFn != nil {
		return m.createResultFn(ctx, result)
	}
	return nil
}

func (m *mockResultRepo) ListByUserID(ctx context.Context, userID string) ([]model.Result, error) {
	if m.listByUserIDFn != nil {
		return m.listByUserIDFn(ctx, userID)
	}
	return []model.Result{}, nil
}

func (m *mockResultRepo) ListAll(ctx context.Context) ([]model.Result, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return []model.Result{}, nil
}
