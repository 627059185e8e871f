package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"swiftdoc/internal/domain"
	"swiftdoc/internal/domain/repositories"
)

// In-memory fakes for the repository interfaces. State lives in maps; error
// injection fields make failure paths testable without a database.

type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*domain.Project
	nextID   int
	getErr   error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if project.ID == "" {
		r.nextID++
		project.ID = fmt.Sprintf("proj-%d", r.nextID)
	}
	stored := *project
	r.projects[project.ID] = &stored
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id, userID string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	project, ok := r.projects[id]
	if !ok || project.UserID != userID {
		return nil, &domain.NotFoundError{Message: "project not found"}
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) List(ctx context.Context, userID string) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Project
	for _, p := range r.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[id]
	if !ok || project.UserID != userID {
		return &domain.NotFoundError{Message: "project not found"}
	}
	delete(r.projects, id)
	return nil
}

type fakeSectionRepo struct {
	mu        sync.Mutex
	sections  map[string]*domain.Section
	order     []string
	nextID    int
	createErr error
	updateErr error
}

func newFakeSectionRepo() *fakeSectionRepo {
	return &fakeSectionRepo{sections: make(map[string]*domain.Section)}
}

func (r *fakeSectionRepo) Create(ctx context.Context, section *domain.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if section.ID == "" {
		r.nextID++
		section.ID = fmt.Sprintf("sec-%d", r.nextID)
	}
	stored := *section
	r.sections[section.ID] = &stored
	r.order = append(r.order, section.ID)
	return nil
}

func (r *fakeSectionRepo) GetByID(ctx context.Context, id string) (*domain.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	section, ok := r.sections[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: "section not found"}
	}
	copied := *section
	return &copied, nil
}

func (r *fakeSectionRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Section
	for _, id := range r.order {
		if r.sections[id].ProjectID == projectID {
			out = append(out, *r.sections[id])
		}
	}
	return out, nil
}

func (r *fakeSectionRepo) UpdateContent(ctx context.Context, id, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	section, ok := r.sections[id]
	if !ok {
		return &domain.NotFoundError{Message: "section not found"}
	}
	section.Content = content
	return nil
}

type fakeFeedbackRepo struct {
	mu       sync.Mutex
	feedback map[string]*domain.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{feedback: make(map[string]*domain.Feedback)}
}

func (r *fakeFeedbackRepo) Get(ctx context.Context, sectionID string) (*domain.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fb, ok := r.feedback[sectionID]
	if !ok {
		return nil, nil
	}
	copied := *fb
	return &copied, nil
}

func (r *fakeFeedbackRepo) Upsert(ctx context.Context, fb *domain.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.feedback[fb.SectionID]
	if !ok {
		stored := *fb
		r.feedback[fb.SectionID] = &stored
		return nil
	}
	if fb.Liked != nil {
		existing.Liked = fb.Liked
	}
	if fb.Comment != "" {
		existing.Comment = fb.Comment
	}
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return &domain.ConflictError{Message: "email already registered"}
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, &domain.NotFoundError{Message: "user not found"}
	}
	copied := *user
	return &copied, nil
}

// fakeTxManager runs the function directly; the fakes have no transactions.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

// stubProvider returns a canned completion or error and records prompts.
type stubProvider struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, prompt)
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prompts)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
