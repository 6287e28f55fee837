package article_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/article"
	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
)

/* ──────── stubs ──────── */

type stubRepo struct {
	articles map[int64]*entity.Article
	nextID   int64
	err      error
}

func newStubRepo() *stubRepo {
	return &stubRepo{articles: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = s.nextID
	s.nextID++
	s.articles[a.ID] = a
	return nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.articles[id], nil
}

func (s *stubRepo) UpdateContent(_ context.Context, id int64, fields repository.ContentUpdate) error {
	a, ok := s.articles[id]
	if !ok {
		return entity.ErrNotFound
	}
	if fields.Title != nil {
		a.Title = *fields.Title
	}
	return nil
}

func (s *stubRepo) SetStatus(_ context.Context, id int64, status entity.ArticleStatus, reason *string) error {
	a, ok := s.articles[id]
	if !ok || a.Status != entity.StatusPending {
		return entity.ErrConflict
	}
	a.Status = status
	a.DeclineReason = reason
	return nil
}

func (s *stubRepo) SetPremium(_ context.Context, id int64) error {
	a, ok := s.articles[id]
	if !ok {
		return entity.ErrNotFound
	}
	a.IsPremium = true
	return nil
}

func (s *stubRepo) IncrementViewCount(_ context.Context, id int64) error {
	a, ok := s.articles[id]
	if !ok {
		return entity.ErrNotFound
	}
	a.ViewCount++
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.articles[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.articles, id)
	return nil
}

func (s *stubRepo) ListByAuthor(_ context.Context, email string) ([]*entity.Article, error) {
	var out []*entity.Article
	for _, a := range s.articles {
		if a.AuthorEmail == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) CountByAuthor(_ context.Context, email string) (int64, error) {
	var n int64
	for _, a := range s.articles {
		if a.AuthorEmail == email {
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) ListApproved(_ context.Context, _ repository.ArticleFilters) ([]*entity.Article, error) {
	var out []*entity.Article
	for _, a := range s.articles {
		if a.Status == entity.StatusApproved {
			out = append(out, a)
		}
	}
	return out, s.err
}

func (s *stubRepo) ListTrending(_ context.Context, _ int) ([]*entity.Article, error) {
	return nil, s.err
}
func (s *stubRepo) ListPremium(_ context.Context) ([]*entity.Article, error) { return nil, s.err }
func (s *stubRepo) ListPaginated(_ context.Context, _, _ int) ([]*entity.Article, error) {
	return nil, s.err
}
func (s *stubRepo) CountArticles(_ context.Context) (int64, error) { return 0, s.err }
func (s *stubRepo) CountByPublisher(_ context.Context) ([]repository.PublisherArticleCount, error) {
	return nil, s.err
}

type stubUsers struct {
	users map[string]*entity.User
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return s.users[email], nil
}
func (s *stubUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}
func (s *stubUsers) Create(_ context.Context, _ *entity.User) error { return nil }
func (s *stubUsers) UpdateProfile(_ context.Context, _ string, _ repository.ProfileUpdate) error {
	return nil
}
func (s *stubUsers) GrantAdminRole(_ context.Context, _ int64) error { return nil }
func (s *stubUsers) SetSubscriptionEnd(_ context.Context, _ string, _ time.Time) error {
	return nil
}
func (s *stubUsers) ClearSubscription(_ context.Context, _ string) error          { return nil }
func (s *stubUsers) ClearExpiredSubscriptions(_ context.Context) (int64, error)   { return 0, nil }
func (s *stubUsers) CountByTier(_ context.Context) (repository.TierCounts, error) {
	return repository.TierCounts{}, nil
}
func (s *stubUsers) ListPaginated(_ context.Context, _, _ int) ([]*entity.User, error) {
	return nil, nil
}
func (s *stubUsers) CountUsers(_ context.Context) (int64, error) { return 0, nil }

func newService(repo *stubRepo, users *stubUsers) *artUC.Service {
	return &artUC.Service{Repo: repo, Users: users}
}

func seedAuthor(users *stubUsers, email string, premiumEnd *time.Time) {
	if users.users == nil {
		users.users = map[string]*entity.User{}
	}
	users.users[email] = &entity.User{
		ID: 1, Email: email, Name: "Author", Role: entity.RoleNormal,
		PremiumEndAt: premiumEnd,
	}
}

func seedArticle(repo *stubRepo, author string, status entity.ArticleStatus) *entity.Article {
	a := &entity.Article{
		ID: repo.nextID, Title: "Seeded", Publisher: "The Daily",
		AuthorEmail: author, Status: status, CreatedAt: time.Now(),
	}
	repo.articles[a.ID] = a
	repo.nextID++
	return a
}

/* ──────── submission ──────── */

func TestSubmitHandler_Success(t *testing.T) {
	repo, users := newStubRepo(), &stubUsers{}
	seedAuthor(users, "writer@example.com", nil)
	handler := article.SubmitHandler{Svc: newService(repo, users)}

	body := `{"title":"First","publisher":"The Daily","tags":["go","web"]}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	req = withAuthorEmail(t, req, "writer@example.com")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d body=%s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	var dto article.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dto.Status != "pending" {
		t.Errorf("Status = %q, want pending", dto.Status)
	}
	if dto.AuthorEmail != "writer@example.com" {
		t.Errorf("AuthorEmail = %q", dto.AuthorEmail)
	}
}

func TestSubmitHandler_PremiumRequired(t *testing.T) {
	repo, users := newStubRepo(), &stubUsers{}
	seedAuthor(users, "writer@example.com", nil)
	seedArticle(repo, "writer@example.com", entity.StatusPending)
	handler := article.SubmitHandler{Svc: newService(repo, users)}

	body := `{"title":"Second","publisher":"The Daily"}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	req = withAuthorEmail(t, req, "writer@example.com")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusPaymentRequired)
	}
}

func TestSubmitHandler_SubscribedAuthorUnlimited(t *testing.T) {
	repo, users := newStubRepo(), &stubUsers{}
	end := time.Now().Add(24 * time.Hour)
	seedAuthor(users, "writer@example.com", &end)
	seedArticle(repo, "writer@example.com", entity.StatusApproved)
	handler := article.SubmitHandler{Svc: newService(repo, users)}

	body := `{"title":"Second","publisher":"The Daily"}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	req = withAuthorEmail(t, req, "writer@example.com")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
}

func TestSubmitHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "missing title", body: `{"publisher":"The Daily"}`},
		{name: "missing publisher", body: `{"title":"T"}`},
		{name: "bad image url", body: `{"title":"T","publisher":"P","image_url":"ftp://x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &stubUsers{}
			seedAuthor(users, "writer@example.com", nil)
			handler := article.SubmitHandler{Svc: newService(newStubRepo(), users)}

			req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(tt.body))
			req = withAuthorEmail(t, req, "writer@example.com")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

/* ──────── fetch / edit / delete ──────── */

func TestGetHandler(t *testing.T) {
	repo := newStubRepo()
	art := seedArticle(repo, "writer@example.com", entity.StatusApproved)
	handler := article.GetHandler{Svc: newService(repo, &stubUsers{})}

	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{name: "found", id: "1", wantCode: http.StatusOK},
		{name: "missing", id: "99", wantCode: http.StatusNotFound},
		{name: "bad id", id: "abc", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/articles/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusOK {
				var dto article.DTO
				if err := json.Unmarshal(rr.Body.Bytes(), &dto); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if dto.ID != art.ID {
					t.Errorf("ID = %d, want %d", dto.ID, art.ID)
				}
			}
		})
	}
}

func TestUpdateHandler_OnlyAuthor(t *testing.T) {
	repo := newStubRepo()
	seedArticle(repo, "writer@example.com", entity.StatusPending)
	handler := article.UpdateHandler{Svc: newService(repo, &stubUsers{})}

	tests := []struct {
		name     string
		caller   string
		wantCode int
	}{
		{name: "author", caller: "writer@example.com", wantCode: http.StatusNoContent},
		{name: "stranger", caller: "other@example.com", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/articles/1",
				strings.NewReader(`{"title":"Edited"}`))
			req.SetPathValue("id", "1")
			req = withAuthorEmail(t, req, tt.caller)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	repo := newStubRepo()
	seedArticle(repo, "writer@example.com", entity.StatusPending)
	handler := article.DeleteHandler{Svc: newService(repo, &stubUsers{})}

	req := httptest.NewRequest(http.MethodDelete, "/articles/1", nil)
	req.SetPathValue("id", "1")
	req = withAuthorEmail(t, req, "writer@example.com")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if len(repo.articles) != 0 {
		t.Errorf("article not deleted")
	}
}

/* ──────── moderation ──────── */

func TestApproveHandler(t *testing.T) {
	repo := newStubRepo()
	seedArticle(repo, "writer@example.com", entity.StatusPending)
	handler := article.ApproveHandler{Svc: newService(repo, &stubUsers{})}

	req := httptest.NewRequest(http.MethodPatch, "/articles/1/approve", nil)
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if repo.articles[1].Status != entity.StatusApproved {
		t.Errorf("Status = %q, want approved", repo.articles[1].Status)
	}
}

func TestApproveHandler_AlreadyDecided(t *testing.T) {
	repo := newStubRepo()
	seedArticle(repo, "writer@example.com", entity.StatusDeclined)
	handler := article.ApproveHandler{Svc: newService(repo, &stubUsers{})}

	req := httptest.NewRequest(http.MethodPatch, "/articles/1/approve", nil)
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestDeclineHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "with reason", body: `{"reason":"duplicate content"}`, wantCode: http.StatusNoContent},
		{name: "missing reason", body: `{}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubRepo()
			seedArticle(repo, "writer@example.com", entity.StatusPending)
			handler := article.DeclineHandler{Svc: newService(repo, &stubUsers{})}

			req := httptest.NewRequest(http.MethodPatch, "/articles/1/decline", strings.NewReader(tt.body))
			req.SetPathValue("id", "1")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusNoContent {
				a := repo.articles[1]
				if a.Status != entity.StatusDeclined || a.DeclineReason == nil {
					t.Errorf("decline not recorded: %+v", a)
				}
			}
		})
	}
}

func TestPremiumFlagHandler(t *testing.T) {
	repo := newStubRepo()
	seedArticle(repo, "writer@example.com", entity.StatusApproved)
	handler := article.PremiumFlagHandler{Svc: newService(repo, &stubUsers{})}

	req := httptest.NewRequest(http.MethodPatch, "/articles/1/premium", nil)
	req.SetPathValue("id", "1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if !repo.articles[1].IsPremium {
		t.Errorf("IsPremium = false, want true")
	}
}

/* ──────── views and listings ──────── */

func TestViewHandler(t *testing.T) {
	repo := newStubRepo()
	seedArticle(repo, "writer@example.com", entity.StatusApproved)
	handler := article.ViewHandler{Svc: newService(repo, &stubUsers{})}

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPatch, "/articles/1/views", nil)
		req.SetPathValue("id", "1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
		}
	}
	if repo.articles[1].ViewCount != 3 {
		t.Errorf("ViewCount = %d, want 3", repo.articles[1].ViewCount)
	}
}

func TestApprovedHandler(t *testing.T) {
	repo := newStubRepo()
	seedArticle(repo, "a@example.com", entity.StatusApproved)
	seedArticle(repo, "b@example.com", entity.StatusPending)
	handler := article.ApprovedHandler{Svc: newService(repo, &stubUsers{})}

	req := httptest.NewRequest(http.MethodGet, "/articles/approved?tags=go,%20web", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var dtos []article.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &dtos); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(dtos) != 1 || dtos[0].Status != "approved" {
		t.Errorf("got %d articles, want 1 approved", len(dtos))
	}
}

func TestMineHandler(t *testing.T) {
	repo := newStubRepo()
	seedArticle(repo, "writer@example.com", entity.StatusPending)
	seedArticle(repo, "other@example.com", entity.StatusApproved)
	handler := article.MineHandler{Svc: newService(repo, &stubUsers{})}

	req := httptest.NewRequest(http.MethodGet, "/articles/mine", nil)
	req = withAuthorEmail(t, req, "writer@example.com")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var dtos []article.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &dtos); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(dtos) != 1 || dtos[0].AuthorEmail != "writer@example.com" {
		t.Errorf("got %d articles, want 1 own article", len(dtos))
	}
}

func withAuthorEmail(t *testing.T, req *http.Request, email string) *http.Request {
	t.Helper()
	return req.WithContext(auth.ContextWithIdentity(req.Context(), email, entity.RoleNormal))
}
