package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aurora-store/internal/domain"
	commentrepo "aurora-store/internal/repository/comment"
	cartsvc "aurora-store/internal/service/cart"
	catalogsvc "aurora-store/internal/service/catalog"
	commentsvc "aurora-store/internal/service/comment"
	"aurora-store/internal/session"

	"github.com/gin-gonic/gin"
)

type stubProductRepo struct {
	products map[int64]domain.Product
}

func (s *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, nil
}

type stubCommentRepo struct {
	comments []domain.Comment
}

func (s *stubCommentRepo) ListByProduct(_ context.Context, productID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range s.comments {
		if c.ProductID == productID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCommentRepo) Create(_ context.Context, in commentrepo.CreateCommentInput) (*domain.Comment, error) {
	c := domain.Comment{ID: int64(len(s.comments) + 1), ProductID: in.ProductID, SessionID: in.SessionID, Author: in.Author, Content: in.Content}
	s.comments = append(s.comments, c)
	return &c, nil
}

func (s *stubCommentRepo) UpdateContent(_ context.Context, id int64, sessionID, content string) error {
	for i, c := range s.comments {
		if c.ID == id && c.SessionID == sessionID {
			s.comments[i].Content = content
		}
	}
	return nil
}

func (s *stubCommentRepo) Delete(_ context.Context, id int64, sessionID string) error {
	for i, c := range s.comments {
		if c.ID == id && c.SessionID == sessionID {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubInitiator struct {
	target string
	err    error
}

func (s *stubInitiator) Start(_ context.Context, _, _ string) (string, error) {
	return s.target, s.err
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.Sessions == nil {
		deps.Sessions = session.NewManager()
	}
	if deps.Currency == "" {
		deps.Currency = "USD"
	}
	logger := log.New(io.Discard, "", 0)
	return buildRouter(logger, nil, deps)
}

func defaultDeps() Deps {
	products := &stubProductRepo{products: map[int64]domain.Product{
		5: {ID: 5, SKU: "AUR-WATCH-02", NameEN: "Pulse Watch", PriceCents: 9900},
	}}
	store := session.NewStore()
	return Deps{
		CatalogSvc: catalogsvc.New(products),
		CartSvc:    cartsvc.New(store, products),
		CommentSvc: commentsvc.New(&stubCommentRepo{}),
		Checkout:   &stubInitiator{target: "/checkout/success"},
	}
}

func do(router *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSessionCookieIssuedOnFirstRequest(t *testing.T) {
	router := newTestRouter(t, defaultDeps())

	rec := do(router, http.MethodGet, "/api/cart", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var sid *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sid" {
			sid = c
		}
	}
	if sid == nil || sid.Value == "" {
		t.Fatal("expected sid cookie to be set")
	}
	if !sid.HttpOnly {
		t.Fatal("expected sid cookie to be http-only")
	}
}

func TestCartAddRemoveClearCounts(t *testing.T) {
	router := newTestRouter(t, defaultDeps())
	cookie := &http.Cookie{Name: "sid", Value: "test-session"}

	rec := do(router, http.MethodPost, "/api/cart/add", `{"product_id":"5","qty":2}`, []*http.Cookie{cookie})
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if body := rec.Body.String(); !strings.Contains(body, `"count":2`) {
		t.Fatalf("add: expected count 2, got %s", body)
	}

	rec = do(router, http.MethodPost, "/api/cart/add", `{"product_id":"5"}`, []*http.Cookie{cookie})
	if body := rec.Body.String(); !strings.Contains(body, `"count":3`) {
		t.Fatalf("add without qty: expected count 3, got %s", body)
	}

	rec = do(router, http.MethodPost, "/api/cart/remove", `{"product_id":"5"}`, []*http.Cookie{cookie})
	if body := rec.Body.String(); !strings.Contains(body, `"count":0`) {
		t.Fatalf("remove: expected count 0, got %s", body)
	}

	do(router, http.MethodPost, "/api/cart/add", `{"product_id":"5","qty":4}`, []*http.Cookie{cookie})
	rec = do(router, http.MethodPost, "/api/cart/clear", "", []*http.Cookie{cookie})
	if body := rec.Body.String(); !strings.Contains(body, `"count":0`) {
		t.Fatalf("clear: expected count 0, got %s", body)
	}
}

func TestCartAddRejectsNonNumericProductID(t *testing.T) {
	router := newTestRouter(t, defaultDeps())

	rec := do(router, http.MethodPost, "/api/cart/add", `{"product_id":"abc","qty":1}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCartViewPricesAgainstCatalog(t *testing.T) {
	router := newTestRouter(t, defaultDeps())
	cookie := &http.Cookie{Name: "sid", Value: "test-session"}

	do(router, http.MethodPost, "/api/cart/add", `{"product_id":"5","qty":2}`, []*http.Cookie{cookie})
	do(router, http.MethodPost, "/api/cart/add", `{"product_id":"404","qty":1}`, []*http.Cookie{cookie})

	rec := do(router, http.MethodGet, "/api/cart", "", []*http.Cookie{cookie})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"totalCents":19800`) {
		t.Fatalf("expected total 19800 with unknown product skipped, got %s", body)
	}
}

func TestCheckoutRedirects(t *testing.T) {
	deps := defaultDeps()
	deps.Checkout = &stubInitiator{target: "https://pay.example/cs_1"}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/checkout/session", strings.NewReader("email=a%40b.c"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "https://pay.example/cs_1" {
		t.Fatalf("expected provider redirect, got %s", loc)
	}
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	router := newTestRouter(t, defaultDeps())
	cookie := &http.Cookie{Name: "sid", Value: "test-session"}

	do(router, http.MethodPost, "/api/cart/add", `{"product_id":"5","qty":2}`, []*http.Cookie{cookie})
	rec := do(router, http.MethodGet, "/checkout/success", "", []*http.Cookie{cookie})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = do(router, http.MethodGet, "/api/cart", "", []*http.Cookie{cookie})
	if body := rec.Body.String(); !strings.Contains(body, `"count":0`) {
		t.Fatalf("expected cart cleared after success, got %s", body)
	}
}

func TestCheckoutCancelKeepsCart(t *testing.T) {
	router := newTestRouter(t, defaultDeps())
	cookie := &http.Cookie{Name: "sid", Value: "test-session"}

	do(router, http.MethodPost, "/api/cart/add", `{"product_id":"5","qty":2}`, []*http.Cookie{cookie})
	rec := do(router, http.MethodGet, "/checkout/cancel", "", []*http.Cookie{cookie})
	if body := rec.Body.String(); !strings.Contains(body, `"count":2`) {
		t.Fatalf("expected cart untouched after cancel, got %s", body)
	}
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(t, defaultDeps())

	rec := do(router, http.MethodGet, "/api/products/999", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCommentOwnershipIsEnforcedSilently(t *testing.T) {
	repo := &stubCommentRepo{}
	deps := defaultDeps()
	deps.CommentSvc = commentsvc.New(repo)
	router := newTestRouter(t, deps)

	owner := &http.Cookie{Name: "sid", Value: "owner"}
	other := &http.Cookie{Name: "sid", Value: "other"}

	rec := do(router, http.MethodPost, "/api/products/5/comments", `{"author":"Alice","content":"great"}`, []*http.Cookie{owner})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	// A non-owner edit responds like a success but changes nothing.
	rec = do(router, http.MethodPost, "/api/comments/1", `{"content":"defaced"}`, []*http.Cookie{other})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("edit: expected 204, got %d", rec.Code)
	}
	if repo.comments[0].Content != "great" {
		t.Fatalf("non-owner edit must not change content, got %s", repo.comments[0].Content)
	}

	rec = do(router, http.MethodDelete, "/api/comments/1", "", []*http.Cookie{other})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if len(repo.comments) != 1 {
		t.Fatal("non-owner delete must not remove the comment")
	}

	rec = do(router, http.MethodDelete, "/api/comments/1", "", []*http.Cookie{owner})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("owner delete: expected 204, got %d", rec.Code)
	}
	if len(repo.comments) != 0 {
		t.Fatal("owner delete must remove the comment")
	}
}

func TestWebhookRejectedWhenUnconfigured(t *testing.T) {
	router := newTestRouter(t, defaultDeps()) // no reconciler wired

	rec := do(router, http.MethodPost, "/webhook", `{"type":"checkout.session.completed"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without webhook secret, got %d", rec.Code)
	}
}
