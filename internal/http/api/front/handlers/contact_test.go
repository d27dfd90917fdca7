package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	mailer "github.com/thedetailproz/site-backend/internal/mail"
)

// stubMailer records sent messages.
type stubMailer struct {
	sent []mailer.Message
}

func (m *stubMailer) Send(_ context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

func newContactRouter(m mailer.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v0/site/contact", NewContactHandler(m, "owner@example.com").Submit)
	return r
}

func postContact(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v0/site/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestContactSubmit(t *testing.T) {
	stub := &stubMailer{}
	r := newContactRouter(stub)

	rec := postContact(t, r, `{"name":"Jamie","email":"jamie@example.com","phone":"555-0100","service":"Premium Detail","message":"Need a quote."}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(stub.sent) != 1 {
		t.Fatalf("expected one message sent, got %d", len(stub.sent))
	}
	msg := stub.sent[0]
	if msg.To != "owner@example.com" || msg.ReplyTo != "jamie@example.com" {
		t.Fatalf("unexpected addressing: %+v", msg)
	}
	if !strings.Contains(msg.Body, "Phone: 555-0100") {
		t.Fatalf("expected phone line in body, got %q", msg.Body)
	}
}

func TestContactSubmitRequiresPhone(t *testing.T) {
	stub := &stubMailer{}
	r := newContactRouter(stub)

	rec := postContact(t, r, `{"name":"Jamie","email":"jamie@example.com","message":"Need a quote."}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without phone, got %d", rec.Code)
	}
	if len(stub.sent) != 0 {
		t.Fatalf("expected no message sent, got %d", len(stub.sent))
	}
}

func TestContactSubmitRejectsBadEmail(t *testing.T) {
	stub := &stubMailer{}
	r := newContactRouter(stub)

	rec := postContact(t, r, `{"name":"Jamie","email":"not-an-address","phone":"555-0100","message":"Need a quote."}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", rec.Code)
	}
	if len(stub.sent) != 0 {
		t.Fatalf("expected no message sent, got %d", len(stub.sent))
	}
}
