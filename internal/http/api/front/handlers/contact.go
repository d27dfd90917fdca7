package handlers

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"
	mailer "github.com/thedetailproz/site-backend/internal/mail"

	log "github.com/sirupsen/logrus"
)

// ContactHandler captures contact-form submissions and forwards them to the
// configured mailer.
type ContactHandler struct {
	mailer        mailer.Mailer // Outbound delivery.
	businessEmail string        // Destination address.
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(m mailer.Mailer, businessEmail string) *ContactHandler {
	return &ContactHandler{mailer: m, businessEmail: businessEmail}
}

// contactRequest captures the submission payload.
type contactRequest struct {
	Name    string `json:"name"`    // Visitor name.
	Email   string `json:"email"`   // Visitor email.
	Phone   string `json:"phone"`   // Visitor phone.
	Service string `json:"service"` // Requested service, optional.
	Message string `json:"message"` // Inquiry body.
}

// Submit validates a submission and hands it to the mailer.
func (h *ContactHandler) Submit(c *gin.Context) {
	var body contactRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	name := strings.TrimSpace(body.Name)
	email := strings.TrimSpace(body.Email)
	phone := strings.TrimSpace(body.Phone)
	message := strings.TrimSpace(body.Message)
	if name == "" || phone == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, phone and message are required"})
		return
	}
	if _, errAddr := mail.ParseAddress(email); errAddr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
		return
	}

	lines := []string{
		"Name: " + name,
		"Email: " + email,
		"Phone: " + phone,
	}
	if service := strings.TrimSpace(body.Service); service != "" {
		lines = append(lines, "Service: "+service)
	}
	lines = append(lines, "", message)

	msg := mailer.Message{
		To:      h.businessEmail,
		ReplyTo: email,
		Subject: fmt.Sprintf("New quote request from %s", name),
		Body:    strings.Join(lines, "\n"),
	}
	if errSend := h.mailer.Send(c.Request.Context(), msg); errSend != nil {
		log.WithError(errSend).Error("contact message delivery failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "message delivery failed"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "received"})
}
