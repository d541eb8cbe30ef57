package services

import (
	"context"
	"strings"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const contactColumns = "id, full_name, email, message, submitted_date, is_read"

// ContactConfirmation is returned to the visitor after a successful submission.
const ContactConfirmation = "Thank you! Your message has been sent successfully."

// ContactInput is a raw contact form submission. A nil field was absent from the request.
type ContactInput struct {
	FullName *string
	Email    *string
	Message  *string
}

type contactForm struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Message  string `json:"message" validate:"required"`
}

func trimmed(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

// ValidateContact checks a submission and returns the cleaned message or a
// ValidationError listing every offending field.
func ValidateContact(in ContactInput) (models.ContactMessage, error) {
	form := contactForm{
		FullName: trimmed(in.FullName),
		Email:    trimmed(in.Email),
		Message:  trimmed(in.Message),
	}
	if err := ValidateRecord(form); err != nil {
		verr, ok := err.(ValidationError)
		if !ok {
			return models.ContactMessage{}, err
		}
		missing := map[string]bool{
			"full_name": in.FullName == nil,
			"email":     in.Email == nil,
			"message":   in.Message == nil,
		}
		for field := range verr.Fields {
			if missing[field] {
				verr.Fields[field] = []string{"This field is required."}
			}
		}
		return models.ContactMessage{}, verr
	}
	return models.ContactMessage{
		FullName: form.FullName,
		Email:    form.Email,
		Message:  form.Message,
	}, nil
}

// SubmitContact validates and stores a contact message. submitted_date is always
// assigned here, never taken from the caller.
func SubmitContact(ctx context.Context, db *sqlx.DB, in ContactInput) (models.ContactMessage, error) {
	msg, err := ValidateContact(in)
	if err != nil {
		return models.ContactMessage{}, err
	}
	msg.SubmittedDate = time.Now().UTC()
	id, err := insertReturningID(ctx, db, `
INSERT INTO contact_messages (full_name, email, message, submitted_date, is_read)
VALUES (:full_name, :email, :message, :submitted_date, :is_read)
RETURNING id`, msg)
	if err != nil {
		return models.ContactMessage{}, WrapError(err, "insert contact message")
	}
	msg.ID = id
	return msg, nil
}

// MessageFilter narrows the admin inbox; a nil IsRead lists everything.
type MessageFilter struct {
	IsRead *bool
}

func ListMessages(ctx context.Context, db *sqlx.DB, filter MessageFilter) ([]models.ContactMessage, error) {
	q := newSelect(contactColumns, "contact_messages", orderMessages)
	if filter.IsRead != nil {
		q.Where("is_read = ?", *filter.IsRead)
	}
	return selectAll[models.ContactMessage](ctx, db, q)
}

func GetMessage(ctx context.Context, db *sqlx.DB, id int64) (models.ContactMessage, error) {
	q := newSelect(contactColumns, "contact_messages", "").Where("id = ?", id)
	return getOne[models.ContactMessage](ctx, db, q, "Message not found")
}

// MarkMessageRead sets the read flag; no other field of a message is editable.
func MarkMessageRead(ctx context.Context, db *sqlx.DB, id int64, read bool) (models.ContactMessage, error) {
	res, err := db.ExecContext(ctx, db.Rebind(`UPDATE contact_messages SET is_read = ? WHERE id = ?`), read, id)
	if err != nil {
		return models.ContactMessage{}, WrapError(err, "mark message")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return models.ContactMessage{}, ErrNotFound("Message not found")
	}
	return GetMessage(ctx, db, id)
}

func DeleteMessage(ctx context.Context, db *sqlx.DB, id int64) error {
	return deleteByID(ctx, db, "contact_messages", id, "Message not found")
}
