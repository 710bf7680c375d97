package services

import (
	"context"

	"vedang.dev/configs/configslog"
	"vedang.dev/models"
	"vedang.dev/pkg/mailer"
	"vedang.dev/pkg/queryparams"
	"vedang.dev/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ContactServiceError is the typed error for contact operations.
type ContactServiceError string

func (e ContactServiceError) Error() string { return string(e) }

const ErrMessageNotFound ContactServiceError = "contact message not found"

// ContactForm is the visitor submission payload.
type ContactForm struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required"`
	Message string `form:"message" validate:"required"`
}

var contactFieldMessages = map[string]string{
	"Name":    "Please enter your name.",
	"Email":   "Please enter a valid email address.",
	"Subject": "Please enter a subject.",
	"Message": "Please enter a message.",
}

// SubmitResult reports the outcome of a contact submission. MailFailed is
// advisory: the message is already stored when it is set.
type SubmitResult struct {
	Message    *models.ContactMessage
	MailFailed bool
}

// IContactService handles visitor message intake and the panel inbox.
type IContactService interface {
	SubmitContactForm(ctx context.Context, form ContactForm) (*SubmitResult, map[string]string, error)
	GetMessagesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	GetMessageByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	SetMessageRead(ctx context.Context, id uint, read bool) error
	CountUnreadMessages(ctx context.Context) (int64, error)
	DeleteMessage(ctx context.Context, id uint) error
}

type ContactService struct {
	repo     repositories.IContactMessageRepository
	notifier mailer.Notifier
	validate *validator.Validate
}

// NewContactService wires the repository with the given notifier. Pass
// mailer.NewSMTPNotifier() in production.
func NewContactService(notifier mailer.Notifier) IContactService {
	return &ContactService{
		repo:     repositories.NewContactMessageRepository(),
		notifier: notifier,
		validate: validator.New(),
	}
}

// SubmitContactForm validates, persists and then notifies. Validation
// failures come back as a field → message map with no row written. A mail
// failure after the row is stored is downgraded to SubmitResult.MailFailed.
func (s *ContactService) SubmitContactForm(ctx context.Context, form ContactForm) (*SubmitResult, map[string]string, error) {
	if err := s.validate.Struct(form); err != nil {
		fieldErrors := make(map[string]string)
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				msg, known := contactFieldMessages[ve.Field()]
				if !known {
					msg = "This field is invalid."
				}
				fieldErrors[ve.Field()] = msg
			}
			return nil, fieldErrors, nil
		}
		return nil, nil, err
	}

	msg := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Message: form.Message,
		IsRead:  false,
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		configslog.Log.Error("Failed to store contact message", zap.String("email", form.Email), zap.Error(err))
		return nil, nil, err
	}

	result := &SubmitResult{Message: msg}
	if err := s.notifier.NotifyContact(*msg); err != nil {
		// Best effort only; the message is already durable.
		configslog.Log.Warn("Contact notification failed", zap.Uint("message_id", msg.ID), zap.Error(err))
		result.MailFailed = true
	}
	return result, nil, nil
}

func (s *ContactService) GetMessagesPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	messages, total, err := s.repo.GetAllMessagesPaginated(params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(messages, params, total), nil
}

func (s *ContactService) GetMessageByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	msg, err := s.repo.FindMessageByID(id)
	if err == repositories.ErrNotFound {
		return nil, ErrMessageNotFound
	}
	return msg, err
}

func (s *ContactService) SetMessageRead(ctx context.Context, id uint, read bool) error {
	err := s.repo.SetRead(ctx, id, read)
	if err == repositories.ErrNotFound {
		return ErrMessageNotFound
	}
	return err
}

func (s *ContactService) CountUnreadMessages(ctx context.Context) (int64, error) {
	return s.repo.CountUnread()
}

func (s *ContactService) DeleteMessage(ctx context.Context, id uint) error {
	err := s.repo.DeleteMessage(ctx, id)
	if err == repositories.ErrNotFound {
		return ErrMessageNotFound
	}
	return err
}
