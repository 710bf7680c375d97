package services

import (
	"context"
	"errors"
	"testing"

	"vedang.dev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures outgoing notifications and can be told to fail.
type recordingNotifier struct {
	sent []models.ContactMessage
	err  error
}

func (n *recordingNotifier) NotifyContact(msg models.ContactMessage) error {
	n.sent = append(n.sent, msg)
	return n.err
}

func validContactForm() ContactForm {
	return ContactForm{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Collaboration",
		Message: "I would like to discuss a project.",
	}
}

func TestSubmitContactFormStoresAndNotifies(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	svc := NewContactService(notifier)

	result, fieldErrors, err := svc.SubmitContactForm(context.Background(), validContactForm())
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
	require.NotNil(t, result)
	assert.False(t, result.MailFailed)

	var stored models.ContactMessage
	require.NoError(t, db.First(&stored, result.Message.ID).Error)
	assert.Equal(t, "ada@example.com", stored.Email)
	assert.False(t, stored.IsRead, "new messages arrive unread")

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Collaboration", notifier.sent[0].Subject)
}

func TestSubmitContactFormValidation(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	svc := NewContactService(notifier)
	ctx := context.Background()

	t.Run("missing fields reported per field", func(t *testing.T) {
		result, fieldErrors, err := svc.SubmitContactForm(ctx, ContactForm{})
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Len(t, fieldErrors, 4)
		assert.Contains(t, fieldErrors, "Name")
		assert.Contains(t, fieldErrors, "Email")
		assert.Contains(t, fieldErrors, "Subject")
		assert.Contains(t, fieldErrors, "Message")
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		form := validContactForm()
		form.Email = "not-an-address"
		result, fieldErrors, err := svc.SubmitContactForm(ctx, form)
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Equal(t, map[string]string{"Email": "Please enter a valid email address."}, fieldErrors)
	})

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.Zero(t, count, "rejected submissions leave no row behind")
	assert.Empty(t, notifier.sent)
}

func TestSubmitContactFormSurvivesMailFailure(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{err: errors.New("smtp connection refused")}
	svc := NewContactService(notifier)

	result, fieldErrors, err := svc.SubmitContactForm(context.Background(), validContactForm())
	require.NoError(t, err, "a mail failure must not fail the submission")
	assert.Empty(t, fieldErrors)
	require.NotNil(t, result)
	assert.True(t, result.MailFailed)

	var count int64
	require.NoError(t, db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMessageInboxFlow(t *testing.T) {
	setupTestDB(t)
	svc := NewContactService(&recordingNotifier{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, fieldErrors, err := svc.SubmitContactForm(ctx, validContactForm())
		require.NoError(t, err)
		require.Empty(t, fieldErrors)
	}

	unread, err := svc.CountUnreadMessages(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, unread)

	require.NoError(t, svc.SetMessageRead(ctx, 1, true))
	unread, err = svc.CountUnreadMessages(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	msg, err := svc.GetMessageByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, msg.IsRead)

	require.NoError(t, svc.DeleteMessage(ctx, 1))
	_, err = svc.GetMessageByID(ctx, 1)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}
