package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appfrabric/roilux/models"
)

func newTestContactService(t *testing.T) *ContactService {
	t.Helper()
	return NewContactService(newTestDB(t), newTestConfig())
}

func TestSubmitContact(t *testing.T) {
	svc := newTestContactService(t)

	msg, confirmation, err := svc.SubmitContact(ContactSubmission{
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Company:  "Smith Furniture",
		Subject:  "Plywood pricing",
		Message:  "Please send your price list.",
		Language: "fr",
		Country:  "FR",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusUnread, msg.Status)
	assert.Equal(t, "fr", msg.Language)
	assert.Equal(t, "Message envoyé avec succès!", confirmation)

	t.Run("creates the owning user", func(t *testing.T) {
		var users []models.User
		require.NoError(t, svc.DB.Find(&users).Error)
		require.Len(t, users, 1)
		assert.Equal(t, "jane@example.com", users[0].Email)
		require.NotNil(t, msg.UserID)
		assert.Equal(t, users[0].ID, *msg.UserID)
	})

	t.Run("repeat email reuses the user", func(t *testing.T) {
		msg2, _, err := svc.SubmitContact(ContactSubmission{
			Name:    "Jane S.",
			Email:   "jane@example.com",
			Subject: "Follow up",
			Message: "Any update?",
		})
		require.NoError(t, err)

		var count int64
		require.NoError(t, svc.DB.Model(&models.User{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
		assert.Equal(t, *msg.UserID, *msg2.UserID)

		// The existing user's stored name is not overwritten.
		var user models.User
		require.NoError(t, svc.DB.First(&user, *msg2.UserID).Error)
		assert.Equal(t, "Jane Smith", user.Name)
		// The new submission keeps its own snapshot.
		assert.Equal(t, "Jane S.", msg2.Name)
	})

	t.Run("unsupported language falls back to default", func(t *testing.T) {
		msg3, confirmation, err := svc.SubmitContact(ContactSubmission{
			Name:     "Carlos",
			Email:    "carlos@example.com",
			Subject:  "Muestras",
			Message:  "Hola",
			Language: "es",
		})
		require.NoError(t, err)
		assert.Equal(t, "en", msg3.Language)
		assert.Equal(t, "Message sent successfully!", confirmation)
	})
}

func TestListContactMessagesOrdering(t *testing.T) {
	svc := newTestContactService(t)

	// Insert three messages with distinct creation times, then archive the
	// newest one.
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	var ids []uint
	for i := 0; i < 3; i++ {
		msg := models.ContactMessage{
			Name:      fmt.Sprintf("Visitor %d", i),
			Email:     fmt.Sprintf("visitor%d@example.com", i),
			Subject:   "Hello",
			Message:   "Hi",
			Language:  "en",
			Status:    models.ContactStatusUnread,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, svc.DB.Create(&msg).Error)
		ids = append(ids, msg.ID)
	}
	require.NoError(t, svc.ArchiveContactMessage(ids[2]))

	messages, total, err := svc.ListContactMessages(1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, messages, 3)

	// Active messages come first, newest first; the archived one sorts last
	// even though it is the most recent.
	assert.Equal(t, ids[1], messages[0].ID)
	assert.Equal(t, ids[0], messages[1].ID)
	assert.Equal(t, ids[2], messages[2].ID)
	assert.Equal(t, models.ContactStatusArchived, messages[2].Status)
}

func TestListContactMessagesPagination(t *testing.T) {
	svc := newTestContactService(t)

	for i := 0; i < 45; i++ {
		msg := models.ContactMessage{
			Name:     "Visitor",
			Email:    fmt.Sprintf("v%d@example.com", i),
			Subject:  "Hello",
			Message:  "Hi",
			Language: "en",
			Status:   models.ContactStatusUnread,
		}
		require.NoError(t, svc.DB.Create(&msg).Error)
	}

	messages, total, err := svc.ListContactMessages(3, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 45, total)
	assert.Len(t, messages, 5)

	result := models.NewPaginationResult(total, 3, 20)
	assert.EqualValues(t, 3, result.Pages)
}

func TestArchiveContactMessage(t *testing.T) {
	svc := newTestContactService(t)

	msg, _, err := svc.SubmitContact(ContactSubmission{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Hi",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ArchiveContactMessage(msg.ID))

	// Idempotent.
	require.NoError(t, svc.ArchiveContactMessage(msg.ID))

	var stored models.ContactMessage
	require.NoError(t, svc.DB.First(&stored, msg.ID).Error)
	assert.Equal(t, models.ContactStatusArchived, stored.Status)

	t.Run("missing id", func(t *testing.T) {
		err := svc.ArchiveContactMessage(9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateContactStatus(t *testing.T) {
	svc := newTestContactService(t)

	msg, _, err := svc.SubmitContact(ContactSubmission{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Hi",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateContactStatus(msg.ID, models.ContactStatusReplied))

	var stored models.ContactMessage
	require.NoError(t, svc.DB.First(&stored, msg.ID).Error)
	assert.Equal(t, models.ContactStatusReplied, stored.Status)

	t.Run("invalid status", func(t *testing.T) {
		err := svc.UpdateContactStatus(msg.ID, models.ContactStatus("spam"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestDeleteContactMessage(t *testing.T) {
	svc := newTestContactService(t)

	msg, _, err := svc.SubmitContact(ContactSubmission{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Hi",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContactMessage(msg.ID))

	var count int64
	require.NoError(t, svc.DB.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	t.Run("already deleted", func(t *testing.T) {
		err := svc.DeleteContactMessage(msg.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
