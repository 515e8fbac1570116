package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"huile-de-sfax/models"
	"huile-de-sfax/store"
	"huile-de-sfax/utils"
)

const contactThanks = "Thank you for your message. We will get back to you soon!"

// defaultNotifyTimeout is how long a submission waits for the notification mail.
const defaultNotifyTimeout = 5 * time.Second

// ContactNotifier is told about every stored contact message.
type ContactNotifier interface {
	SendContactNotification(toEmail string, message models.ContactMessage) error
}

// ContactController handles the contact form and the admin inbox
type ContactController struct {
	Collection store.Collection
	validator  *utils.Validator
	logger     *zap.Logger
	notifier      ContactNotifier
	notifyTo      string
	notifyTimeout time.Duration
}

// NewContactController creates a new ContactController. notifier may be nil.
func NewContactController(db store.Database, validator *utils.Validator, logger *zap.Logger, notifier ContactNotifier, notifyTo string) *ContactController {
	return &ContactController{
		Collection:    db.Collection(store.ContactMessages),
		validator:     validator,
		logger:        logger,
		notifier:      notifier,
		notifyTo:      notifyTo,
		notifyTimeout: defaultNotifyTimeout,
	}
}

// WithNotifyTimeout changes how long a submission waits for the notification.
func (cc *ContactController) WithNotifyTimeout(timeout time.Duration) *ContactController {
	cc.notifyTimeout = timeout
	return cc
}

// SubmitContact stores a contact form submission
func (cc *ContactController) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var input models.ContactMessageCreate
	if !decodeAndValidate(w, r, cc.validator, &input) {
		return
	}

	message := input.ToMessage(utils.NewID())

	ctx, cancel := storeContext(r)
	defer cancel()
	if err := cc.Collection.InsertOne(ctx, message); err != nil {
		cc.logger.Error("Error submitting contact form", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	cc.notify(r.Context(), message)

	writeJSON(w, http.StatusOK, models.ContactMessageResponse{
		Success: true,
		Message: contactThanks,
		ID:      message.ID,
	})
}

// notify sends the notification without letting the mailer hold the response:
// after notifyTimeout the handler answers and the send finishes on its own.
func (cc *ContactController) notify(ctx context.Context, message models.ContactMessage) {
	if cc.notifier == nil || cc.notifyTo == "" {
		return
	}

	sent := make(chan error, 1)
	go func() {
		sent <- cc.notifier.SendContactNotification(cc.notifyTo, message)
	}()

	timer := time.NewTimer(cc.notifyTimeout)
	defer timer.Stop()

	select {
	case err := <-sent:
		if err != nil {
			cc.logger.Warn("contact notification failed",
				zap.String("message_id", message.ID),
				zap.Error(err),
			)
		}
	case <-timer.C:
		cc.logger.Warn("contact notification still pending",
			zap.String("message_id", message.ID),
			zap.Duration("waited", cc.notifyTimeout),
		)
	case <-ctx.Done():
	}
}

// GetMessages lists contact messages, newest first (Admin only)
func (cc *ContactController) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()

	messages := []models.ContactMessage{}
	newestFirst := store.FindOptions{SortField: "created_at", SortOrder: store.Descending}
	if err := cc.Collection.Find(ctx, bson.M{}, newestFirst, &messages); err != nil {
		internalError(w, cc.logger, "list contact messages", err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// MarkRead flags a message as read (Admin only)
func (cc *ContactController) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := storeContext(r)
	defer cancel()

	matched, err := cc.Collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"read": true})
	if err != nil {
		internalError(w, cc.logger, "mark message read", err)
		return
	}
	if matched == 0 {
		writeDetail(w, http.StatusNotFound, "Message not found")
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "Message marked as read"})
}

// DeleteMessage removes a message (Admin only)
func (cc *ContactController) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := storeContext(r)
	defer cancel()

	deleted, err := cc.Collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		internalError(w, cc.logger, "delete message", err)
		return
	}
	if deleted == 0 {
		writeDetail(w, http.StatusNotFound, "Message not found")
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "Message deleted"})
}
