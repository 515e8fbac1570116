package models

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Company   *string   `bson:"company" json:"company"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt Timestamp `bson:"created_at" json:"created_at"`
	Read      bool      `bson:"read" json:"read"`
}

// ContactMessageCreate is the body of a contact form submission.
type ContactMessageCreate struct {
	Name    string  `json:"name" validate:"min=1,max=100"`
	Email   string  `json:"email" validate:"min=5,max=255"`
	Company *string `json:"company" validate:"omitempty,max=200"`
	Subject string  `json:"subject" validate:"min=1,max=200"`
	Message string  `json:"message" validate:"min=10,max=5000"`
}

// ToMessage builds the stored message: unread, stamped now.
func (c ContactMessageCreate) ToMessage(id string) ContactMessage {
	return ContactMessage{
		ID:        id,
		Name:      c.Name,
		Email:     c.Email,
		Company:   c.Company,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: Now(),
		Read:      false,
	}
}

// ContactMessageResponse acknowledges a submission.
type ContactMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}
