package hazardforms

import (
	"context"
	"log"

	"Backend-HazardAssessment/src/models"
	"Backend-HazardAssessment/src/services/hazardforms/email"
)

// Service คือ pipeline หลักของ form intake:
// validate → assign form number → persist → render → notify
type Service struct {
	store    FormStore
	mailer   email.MailSender
	notifyTo string
}

// NewService wires the pipeline with its collaborators. NotifyTo is the fixed
// operations address; it is process configuration, never taken from a request.
func NewService(store FormStore, mailer email.MailSender, notifyTo string) *Service {
	return &Service{
		store:    store,
		mailer:   mailer,
		notifyTo: notifyTo,
	}
}

// Submit runs one submission through the pipeline and returns the persisted
// record. The stages run strictly in order; nothing is written before
// validation passes, and no email is sent for a record that failed to persist.
//
// Notification is best-effort: once the record is durable, a render or send
// failure is logged and the submission still succeeds. A persisted-but-
// unnotified form is recoverable from the store; a lost submission is not.
func (s *Service) Submit(ctx context.Context, form *models.HazardFormSubmission) (*models.HazardFormRecord, error) {
	if err := ValidateSubmission(form); err != nil {
		return nil, err
	}
	form.Normalize()

	record := &models.HazardFormRecord{
		FormNumber:           AssignFormNumber(form.RepresentativeCompany),
		HazardFormSubmission: *form,
	}

	if err := s.store.Save(ctx, record); err != nil {
		return nil, err
	}

	html, err := email.RenderHazardFormHTML(record)
	if err != nil {
		log.Println("❌ Error rendering hazard form email:", err)
		return record, nil
	}

	subject := "Hazard Assessment Form " + record.FormNumber
	if err := s.mailer.Send(s.notifyTo, subject, html); err != nil {
		log.Println("❌ Error sending hazard form email:", err)
		return record, nil
	}

	log.Println("✅ Hazard form email sent:", record.FormNumber)
	return record, nil
}
