package hazardforms

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-HazardAssessment/src/models"
)

type fakeStore struct {
	saved []*models.HazardFormRecord
	err   error
}

func (f *fakeStore) Save(ctx context.Context, record *models.HazardFormRecord) error {
	if f.err != nil {
		return f.err
	}
	record.ID = primitive.NewObjectID()
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	stored := *record
	f.saved = append(f.saved, &stored)
	return nil
}

type sentMail struct {
	To      string
	Subject string
	HTML    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(to, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, HTML: html})
	return nil
}

func validSubmission() models.HazardFormSubmission {
	return models.HazardFormSubmission{
		Company:        "Acme",
		Location:       "Site 7",
		JobDescription: "Pipe repair",
		Date:           "2024-05-01",
		Hazards:        []string{"Falling objects"},
		HazardControls: map[string][]string{
			"Falling objects": {"Hard hat", "Barricade area"},
		},
		PPE: []string{"Gloves", "Goggles"},
	}
}

func TestSubmitValidForm(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{}
	service := NewService(store, mailer, "ops@example.com")

	form := validSubmission()
	record, err := service.Submit(context.Background(), &form)
	require.NoError(t, err)
	require.NotNil(t, record)

	// Exactly one record persisted, with a prefix-coded form number.
	require.Len(t, store.saved, 1)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z]{1,3}-\d+$`), record.FormNumber)
	assert.False(t, record.ID.IsZero())
	assert.Equal(t, record.FormNumber, store.saved[0].FormNumber)

	// The rendered form goes to the fixed operations address.
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ops@example.com", mailer.sent[0].To)
	assert.Equal(t, "Hazard Assessment Form "+record.FormNumber, mailer.sent[0].Subject)
	assert.Contains(t, mailer.sent[0].HTML, "Falling objects")
}

func TestSubmitMissingRequiredFields(t *testing.T) {
	cases := map[string]func(*models.HazardFormSubmission){
		"company":        func(f *models.HazardFormSubmission) { f.Company = "" },
		"location":       func(f *models.HazardFormSubmission) { f.Location = "" },
		"jobDescription": func(f *models.HazardFormSubmission) { f.JobDescription = "" },
		"date":           func(f *models.HazardFormSubmission) { f.Date = "" },
	}

	for field, clear := range cases {
		t.Run(field, func(t *testing.T) {
			store := &fakeStore{}
			mailer := &fakeMailer{}
			service := NewService(store, mailer, "ops@example.com")

			form := validSubmission()
			clear(&form)

			record, err := service.Submit(context.Background(), &form)
			assert.ErrorIs(t, err, ErrMissingRequiredFields)
			assert.Nil(t, record)

			// Rejected before any side effect.
			assert.Empty(t, store.saved)
			assert.Empty(t, mailer.sent)
		})
	}
}

func TestSubmitDefaultsOptionalFields(t *testing.T) {
	store := &fakeStore{}
	service := NewService(store, &fakeMailer{}, "ops@example.com")

	form := models.HazardFormSubmission{
		Company:        "Acme",
		Location:       "Site 7",
		JobDescription: "Pipe repair",
		Date:           "2024-05-01",
	}

	_, err := service.Submit(context.Background(), &form)
	require.NoError(t, err)

	require.Len(t, store.saved, 1)
	saved := store.saved[0]
	assert.NotNil(t, saved.Hazards)
	assert.NotNil(t, saved.HazardControls)
	assert.NotNil(t, saved.PPE)
	assert.NotNil(t, saved.Representatives)
}

func TestSubmitNoDeduplication(t *testing.T) {
	store := &fakeStore{}
	service := NewService(store, &fakeMailer{}, "ops@example.com")

	first := validSubmission()
	second := validSubmission()

	recordA, err := service.Submit(context.Background(), &first)
	require.NoError(t, err)
	recordB, err := service.Submit(context.Background(), &second)
	require.NoError(t, err)

	// Same payload twice means two records, no dedup.
	assert.Len(t, store.saved, 2)
	assert.NotEqual(t, recordA.ID, recordB.ID)
}

func TestSubmitStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection reset")}
	mailer := &fakeMailer{}
	service := NewService(store, mailer, "ops@example.com")

	form := validSubmission()
	record, err := service.Submit(context.Background(), &form)
	assert.Error(t, err)
	assert.Nil(t, record)

	// A record that failed to persist must never be emailed.
	assert.Empty(t, mailer.sent)
}

func TestSubmitMailerFailureIsBestEffort(t *testing.T) {
	store := &fakeStore{}
	mailer := &fakeMailer{err: errors.New("smtp unreachable")}
	service := NewService(store, mailer, "ops@example.com")

	form := validSubmission()
	record, err := service.Submit(context.Background(), &form)

	// The record is durable, so the submission still succeeds.
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Len(t, store.saved, 1)
	assert.NotEmpty(t, record.FormNumber)
}
