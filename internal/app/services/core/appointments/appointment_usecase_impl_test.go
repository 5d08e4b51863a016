package appointments

import (
	"context"
	"errors"
	"sefasevim-service/internal/app/config"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
	"sefasevim-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	created       *models.Appointment
	byID          *models.Appointment
	updatedStatus string
}

func (f *fakeAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (string, error) {
	f.created = appointment
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return f.byID, nil
}

func (f *fakeAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	f.updatedStatus = status
	return nil
}

func (f *fakeAppointmentRepository) CountAll(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeAppointmentRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}

type fakeAvailabilityUsecase struct {
	offered bool
	err     error
}

func (f *fakeAvailabilityUsecase) ResolveForDate(ctx context.Context, date time.Time) (*responses.Availability, error) {
	return nil, nil
}

func (f *fakeAvailabilityUsecase) OffersSlot(ctx context.Context, date time.Time, slot string) (bool, error) {
	return f.offered, f.err
}

type fakeMailerService struct {
	payloads []*contracts.EmailPayload
}

func (f *fakeMailerService) EnqueueEmail(ctx context.Context, payload *contracts.EmailPayload) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

func newTestAppointmentUsecase(repo *fakeAppointmentRepository, av *fakeAvailabilityUsecase, mailer *fakeMailerService) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: repo,
		AvailabilityUsecase:   av,
		MailerService:         mailer,
		InternalConfig: &config.InternalConfig{
			App: config.App{
				Timezone:               "Europe/Istanbul",
				OwnerNotificationEmail: "owner@example.com",
			},
		},
		Log: zap.NewNop(),
	}
}

func validCreateRequest() *requests.CreateAppointment {
	return &requests.CreateAppointment{
		Name:  "Ayşe Yılmaz",
		Email: "ayse@example.com",
		Phone: "+905551234567",
		Date:  "2025-01-06",
		Time:  "14:00",
		Notes: "İlk görüşme",
	}
}

func TestAppointmentUsecase_CreateAppointment(t *testing.T) {
	repo := &fakeAppointmentRepository{}
	mailer := &fakeMailerService{}
	uc := newTestAppointmentUsecase(repo, &fakeAvailabilityUsecase{offered: true}, mailer)

	result, err := uc.CreateAppointment(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, constvars.AppointmentStatusPending, result.Status)
	assert.Equal(t, constvars.AppointmentStatusPending, repo.created.Status)
	assert.Equal(t, "Ayşe Yılmaz", repo.created.ClientName)

	location, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	expected := time.Date(2025, time.January, 6, 14, 0, 0, 0, location)
	assert.True(t, repo.created.AppointmentDate.Equal(expected))

	require.Len(t, mailer.payloads, 1)
	assert.Equal(t, "owner@example.com", mailer.payloads[0].To)
	assert.Equal(t, constvars.EmailNewAppointmentSubject, mailer.payloads[0].Subject)
}

func TestAppointmentUsecase_CreateAppointment_SlotNotOffered(t *testing.T) {
	repo := &fakeAppointmentRepository{}
	mailer := &fakeMailerService{}
	uc := newTestAppointmentUsecase(repo, &fakeAvailabilityUsecase{offered: false}, mailer)

	_, err := uc.CreateAppointment(context.Background(), validCreateRequest())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)

	assert.Nil(t, repo.created, "a rejected slot must not be persisted")
	assert.Empty(t, mailer.payloads)
}

func TestAppointmentUsecase_CreateAppointment_InvalidDate(t *testing.T) {
	uc := newTestAppointmentUsecase(&fakeAppointmentRepository{}, &fakeAvailabilityUsecase{offered: true}, &fakeMailerService{})

	request := validCreateRequest()
	request.Date = "06.01.2025"

	_, err := uc.CreateAppointment(context.Background(), request)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestAppointmentUsecase_CreateAppointment_AvailabilityError(t *testing.T) {
	uc := newTestAppointmentUsecase(&fakeAppointmentRepository{}, &fakeAvailabilityUsecase{err: errors.New("boom")}, &fakeMailerService{})

	_, err := uc.CreateAppointment(context.Background(), validCreateRequest())
	assert.Error(t, err)
}

func TestAppointmentUsecase_UpdateStatus(t *testing.T) {
	existing := &models.Appointment{
		ID:     primitive.NewObjectID(),
		Status: constvars.AppointmentStatusPending,
	}

	t.Run("existing appointment", func(t *testing.T) {
		repo := &fakeAppointmentRepository{byID: existing}
		uc := newTestAppointmentUsecase(repo, &fakeAvailabilityUsecase{}, &fakeMailerService{})

		err := uc.UpdateStatus(context.Background(), existing.ID.Hex(), &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusApproved,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusApproved, repo.updatedStatus)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo, &fakeAvailabilityUsecase{}, &fakeMailerService{})

		err := uc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusApproved,
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
