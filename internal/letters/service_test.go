package letters

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	apperrors "hopeconnect/internal/common/errors"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	to  string
	err error
}

func (m *stubMailer) Send(ctx context.Context, to string, letter *models.Letter) (string, error) {
	m.to = to
	if m.err != nil {
		return "", m.err
	}
	return "msg-1", nil
}

func TestService_RenderPersists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	svc := NewService(NewStore(db), nil, logger.NewNoOpLogger())
	svc.now = func() time.Time { return created }
	svc.newID = func() string { return "7c1d9a52-6a55-4b36-9f0e-0f5e5d0c2b11" }

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO generated_letters")).
		WithArgs("7c1d9a52-6a55-4b36-9f0e-0f5e5d0c2b11", "de", "services", sqlmock.AnyArg(), sqlmock.AnyArg(),
			sql.NullString{String: "Jonas", Valid: true}, created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	letter, err := svc.Render(context.Background(), models.LetterRequest{
		LanguageCode: "de",
		LetterType:   "services",
		LetterFields: models.LetterFields{ClientName: "Jonas"},
	})
	require.NoError(t, err)
	assert.Equal(t, "7c1d9a52-6a55-4b36-9f0e-0f5e5d0c2b11", letter.ID)
	assert.Equal(t, created, letter.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RenderPersistFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO generated_letters")).
		WillReturnError(errors.New("disk full"))

	svc := NewService(NewStore(db), nil, logger.NewNoOpLogger())
	_, err = svc.Render(context.Background(), models.LetterRequest{LanguageCode: "en", LetterType: "general"})

	stdErr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CategoryPersistence, apperrors.GetErrorCategory(stdErr.Code))
}

func TestService_RenderWithoutStore(t *testing.T) {
	svc := NewService(nil, nil, logger.NewNoOpLogger())
	letter, err := svc.Render(context.Background(), models.LetterRequest{LanguageCode: "zh", LetterType: "housing"})
	require.NoError(t, err)
	assert.Empty(t, letter.ID)
	assert.Equal(t, "zh", letter.Language)
}

func TestService_Deliver(t *testing.T) {
	mailer := &stubMailer{}
	svc := NewService(nil, mailer, logger.NewNoOpLogger())

	d, err := svc.Deliver(context.Background(), models.LetterRequest{LanguageCode: "es", LetterType: "employment"}, "hr@example.org")
	require.NoError(t, err)
	assert.Equal(t, "msg-1", d.MessageID)
	assert.Equal(t, "es", d.Letter.Language)
	assert.Equal(t, "hr@example.org", mailer.to)
}

func TestService_DeliverErrors(t *testing.T) {
	_, err := NewService(nil, nil, logger.NewNoOpLogger()).
		Deliver(context.Background(), models.LetterRequest{LetterType: "general"}, "a@b.org")
	stdErr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeBusinessRule, stdErr.Code)

	mailer := &stubMailer{}
	_, err = NewService(nil, mailer, logger.NewNoOpLogger()).
		Deliver(context.Background(), models.LetterRequest{LetterType: "legal"}, "a@b.org")
	stdErr, ok = apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeUnknownLetterType, stdErr.Code)
	assert.Empty(t, mailer.to, "nothing is sent for an invalid request")
}

func TestTemplates(t *testing.T) {
	infos := Templates()
	require.Len(t, infos, 20)
	assert.Equal(t, "Letter of Support for Housing", infos[0].Title)
}
