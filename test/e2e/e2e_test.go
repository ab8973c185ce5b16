// Package e2e drives the HTTP API end to end over the real services, with
// sqlmock standing in for Postgres, miniredis for the question cache and an
// httptest server for Elasticsearch.
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"hopeconnect/internal/assessment"
	"hopeconnect/internal/assessment/scoring"
	"hopeconnect/internal/assessment/store"
	"hopeconnect/internal/certificates"
	"hopeconnect/internal/chat"
	"hopeconnect/internal/common/logger"
	"hopeconnect/internal/directory"
	httpapi "hopeconnect/internal/http"
	"hopeconnect/internal/letters"
	"hopeconnect/internal/models"
	"hopeconnect/internal/notify"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu        sync.Mutex
	published []*sns.PublishInput
}

func (p *recordingPublisher) Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, input)
	return &sns.PublishOutput{MessageId: aws.String("sns-1")}, nil
}

type harness struct {
	server    *httptest.Server
	db        sqlmock.Sqlmock
	redis     *miniredis.Miniredis
	publisher *recordingPublisher
}

const searchResponse = `{
  "hits": {
    "total": {"value": 1},
    "hits": [{"_source": {"id": "leeds-food-1", "location": "leeds", "serviceType": "food",
      "name": "Leeds Kirkgate Kitchen", "address": "Kirkgate Market, Leeds LS2 7HY",
      "phone": "0113 496 0401", "hours": "Tue-Sat 12:00-14:00"}}]
  }
}`

func newHarness(t *testing.T) *harness {
	t.Helper()
	log := logger.NewTestLogger(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	es := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchResponse))
	}))
	t.Cleanup(es.Close)
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{es.URL}})
	require.NoError(t, err)

	publisher := &recordingPublisher{}
	st := store.New(db, log)
	questions := store.NewCachedQuestions(st, rdb, 5*time.Minute, log)

	router := httpapi.NewRouter(log)
	httpapi.NewAPI(httpapi.Deps{
		Assessments:  assessment.NewService(questions, st, notify.NewOutreach(publisher, "arn:aws:sns:eu-west-2:000000000000:outreach", log), log),
		Letters:      letters.NewService(nil, nil, log),
		Chat:         chat.NewResponder(log),
		Directory:    directory.New(directory.Config{IndexName: "hope-services"}, esClient, log),
		Certificates: certificates.NewStore(db, log),
	}, log, 1<<20).Register(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &harness{server: srv, db: mock, redis: mr, publisher: publisher}
}

func (h *harness) call(t *testing.T, method, path, body string) (int, json.RawMessage) {
	t.Helper()
	req, err := http.NewRequest(method, h.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env httpapi.Result[json.RawMessage]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env.Result
}

func questionRows(n int) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "display_order", "text", "is_active"})
	for i := 1; i <= n; i++ {
		rows.AddRow(fmt.Sprintf("q%02d", i), i, fmt.Sprintf("Question %d", i), true)
	}
	return rows
}

func TestAssessmentJourney(t *testing.T) {
	h := newHarness(t)

	// First listing reads Postgres and fills the cache; the second is served
	// from Redis, so only one query is expected.
	h.db.ExpectQuery(regexp.QuoteMeta("FROM assessment_questions")).WillReturnRows(questionRows(5))

	status, body := h.call(t, http.MethodGet, "/api/v1/assessment/questions", "")
	require.Equal(t, http.StatusOK, status)
	var questions []models.Question
	require.NoError(t, json.Unmarshal(body, &questions))
	require.Len(t, questions, 5)
	assert.True(t, h.redis.Exists(store.QuestionCacheKey))

	status, _ = h.call(t, http.MethodGet, "/api/v1/assessment/questions", "")
	require.Equal(t, http.StatusOK, status)

	// Submit five answers of 3: 15/15, severe.
	h.db.ExpectBegin()
	h.db.ExpectExec(regexp.QuoteMeta("INSERT INTO assessments")).WillReturnResult(sqlmock.NewResult(0, 1))
	for i := 0; i < 5; i++ {
		h.db.ExpectExec(regexp.QuoteMeta("INSERT INTO assessment_answers")).WillReturnResult(sqlmock.NewResult(0, 1))
	}
	h.db.ExpectCommit()

	answers := make([]string, 5)
	for i := range answers {
		answers[i] = fmt.Sprintf(`{"questionId":"q%02d","value":3}`, i+1)
	}
	status, body = h.call(t, http.MethodPost, "/api/v1/assessment/submit",
		`{"userId":"user-9","answers":[`+strings.Join(answers, ",")+`]}`)
	require.Equal(t, http.StatusCreated, status)

	var result models.SubmissionResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 15, result.TotalScore)
	assert.Equal(t, 15, result.MaxScore)
	assert.Equal(t, models.SeveritySevere, result.Severity)
	assert.True(t, strings.HasSuffix(result.Interpretation, scoring.Disclaimer))

	require.Len(t, h.publisher.published, 1)
	assert.NotContains(t, aws.ToString(h.publisher.published[0].Message), "q01")

	// Reading it back returns the frozen text.
	h.db.ExpectQuery(regexp.QuoteMeta("FROM assessments")).
		WithArgs(result.AssessmentID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "total_score", "max_score", "severity",
			"interpretation", "recommendations", "is_completed", "created_at",
		}).AddRow(result.AssessmentID, "user-9", 15, 15, "severe", result.Interpretation, result.Recommendations, true, time.Now()))
	h.db.ExpectQuery(regexp.QuoteMeta("FROM assessment_answers")).
		WithArgs(result.AssessmentID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "assessment_id", "question_id", "value", "answer_text"}).
			AddRow("ans-1", result.AssessmentID, "q01", 3, nil))

	status, body = h.call(t, http.MethodGet, "/api/v1/assessment/"+result.AssessmentID, "")
	require.Equal(t, http.StatusOK, status)
	var stored models.AssessmentWithAnswers
	require.NoError(t, json.Unmarshal(body, &stored))
	assert.Equal(t, result.Interpretation, stored.Assessment.Interpretation)

	assert.NoError(t, h.db.ExpectationsWereMet())
}

func TestIncompleteSubmissionWritesNothing(t *testing.T) {
	h := newHarness(t)
	h.db.ExpectQuery(regexp.QuoteMeta("FROM assessment_questions")).WillReturnRows(questionRows(3))

	status, body := h.call(t, http.MethodPost, "/api/v1/assessment/submit",
		`{"answers":[{"questionId":"q01","value":1},{"questionId":"q02","value":2}]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "INCOMPLETE_ASSESSMENT")
	assert.Empty(t, h.publisher.published)
	assert.NoError(t, h.db.ExpectationsWereMet())
}

func TestLetterAndChatAndDirectory(t *testing.T) {
	h := newHarness(t)

	status, body := h.call(t, http.MethodPost, "/api/v1/letters/render", `{
		"languageCode": "fr", "letterType": "employment", "genderCategory": "female",
		"clientName": "Amina Diallo", "goals": "trouver un emploi stable"}`)
	require.Equal(t, http.StatusOK, status)
	var letter models.Letter
	require.NoError(t, json.Unmarshal(body, &letter))
	assert.Equal(t, "fr", letter.Language)
	assert.Contains(t, letter.Body, "elle")
	assert.Contains(t, letter.Body, "Amina Diallo")
	assert.Contains(t, letter.Body, "trouver un emploi stable")

	status, body = h.call(t, http.MethodPost, "/api/v1/chat", `{"message":"any food banks in Leeds?"}`)
	require.Equal(t, http.StatusOK, status)
	var reply models.ChatResponse
	require.NoError(t, json.Unmarshal(body, &reply))
	assert.Equal(t, "leeds", reply.Location)
	assert.Equal(t, chat.Food, reply.ServiceType)

	status, body = h.call(t, http.MethodGet, "/api/v1/directory/search?q=kitchen&location=Leeds", "")
	require.Equal(t, http.StatusOK, status)
	var found models.DirectorySearchResult
	require.NoError(t, json.Unmarshal(body, &found))
	require.Len(t, found.Entries, 1)
	assert.Equal(t, "Leeds Kirkgate Kitchen", found.Entries[0].Name)
}
