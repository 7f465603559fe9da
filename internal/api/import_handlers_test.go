package api_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/memoflash/memoflash/internal/api"
	"github.com/memoflash/memoflash/internal/deckfile"
	"github.com/memoflash/memoflash/internal/models"
	"github.com/memoflash/memoflash/internal/services"
	"github.com/memoflash/memoflash/internal/testutil/mocks"
)

func newImportTestServer(profiles *mocks.MockProfileRepository, decks *mocks.MockDeckRepository, queue *mocks.MockJobQueue) http.Handler {
	srv := &api.Server{
		ProfileService: services.NewProfileService(profiles),
		DeckService:    services.NewDeckService(decks),
		JobQueue:       queue,
	}
	return srv.Routes()
}

func multipartUpload(t *testing.T, filename, contents string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestImportDeckQueuesParsedEntries(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	decks := new(mocks.MockDeckRepository)
	queue := new(mocks.MockJobQueue)
	handler := newImportTestServer(profiles, decks, queue)

	profiles.On("Get", mock.Anything, int64(1)).Return(&models.Profile{ID: 1, Name: "tester"}, nil)
	decks.On("Get", mock.Anything, int64(3)).Return(&models.Deck{ID: 3, ProfileID: 1}, nil)
	queue.On("EnqueueImport", int64(3), int64(1), mock.MatchedBy(func(entries []deckfile.Entry) bool {
		return len(entries) == 2 && entries[0].Front == "hola" && entries[1].Back == "goodbye"
	})).Return(nil)

	body, contentType := multipartUpload(t, "spanish.csv", "hola,hello\nadios,goodbye\n")
	req := httptest.NewRequest(http.MethodPost, "/api/decks/3/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Profile-ID", "1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"queued"`)
	queue.AssertExpectations(t)
}

func TestImportDeckRejectsMalformedFile(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	decks := new(mocks.MockDeckRepository)
	queue := new(mocks.MockJobQueue)
	handler := newImportTestServer(profiles, decks, queue)

	profiles.On("Get", mock.Anything, int64(1)).Return(&models.Profile{ID: 1, Name: "tester"}, nil)
	decks.On("Get", mock.Anything, int64(3)).Return(&models.Deck{ID: 3, ProfileID: 1}, nil)

	// A record with an empty front is a parse error, not a partial import.
	body, contentType := multipartUpload(t, "bad.csv", ",hello\n")
	req := httptest.NewRequest(http.MethodPost, "/api/decks/3/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Profile-ID", "1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	queue.AssertNotCalled(t, "EnqueueImport")
}

func TestImportDeckForeignDeckIsNotFound(t *testing.T) {
	profiles := new(mocks.MockProfileRepository)
	decks := new(mocks.MockDeckRepository)
	queue := new(mocks.MockJobQueue)
	handler := newImportTestServer(profiles, decks, queue)

	profiles.On("Get", mock.Anything, int64(1)).Return(&models.Profile{ID: 1, Name: "tester"}, nil)
	decks.On("Get", mock.Anything, int64(3)).Return(&models.Deck{ID: 3, ProfileID: 99}, nil)

	body, contentType := multipartUpload(t, "spanish.csv", "hola,hello\n")
	req := httptest.NewRequest(http.MethodPost, "/api/decks/3/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Profile-ID", "1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	queue.AssertNotCalled(t, "EnqueueImport")
}
