package controllerImp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"elevare/entities"
	"elevare/pkg/ai"
	"elevare/pkg/roadmap/service"
)

type fakeService struct {
	generated *entities.Roadmap
	genErr    error
	fragments []string
	streamErr error
	list      []entities.Roadmap
	found     *entities.Roadmap
	findErr   error
	deleteErr error
	deleted   []uint
}

func (f *fakeService) Generate(ctx context.Context, career, userID string) (*entities.Roadmap, error) {
	return f.generated, f.genErr
}

func (f *fakeService) StreamGenerate(ctx context.Context, career, userID string, onChunk func(string) error) (*entities.Roadmap, error) {
	for _, fr := range f.fragments {
		if err := onChunk(fr); err != nil {
			return f.generated, err
		}
	}
	return f.generated, f.streamErr
}

func (f *fakeService) ListByUser(userID string) ([]entities.Roadmap, error) { return f.list, nil }

func (f *fakeService) GetByID(id uint) (*entities.Roadmap, error) { return f.found, f.findErr }

func (f *fakeService) Delete(id uint) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	var rd *strings.Reader
	if body != "" {
		rd = strings.NewReader(body)
	} else {
		rd = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	require.NoError(t, h(c))
	var envelope map[string]any
	if strings.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func TestGenerateCreated(t *testing.T) {
	m := &entities.Roadmap{RoadmapID: 9, Career: "Data Scientist", Status: entities.RoadmapStatusCompleted}
	h := New(&fakeService{generated: m})

	rec, env := doJSON(t, h.Generate, http.MethodPost, "/api/roadmap/generate",
		`{"career":"Data Scientist","userId":"u1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, env["success"])
	data := env["data"].(map[string]any)
	assert.Equal(t, float64(9), data["id"])
}

func TestGenerateValidationIs400(t *testing.T) {
	h := New(&fakeService{genErr: service.ErrCareerRequired})

	rec, env := doJSON(t, h.Generate, http.MethodPost, "/api/roadmap/generate", `{"userId":"u1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, env["success"])
}

func TestGenerateUpstreamFailureSurfacesUserMessage(t *testing.T) {
	h := New(&fakeService{genErr: ai.ClassifyUpstream(errors.New("Error 429: quota"))})

	rec, env := doJSON(t, h.Generate, http.MethodPost, "/api/roadmap/generate",
		`{"career":"X","userId":"u1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "API quota exceeded. Please try again later.", env["message"])
}

func TestGenerateUnparsableMessage(t *testing.T) {
	h := New(&fakeService{genErr: service.ErrUnparsable})

	rec, env := doJSON(t, h.Generate, http.MethodPost, "/api/roadmap/generate",
		`{"career":"X","userId":"u1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, env["message"], "could not be turned into a roadmap")
}

func TestStreamGenerateFramesAndDone(t *testing.T) {
	h := New(&fakeService{
		generated: &entities.Roadmap{RoadmapID: 3},
		fragments: []string{"alpha", "beta\ngamma"},
	})

	rec, _ := doJSON(t, h.StreamGenerate, http.MethodGet, "/api/roadmap/generate?career=X&userId=u1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	// a fragment containing a newline becomes two data lines of one event
	assert.Equal(t,
		"data: alpha\n\n"+
			"data: beta\ndata: gamma\n\n"+
			"data: [DONE]\n\n",
		body)
}

func TestStreamGenerateErrorEvent(t *testing.T) {
	h := New(&fakeService{streamErr: ai.ClassifyUpstream(errors.New("503 overloaded"))})

	rec, _ := doJSON(t, h.StreamGenerate, http.MethodGet, "/api/roadmap/generate?career=X&userId=u1", "")

	assert.Equal(t, http.StatusOK, rec.Code) // headers were already sent
	assert.Contains(t, rec.Body.String(), "event: error\n")
	assert.Contains(t, rec.Body.String(), "data: The AI model is overloaded. Please try again in a moment.\n")
	assert.NotContains(t, rec.Body.String(), "[DONE]")
}

func TestStreamGenerateMissingCareer(t *testing.T) {
	h := New(&fakeService{})

	rec, env := doJSON(t, h.StreamGenerate, http.MethodGet, "/api/roadmap/generate?userId=u1", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, env["success"])
}

func TestGetNotFound(t *testing.T) {
	h := New(&fakeService{findErr: gorm.ErrRecordNotFound})

	rec, env := doJSON(t, h.Get, http.MethodGet, "/api/roadmap/99", "", "id", "99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Roadmap not found", env["message"])
}

func TestGetNonNumericIDNotFound(t *testing.T) {
	h := New(&fakeService{})

	rec, _ := doJSON(t, h.Get, http.MethodGet, "/api/roadmap/abc", "", "id", "abc")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteOKThenNotFound(t *testing.T) {
	f := &fakeService{}
	h := New(f)

	rec, env := doJSON(t, h.Delete, http.MethodDelete, "/api/roadmap/5", "", "id", "5")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Roadmap deleted successfully", env["message"])
	assert.Equal(t, []uint{5}, f.deleted)

	f.deleteErr = gorm.ErrRecordNotFound
	rec, _ = doJSON(t, h.Delete, http.MethodDelete, "/api/roadmap/5", "", "id", "5")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListByUserRequiresUserID(t *testing.T) {
	h := New(&fakeService{})

	rec, _ := doJSON(t, h.ListByUser, http.MethodGet, "/api/roadmap/user", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := doJSON(t, h.ListByUser, http.MethodGet, "/api/roadmap/user?userId=u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, env["success"])
}

func TestExportReturnsWorkbook(t *testing.T) {
	h := New(&fakeService{found: &entities.Roadmap{
		RoadmapID: 12,
		Career:    "Data Scientist",
		Steps:     []entities.RoadmapStep{{Title: "Statistics", Description: "Probability"}},
	}})

	rec, _ := doJSON(t, h.Export, http.MethodGet, "/api/roadmap/12/export", "", "id", "12")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "roadmap-12.xlsx")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "spreadsheetml")
	assert.NotEmpty(t, rec.Body.Bytes())
}
