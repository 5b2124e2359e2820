package controllerImp

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"elevare/pkg/ai"
	"elevare/pkg/roadmap/controller"
	"elevare/pkg/roadmap/export"
	"elevare/pkg/roadmap/service"
)

type RoadmapCtrl struct{ svc service.RoadmapService }

func New(svc service.RoadmapService) controller.RoadmapController { return &RoadmapCtrl{svc: svc} }

type generateReq struct {
	Career string `json:"career"`
	UserID string `json:"userId"`
}

func (h *RoadmapCtrl) Generate(c echo.Context) error {
	var req generateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "bad json"})
	}
	m, err := h.svc.Generate(c.Request().Context(), req.Career, req.UserID)
	if err != nil {
		if service.IsValidation(err) {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": userMessage(err)})
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "data": m})
}

// StreamGenerate is the legacy mode: fragments are relayed to the client as
// SSE data frames in arrival order, then a terminal [DONE] payload or error
// event. Client disconnect cancels the request context and stops the relay.
func (h *RoadmapCtrl) StreamGenerate(c echo.Context) error {
	career := c.QueryParam("career")
	userID := c.QueryParam("userId")
	streamID := c.QueryParam("id")
	if streamID == "" {
		streamID = uuid.NewString()
	}
	if strings.TrimSpace(career) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "career is required"})
	}
	if strings.TrimSpace(userID) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "userId is required"})
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	log.Printf("[stream] %s start career=%q", streamID, career)

	ctx := c.Request().Context()
	m, err := h.svc.StreamGenerate(ctx, career, userID, func(chunk string) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		writeFrame(res, "", chunk)
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			// client went away; nobody is listening for a terminal frame
			log.Printf("[stream] %s cancelled by client", streamID)
			return nil
		}
		log.Printf("[stream] %s failed: %v", streamID, err)
		writeFrame(res, "error", userMessage(err))
		return nil
	}
	writeFrame(res, "", "[DONE]")
	log.Printf("[stream] %s done roadmap=%d steps=%d", streamID, m.RoadmapID, len(m.Steps))
	return nil
}

func (h *RoadmapCtrl) ListByUser(c echo.Context) error {
	userID := c.QueryParam("userId")
	if strings.TrimSpace(userID) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "userId is required"})
	}
	list, err := h.svc.ListByUser(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": list})
}

func (h *RoadmapCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return notFound(c)
	}
	m, err := h.svc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": m})
}

func (h *RoadmapCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return notFound(c)
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "Roadmap deleted successfully"})
}

func (h *RoadmapCtrl) Export(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return notFound(c)
	}
	m, err := h.svc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": err.Error()})
	}
	f, err := export.Workbook(m)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "export failed"})
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": "export failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, export.Filename(m)))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]any{"success": false, "message": "Roadmap not found"})
}

func userMessage(err error) string {
	if errors.Is(err, service.ErrUnparsable) {
		return "The AI response could not be turned into a roadmap. Please try again."
	}
	return ai.UserMessage(err)
}

// writeFrame emits one SSE event. Multi-line payloads become multiple data:
// lines of the same event; receivers rejoin them with \n.
func writeFrame(res *echo.Response, event, payload string) {
	if event != "" {
		fmt.Fprintf(res, "event: %s\n", event)
	}
	for _, line := range strings.Split(payload, "\n") {
		fmt.Fprintf(res, "data: %s\n", line)
	}
	fmt.Fprint(res, "\n")
	res.Flush()
}
