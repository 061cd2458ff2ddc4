package rest

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/barangay-poblacion/console/internal/document"
	"github.com/barangay-poblacion/console/internal/domain"
	"github.com/barangay-poblacion/console/internal/interface/rest/presenter"
	"github.com/barangay-poblacion/console/internal/service"
	"github.com/barangay-poblacion/console/internal/usecase"
)

const sessionHeader = "X-Session-Id"

type Handler struct {
	certificate *usecase.CertificateUsecase
	resident    *usecase.ResidentUsecase
	settings    *usecase.SettingsUsecase
	signal      *service.SignalService
	pages       *document.PageCache
}

func NewHandler(
	certificate *usecase.CertificateUsecase,
	resident *usecase.ResidentUsecase,
	settings *usecase.SettingsUsecase,
	signal *service.SignalService,
	pages *document.PageCache,
) *Handler {
	return &Handler{
		certificate: certificate,
		resident:    resident,
		settings:    settings,
		signal:      signal,
		pages:       pages,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/residents", h.handleResidents)
	e.GET("/api/v1/certificates", h.handleCertificateList)
	e.POST("/api/v1/certificates", h.handleGenerate)
	e.GET("/api/v1/certificates/:id", h.handleCertificateGet)
	e.GET("/api/v1/certificates/:id/document", h.handleDocument)
	e.GET("/api/v1/certificates/:id/print", h.handlePrint)
	e.DELETE("/api/v1/certificates/:id", h.handleDelete)
	e.GET("/api/v1/settings", h.handleSettings)
	e.GET("/realtime", h.handleRealtime)
}

func (h *Handler) handleResidents(c echo.Context) error {
	ctx := c.Request().Context()

	residents, err := h.resident.List(ctx, c.QueryParam("search"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, residents)
}

func (h *Handler) handleCertificateList(c echo.Context) error {
	ctx := c.Request().Context()

	certs, err := h.certificate.List(ctx, c.QueryParam("search"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, certs)
}

type generateRequest struct {
	ResidentID    string `json:"resident_id"`
	Type          string `json:"certificate_type"`
	Purpose       string `json:"purpose"`
	ValidUntil    string `json:"valid_until"`
	BusinessType  string `json:"business_type"`
	ControlNumber string `json:"control_number"`
	AmountPaid    *int   `json:"amount_paid"`
	Kagawad1      string `json:"verified_by_kagawad1"`
	Kagawad2      string `json:"verified_by_kagawad2"`
}

// draft folds the flat request into the type's own variant, dropping fields
// that do not belong to the requested certificate type.
func (r generateRequest) draft() domain.CertificateDraft {
	switch domain.CertificateType(r.Type) {
	case domain.TypeBarangayClearance:
		return domain.ClearanceDraft{AmountPaid: r.AmountPaid}
	case domain.TypeIndigency:
		return domain.IndigencyDraft{}
	case domain.TypeResidency:
		return domain.ResidencyDraft{
			Kagawad1:   r.Kagawad1,
			Kagawad2:   r.Kagawad2,
			AmountPaid: r.AmountPaid,
		}
	case domain.TypeBusinessPermit:
		return domain.BusinessPermitDraft{
			BusinessType:  r.BusinessType,
			ControlNumber: r.ControlNumber,
			AmountPaid:    r.AmountPaid,
		}
	default:
		return nil
	}
}

func (h *Handler) handleGenerate(c echo.Context) error {
	ctx := c.Request().Context()

	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	sessionKey := c.Request().Header.Get(sessionHeader)
	if sessionKey == "" {
		sessionKey = c.RealIP()
	}

	cert, err := h.certificate.Generate(ctx, sessionKey, usecase.GenerateInput{
		ResidentID: req.ResidentID,
		Purpose:    req.Purpose,
		ValidUntil: req.ValidUntil,
		Draft:      req.draft(),
	})
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.Created(c, cert)
}

func (h *Handler) handleCertificateGet(c echo.Context) error {
	ctx := c.Request().Context()

	cert, err := h.certificate.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, cert)
}

func (h *Handler) handleDocument(c echo.Context) error {
	ctx := c.Request().Context()

	cert, err := h.certificate.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	settings, err := h.settings.Get(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, document.Render(cert, settings))
}

func (h *Handler) handlePrint(c echo.Context) error {
	ctx := c.Request().Context()

	cert, err := h.certificate.Get(ctx, c.Param("id"))
	if err != nil {
		return presenter.Error(c, err)
	}
	settings, err := h.settings.Get(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}

	view := document.Render(cert, settings)
	if view == nil {
		return presenter.NotFound(c, "no printable template for this certificate type")
	}

	etag := document.Fingerprint(view)
	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}

	page, cached := h.pages.Get(etag)
	if !cached {
		page, err = document.RenderHTML(view)
		if err != nil {
			return presenter.Error(c, err)
		}
		h.pages.Set(etag, page)
	}

	c.Response().Header().Set("ETag", etag)
	return c.HTMLBlob(http.StatusOK, page)
}

func (h *Handler) handleDelete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.certificate.Delete(ctx, c.Param("id")); err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.settings.Get(ctx)
	if err != nil {
		return presenter.Error(c, err)
	}
	return presenter.OK(c, settings)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type realtimeRequest struct {
	Type        string   `json:"type"`
	Collections []string `json:"collections"`
}

// handleRealtime streams collection invalidation events so open consoles
// can refetch instead of polling. A client may narrow the stream with a
// {"type":"listen","collections":[...]} message; the default is everything.
func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer ws.Close()

	ctx := c.Request().Context()

	events, cancel := h.signal.Subscribe()
	defer cancel()

	filter := make(chan []string, 1)
	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			var req realtimeRequest
			if err := ws.ReadJSON(&req); err != nil {
				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}
				return
			}

			switch req.Type {
			case "listen":
				select {
				case filter <- req.Collections:
				default:
				}
			case "h": // heartbeat
			default:
				slog.InfoContext(
					ctx, "Unknown request type",
					slog.String("type", req.Type),
					slog.String("module", "socket"),
				)
			}
		}
	}()

	var collections []string
	for {
		select {
		case <-quit:
			return nil
		case <-ctx.Done():
			return nil
		case collections = <-filter:
		case event := <-events:
			if len(collections) > 0 && !slices.Contains(collections, event.Collection) {
				continue
			}
			if err := ws.WriteJSON(event); err != nil {
				return nil
			}
		}
	}
}
