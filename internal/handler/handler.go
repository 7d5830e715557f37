package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"ceremonia/internal/domain"
	"ceremonia/internal/handler/dto"
)

type DraftSvc interface {
	Start(ctx context.Context, event domain.EventSnapshot) (*domain.BookingDraft, error)
	Get(ctx context.Context, eventID string) (*domain.BookingDraft, error)
	Update(ctx context.Context, eventID string, input domain.DraftUpdate) (*domain.BookingDraft, error)
	Advance(ctx context.Context, eventID string) (*domain.BookingDraft, error)
	Retreat(ctx context.Context, eventID string) (*domain.BookingDraft, error)
	Quote(ctx context.Context, eventID string) (*domain.PricingBreakdown, error)
	Cancel(ctx context.Context, eventID string) error
}

type BookingSvc interface {
	Commit(ctx context.Context, eventID string) (*domain.PersistedBooking, error)
	ByReference(ctx context.Context, reference string) (*domain.PersistedBooking, error)
	Current(ctx context.Context) (*domain.PersistedBooking, error)
	RetrySync(ctx context.Context, reference string) (*domain.PersistedBooking, error)
	ResumeSync(ctx context.Context) (*domain.PersistedBooking, error)
}

type Handler struct {
	draftService   DraftSvc
	bookingService BookingSvc
}

func NewHandler(draftService DraftSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		draftService:   draftService,
		bookingService: bookingService,
	}
}

// Drafts

func (h *Handler) StartDraft(c *ginext.Context) {
	var req dto.StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	draft, err := h.draftService.Start(c.Request.Context(), domain.EventSnapshot{
		EventID:   req.EventID,
		Name:      req.Name,
		Date:      req.Date,
		Time:      req.Time,
		Location:  req.Location,
		Image:     req.Image,
		BasePrice: req.BasePrice,
		Currency:  req.Currency,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDraftResponse(draft))
}

func (h *Handler) GetDraft(c *ginext.Context) {
	draft, err := h.draftService.Get(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) UpdateDraft(c *ginext.Context) {
	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	draft, err := h.draftService.Update(c.Request.Context(), c.Param("event_id"), toDraftUpdate(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) AdvanceDraft(c *ginext.Context) {
	draft, err := h.draftService.Advance(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) RetreatDraft(c *ginext.Context) {
	draft, err := h.draftService.Retreat(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) QuoteDraft(c *ginext.Context) {
	breakdown, err := h.draftService.Quote(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBreakdownResponse(*breakdown))
}

func (h *Handler) CancelDraft(c *ginext.Context) {
	if err := h.draftService.Cancel(c.Request.Context(), c.Param("event_id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Bookings

func (h *Handler) CommitBooking(c *ginext.Context) {
	booking, err := h.bookingService.Commit(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.ByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetCurrentBooking(c *ginext.Context) {
	booking, err := h.bookingService.Current(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RetrySync(c *ginext.Context) {
	booking, err := h.bookingService.RetrySync(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ResumeSync(c *ginext.Context) {
	booking, err := h.bookingService.ResumeSync(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if booking == nil {
		c.JSON(http.StatusOK, ginext.H{"status": "nothing pending"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func toDraftUpdate(req dto.UpdateDraftRequest) domain.DraftUpdate {
	var update domain.DraftUpdate

	if req.MainParticipant != nil {
		update.MainParticipant = &domain.MainParticipant{
			Participant:    toParticipant(req.MainParticipant.ParticipantPayload),
			PaymentMethod:  req.MainParticipant.PaymentMethod,
			WhatsAppNumber: req.MainParticipant.WhatsAppNumber,
		}
	}
	update.IsGroupBooking = req.IsGroupBooking
	if req.AdditionalParticipants != nil {
		participants := make([]domain.Participant, 0, len(*req.AdditionalParticipants))
		for _, p := range *req.AdditionalParticipants {
			participants = append(participants, toParticipant(p))
		}
		update.AdditionalParticipants = &participants
	}

	return update
}

func toParticipant(p dto.ParticipantPayload) domain.Participant {
	return domain.Participant{
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone,
		Age:              p.Age,
		EmergencyContact: p.EmergencyContact,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrDraftNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSyncInFlight),
		errors.Is(err, domain.ErrTerminalStep):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAuthRefresh):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
