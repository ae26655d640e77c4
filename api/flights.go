package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/infygo/internal/domain"
	"github.com/Domenick1991/infygo/internal/idgen"
	"github.com/Domenick1991/infygo/internal/pricing"
	"github.com/Domenick1991/infygo/internal/repository"
	"github.com/Domenick1991/infygo/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
	ids     idgen.Generator
}

type createFlightRequest struct {
	FlightID    string  `json:"flight_id"`
	Airline     string  `json:"airline"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Fare        float64 `json:"fare"`
	JourneyDate string  `json:"journey_date"`
	SeatCount   int     `json:"seat_count"`
}

type flightResponse struct {
	FlightID    string  `json:"flight_id"`
	Airline     string  `json:"airline"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Fare        float64 `json:"fare"`
	DisplayFare float64 `json:"display_fare"`
	PeakSeason  bool    `json:"peak_season"`
	JourneyDate string  `json:"journey_date"`
	SeatCount   int     `json:"seat_count"`
}

func NewFlightHandler(service flights.FlightUseCase, ids idgen.Generator) *FlightHandler {
	return &FlightHandler{service: service, ids: ids}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/search", h.search)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.GetAllFlights(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(list, false))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := domain.ParseDate(req.JourneyDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "journey_date must use yyyy-MM-dd"})
		return
	}

	id := req.FlightID
	if id == "" && h.ids != nil {
		id = h.ids.NextID()
	}
	flight := &domain.Flight{
		ID:          id,
		Airline:     req.Airline,
		Source:      req.Source,
		Destination: req.Destination,
		Fare:        req.Fare,
		JourneyDate: date,
		SeatCount:   req.SeatCount,
	}
	if err := h.service.AddFlight(c.Request.Context(), flight); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(*flight, false))
}

func (h *FlightHandler) search(c *gin.Context) {
	rawDate := c.Query("date")
	var date time.Time
	if rawDate != "" {
		parsed, err := domain.ParseDate(rawDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must use yyyy-MM-dd"})
			return
		}
		date = parsed
	}

	found, err := h.service.SearchFlights(c.Request.Context(), c.Query("source"), c.Query("destination"), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponses(found, pricing.IsPeakSeason(date)))
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(*flight, false))
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsValidation(err), errors.Is(err, domain.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrFlightNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func toResponses(list []domain.Flight, peak bool) []flightResponse {
	out := make([]flightResponse, 0, len(list))
	for _, f := range list {
		out = append(out, toResponse(f, peak))
	}
	return out
}

func toResponse(f domain.Flight, peak bool) flightResponse {
	return flightResponse{
		FlightID:    f.ID,
		Airline:     f.Airline,
		Source:      f.Source,
		Destination: f.Destination,
		Fare:        f.Fare,
		DisplayFare: pricing.DisplayFare(f, peak),
		PeakSeason:  peak,
		JourneyDate: f.JourneyDate.Format(domain.DateLayout),
		SeatCount:   f.SeatCount,
	}
}
