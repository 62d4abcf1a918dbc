package care

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vecear/Catlog-sub000/internal/domain/pets"
	"github.com/vecear/Catlog-sub000/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/care", func(cr chi.Router) {
		cr.Post("/events", createEventHandler(svc, petsSvc))
		cr.Get("/events", listEventsHandler(svc, petsSvc))
		cr.Patch("/events/{eventID}", updateEventHandler(svc, petsSvc))
		cr.Delete("/events/{eventID}", deleteEventHandler(svc, petsSvc))

		cr.Get("/day-status", dayStatusHandler(svc, petsSvc))
		cr.Get("/scoreboard", scoreboardHandler(svc, petsSvc))
		cr.Get("/series", seriesHandler(svc, petsSvc))
		cr.Get("/log", monthLogHandler(svc, petsSvc))
	})
}

// actionsPayload mirrors the Actions flags on the wire.
type actionsPayload struct {
	Food        bool `json:"food"`
	Water       bool `json:"water"`
	Litter      bool `json:"litter"`
	Grooming    bool `json:"grooming"`
	Medication  bool `json:"medication"`
	Supplements bool `json:"supplements"`
	Deworming   bool `json:"deworming"`
	Bath        bool `json:"bath"`
}

func (p actionsPayload) toDomain() Actions {
	return Actions{
		Food:        p.Food,
		Water:       p.Water,
		Litter:      p.Litter,
		Grooming:    p.Grooming,
		Medication:  p.Medication,
		Supplements: p.Supplements,
		Deworming:   p.Deworming,
		Bath:        p.Bath,
	}
}

func fromDomainActions(a Actions) actionsPayload {
	return actionsPayload{
		Food:        a.Food,
		Water:       a.Water,
		Litter:      a.Litter,
		Grooming:    a.Grooming,
		Medication:  a.Medication,
		Supplements: a.Supplements,
		Deworming:   a.Deworming,
		Bath:        a.Bath,
	}
}

// createEventRequest is the body for logging a care event. Timestamps are
// epoch milliseconds, the format the mobile clients persist.
type createEventRequest struct {
	OccurredAt  int64          `json:"occurred_at"`
	Author      string         `json:"author"`
	Actions     actionsPayload `json:"actions"`
	StoolType   string         `json:"stool_type" enums:"FORMED,UNFORMED,DIARRHEA"`
	UrineStatus string         `json:"urine_status" enums:"HAS_URINE,NO_URINE"`
	LitterClean bool           `json:"litter_clean"`
	Weight      *float64       `json:"weight"`
	Note        string         `json:"note"`
}

func (req createEventRequest) toInput() LogInput {
	in := LogInput{
		Author:      req.Author,
		Actions:     req.Actions.toDomain(),
		StoolType:   StoolType(strings.TrimSpace(req.StoolType)),
		UrineStatus: UrineStatus(strings.TrimSpace(req.UrineStatus)),
		LitterClean: req.LitterClean,
		Note:        req.Note,
	}
	if req.OccurredAt != 0 {
		in.OccurredAt = time.UnixMilli(req.OccurredAt)
	}
	if req.Weight != nil {
		w := decimal.NewFromFloat(*req.Weight)
		in.Weight = &w
	}
	return in
}

// eventResponse is a care event as returned by the API.
type eventResponse struct {
	ID          string         `json:"id"`
	PetID       string         `json:"pet_id"`
	OccurredAt  int64          `json:"occurred_at"`
	RecordedAt  int64          `json:"recorded_at"`
	Author      string         `json:"author"`
	Actions     actionsPayload `json:"actions"`
	StoolType   string         `json:"stool_type,omitempty"`
	UrineStatus string         `json:"urine_status,omitempty"`
	LitterClean bool           `json:"litter_clean,omitempty"`
	Weight      *float64       `json:"weight,omitempty"`
	Note        string         `json:"note,omitempty"`
}

func toEventResponse(e Event) eventResponse {
	out := eventResponse{
		ID:          e.ID,
		PetID:       e.PetID,
		OccurredAt:  e.OccurredAt.UnixMilli(),
		RecordedAt:  e.RecordedAt.UnixMilli(),
		Author:      e.Author,
		Actions:     fromDomainActions(e.Actions),
		StoolType:   string(e.StoolType),
		UrineStatus: string(e.UrineStatus),
		LitterClean: e.LitterClean,
		Note:        e.Note,
	}
	if e.Weight != nil {
		w, _ := e.Weight.Float64()
		out.Weight = &w
	}
	return out
}

type taskProgressResponse struct {
	Morning    bool `json:"morning"`
	Noon       bool `json:"noon"`
	Evening    bool `json:"evening"`
	Bedtime    bool `json:"bedtime"`
	IsComplete bool `json:"is_complete"`
}

type winnerResponse struct {
	Type  string `json:"type" enums:"none,tie,winner"`
	Name  string `json:"name,omitempty"`
	Score int    `json:"score,omitempty"`
}

type caregiverEntry struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type scoreboardResponse struct {
	Caregivers []caregiverEntry `json:"caregivers"`
	Week       map[string]int   `json:"week"`
	AllTime    map[string]int   `json:"all_time"`
	Winner     winnerResponse   `json:"winner"`
}

type dayTotalsResponse struct {
	Date   string         `json:"date"`
	Totals map[string]int `json:"totals"`
}

type dayGroupResponse struct {
	Date   string          `json:"date"`
	Events []eventResponse `json:"events"`
}

type monthLogResponse struct {
	Days      []dayGroupResponse `json:"days"`
	TotalDays int                `json:"total_days"`
	Expanded  bool               `json:"expanded"`
}

// requireAccess resolves the pet and checks the caller is its owner or a
// registered caregiver. Writes the HTTP error itself; callers bail on !ok.
func requireAccess(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service) (pets.Pet, bool) {
	claims, okClaims := middleware.GetClaims(r.Context())
	if !okClaims || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return pets.Pet{}, false
	}

	petID := chi.URLParam(r, "petID")
	p, err := petsSvc.GetByID(r.Context(), petID)
	if err != nil {
		http.Error(w, "pet not found", http.StatusNotFound)
		return pets.Pet{}, false
	}

	allowed, err := petsSvc.CanAccess(r.Context(), petID, claims.UserID)
	if err != nil || !allowed {
		http.Error(w, "forbidden", http.StatusForbidden)
		return pets.Pet{}, false
	}
	return p, true
}

// createEventHandler godoc
// @Summary Log a care event
// @Description Records one caregiving visit (feeding, watering, litter, grooming, medication, supplements, deworming, bath and/or a weight measurement) against the pet. The event must carry at least one action flag or a weight. Litter events need stool/urine details or the clean flag.
// @Tags care
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Dev-mode user ID"
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "Pet ID"
// @Param payload body createEventRequest true "Event data; occurred_at in epoch milliseconds"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / invariant violation"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/care/events [post]
func createEventHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requireAccess(w, r, petsSvc)
		if !ok {
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Log(r.Context(), p.ID, req.toInput())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary List care events
// @Description Lists the pet's care events, most recent first. Supports from/to (epoch ms), author and limit filters.
// @Tags care
// @Produce json
// @Param petID path string true "Pet ID"
// @Param from query int false "Minimum occurred_at (epoch ms)"
// @Param to query int false "Maximum occurred_at (epoch ms, exclusive)"
// @Param author query string false "Filter by caregiver name"
// @Param limit query int false "Max events (1-500), default 100"
// @Success 200 {array} eventResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/care/events [get]
func listEventsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requireAccess(w, r, petsSvc)
		if !ok {
			return
		}

		filter := parseListFilter(r)
		items, err := svc.ListByPet(r.Context(), p.ID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// updateEventHandler godoc
// @Summary Update a care event
// @Description Replaces the event's actions, details, weight and note; re-runs validation. Zero occurred_at / empty author keep their current values.
// @Tags care
// @Accept json
// @Produce json
// @Param petID path string true "Pet ID"
// @Param eventID path string true "Event ID"
// @Param payload body createEventRequest true "Updated fields"
// @Success 200 {object} eventResponse
// @Failure 400 {string} string "invalid json / invariant violation"
// @Failure 404 {string} string "event not found"
// @Router /pets/{petID}/care/events/{eventID} [patch]
func updateEventHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requireAccess(w, r, petsSvc)
		if !ok {
			return
		}

		eventID := chi.URLParam(r, "eventID")
		ev, err := svc.GetByID(r.Context(), eventID)
		if err != nil || ev.PetID != p.ID {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		var req createEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), eventID, req.toInput())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(updated))
	}
}

// deleteEventHandler godoc
// @Summary Delete a care event
// @Tags care
// @Param petID path string true "Pet ID"
// @Param eventID path string true "Event ID"
// @Success 204 {string} string "deleted"
// @Failure 404 {string} string "event not found"
// @Router /pets/{petID}/care/events/{eventID} [delete]
func deleteEventHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requireAccess(w, r, petsSvc)
		if !ok {
			return
		}

		eventID := chi.URLParam(r, "eventID")
		ev, err := svc.GetByID(r.Context(), eventID)
		if err != nil || ev.PetID != p.ID {
			http.Error(w, "event not found", http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), eventID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// dayStatusHandler godoc
// @Summary Daily task completion
// @Description Four-slot (morning/noon/evening/bedtime) completion per schedulable category for one local day of the pet. Defaults to today in the pet's timezone.
// @Tags care
// @Produce json
// @Param petID path string true "Pet ID"
// @Param date query string false "Day to aggregate, YYYY-MM-DD in the pet's timezone"
// @Success 200 {object} map[string]taskProgressResponse
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Router /pets/{petID}/care/day-status [get]
func dayStatusHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requireAccess(w, r, petsSvc)
		if !ok {
			return
		}

		loc := p.Location()
		ref := time.Now().In(loc)
		if v := strings.TrimSpace(r.URL.Query().Get("date")); v != "" {
			t, err := time.ParseInLocation("2006-01-02", v, loc)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			ref = t
		}

		status, err := svc.DayStatus(r.Context(), p.ID, ref, loc)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make(map[string]taskProgressResponse, len(status))
		for c, tp := range status {
			out[string(c)] = taskProgressResponse{
				Morning:    tp.Morning,
				Noon:       tp.Noon,
				Evening:    tp.Evening,
				Bedtime:    tp.Bedtime,
				IsComplete: tp.Complete(),
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// scoreboardHandler godoc
// @Summary Who cares more
// @Description Week-to-date (Monday start) and all-time score totals per registered caregiver, plus the winner resolution for the running week. Caregivers without events appear with 0.
// @Tags care
// @Produce json
// @Param petID path string true "Pet ID"
// @Success 200 {object} scoreboardResponse
// @Router /pets/{petID}/care/scoreboard [get]
func scoreboardHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requireAccess(w, r, petsSvc)
		if !ok {
			return
		}

		carers, err := petsSvc.ListCaregivers(r.Context(), p.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		names := make([]string, 0, len(carers))
		entries := make([]caregiverEntry, 0, len(carers))
		for _, c := range carers {
			names = append(names, c.Name)
			entries = append(entries, caregiverEntry{Name: c.Name, Color: c.Color})
		}

		board, err := svc.Scoreboard(r.Context(), p.ID, p.Location(), names)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, scoreboardResponse{
			Caregivers: entries,
			Week:       board.Week,
			AllTime:    board.AllTime,
			Winner: winnerResponse{
				Type:  string(board.Outcome.Type),
				Name:  board.Outcome.Name,
				Score: board.Outcome.Score,
			},
		})
	}
}

// seriesHandler godoc
// @Summary Trailing daily score series
// @Description Per-day score totals for the trailing N days (today first), for charting.
// @Tags care
// @Produce json
// @Param petID path string true "Pet ID"
// @Param days query int false "Trailing days (1-90), default 7"
// @Success 200 {array} dayTotalsResponse
// @Router /pets/{petID}/care/series [get]
func seriesHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requireAccess(w, r, petsSvc)
		if !ok {
			return
		}

		days := 7
		if v := r.URL.Query().Get("days"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 90 {
				days = n
			}
		}

		names, err := petsSvc.CaregiverNames(r.Context(), p.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		series, err := svc.Series(r.Context(), p.ID, days, p.Location(), names)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]dayTotalsResponse, 0, len(series))
		for _, d := range series {
			out = append(out, dayTotalsResponse{
				Date:   d.Date.Format("2006-01-02"),
				Totals: d.Totals,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// monthLogHandler godoc
// @Summary Monthly care log
// @Description One month of the pet's history grouped per day, newest day first; days without events are omitted. default_days limits the visible groups unless expanded=true.
// @Tags care
// @Produce json
// @Param petID path string true "Pet ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param default_days query int false "Visible day groups before expanding; 0 shows all"
// @Param expanded query bool false "Show all day groups"
// @Success 200 {object} monthLogResponse
// @Failure 400 {string} string "year/month required"
// @Router /pets/{petID}/care/log [get]
func monthLogHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requireAccess(w, r, petsSvc)
		if !ok {
			return
		}

		year, err1 := strconv.Atoi(r.URL.Query().Get("year"))
		month, err2 := strconv.Atoi(r.URL.Query().Get("month"))
		if err1 != nil || err2 != nil || month < 1 || month > 12 {
			http.Error(w, "year/month required", http.StatusBadRequest)
			return
		}

		groups, err := svc.MonthLog(r.Context(), p.ID, year, time.Month(month), p.Location())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		defaultDays := 0
		if v := r.URL.Query().Get("default_days"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				defaultDays = n
			}
		}
		expanded := r.URL.Query().Get("expanded") == "true"

		visible := Visible(groups, defaultDays, expanded)
		out := monthLogResponse{
			Days:      make([]dayGroupResponse, 0, len(visible)),
			TotalDays: len(groups),
			Expanded:  defaultDays <= 0 || expanded || len(visible) == len(groups),
		}
		for _, g := range visible {
			events := make([]eventResponse, 0, len(g.Events))
			for _, e := range g.Events {
				events = append(events, toEventResponse(e))
			}
			out.Days = append(out.Days, dayGroupResponse{
				Date:   g.Date.Format("2006-01-02"),
				Events: events,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseListFilter(r *http.Request) ListFilter {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	if v := r.URL.Query().Get("from"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			t := time.UnixMilli(ms)
			filter.From = &t
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			t := time.UnixMilli(ms)
			filter.To = &t
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("author")); v != "" {
		filter.Author = v
	}

	return filter
}

// writeJSON is deliberately duplicated across module handlers to avoid a
// shared helper package this early.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
