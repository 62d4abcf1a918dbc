package pets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/vecear/Catlog-sub000/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))

		pr.Post("/{petID}/caregivers", addCaregiverHandler(svc))
		pr.Get("/{petID}/caregivers", listCaregiversHandler(svc))
		pr.Delete("/{petID}/caregivers/{caregiverID}", removeCaregiverHandler(svc))
	})
}

type createPetRequest struct {
	Name      string `json:"name"`
	Species   string `json:"species" enums:"cat,dog"`
	Sex       string `json:"sex" enums:"male,female,unknown"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD, optional
	Timezone  string `json:"timezone"`   // IANA zone, default UTC
	Notes     string `json:"notes"`
}

type petResponse struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"owner_user_id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Sex         string `json:"sex"`
	BirthDate   string `json:"birth_date,omitempty"`
	Timezone    string `json:"timezone"`
	Notes       string `json:"notes,omitempty"`

	AgeYears       int    `json:"age_years"`
	AgeMonths      int    `json:"age_months"`
	NextBirthday   string `json:"next_birthday,omitempty"`
	DaysToBirthday int    `json:"days_to_birthday"`
}

type caregiverRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

type caregiverResponse struct {
	ID     string `json:"id"`
	PetID  string `json:"pet_id"`
	UserID string `json:"user_id,omitempty"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
}

func toPetResponse(p Pet, now time.Time) petResponse {
	out := petResponse{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Species:     string(p.Species),
		Sex:         string(p.Sex),
		Timezone:    p.Timezone,
		Notes:       p.Notes,
	}
	if p.BirthDate != nil {
		loc := p.Location()
		out.BirthDate = p.BirthDate.Format("2006-01-02")

		age := AgeAt(*p.BirthDate, now.In(loc))
		out.AgeYears = age.Years
		out.AgeMonths = age.Months

		next, days := NextBirthday(*p.BirthDate, now.In(loc))
		out.NextBirthday = next.Format("2006-01-02")
		out.DaysToBirthday = days
	}
	return out
}

func toCaregiverResponse(c Caregiver) caregiverResponse {
	return caregiverResponse{
		ID:     c.ID,
		PetID:  c.PetID,
		UserID: c.UserID,
		Name:   c.Name,
		Color:  c.Color,
	}
}

// createPetHandler godoc
// @Summary Register a pet
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Dev-mode user ID"
// @Param payload body createPetRequest true "Pet profile"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			Name:     req.Name,
			Species:  req.Species,
			Sex:      req.Sex,
			Timezone: req.Timezone,
			Notes:    req.Notes,
		}
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.BirthDate = &t
		}

		p, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p, time.Now()))
	}
}

// getPetHandler godoc
// @Summary Get a pet profile
// @Tags pets
// @Produce json
// @Param petID path string true "Pet ID"
// @Success 200 {object} petResponse
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		allowed, err := svc.CanAccess(r.Context(), petID, claims.UserID)
		if err != nil || !allowed {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p, time.Now()))
	}
}

// listPetsHandler godoc
// @Summary List my pets
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p, now))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// addCaregiverHandler godoc
// @Summary Register a caregiver
// @Description Adds a caregiver to the pet. Only the owner may manage the registry. Names must be unique per pet because score attribution matches on them.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "Pet ID"
// @Param payload body caregiverRequest true "Caregiver"
// @Success 201 {object} caregiverResponse
// @Failure 400 {string} string "invalid json / duplicate name"
// @Failure 403 {string} string "forbidden"
// @Router /pets/{petID}/caregivers [post]
func addCaregiverHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requireOwner(w, r, svc)
		if !ok {
			return
		}

		var req caregiverRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.AddCaregiver(r.Context(), p.ID, CaregiverInput{
			UserID: req.UserID,
			Name:   req.Name,
			Color:  req.Color,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, toCaregiverResponse(c))
	}
}

// listCaregiversHandler godoc
// @Summary List caregivers
// @Tags pets
// @Produce json
// @Param petID path string true "Pet ID"
// @Success 200 {array} caregiverResponse
// @Router /pets/{petID}/caregivers [get]
func listCaregiversHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		allowed, err := svc.CanAccess(r.Context(), petID, claims.UserID)
		if err != nil || !allowed {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListCaregivers(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]caregiverResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCaregiverResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// removeCaregiverHandler godoc
// @Summary Remove a caregiver
// @Tags pets
// @Param petID path string true "Pet ID"
// @Param caregiverID path string true "Caregiver ID"
// @Success 204 {string} string "removed"
// @Failure 403 {string} string "forbidden"
// @Router /pets/{petID}/caregivers/{caregiverID} [delete]
func removeCaregiverHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := requireOwner(w, r, svc)
		if !ok {
			return
		}

		if err := svc.RemoveCaregiver(r.Context(), p.ID, chi.URLParam(r, "caregiverID")); err != nil {
			http.Error(w, "caregiver not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func requireOwner(w http.ResponseWriter, r *http.Request, svc *Service) (Pet, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Pet{}, false
	}

	petID := chi.URLParam(r, "petID")
	p, err := svc.GetByID(r.Context(), petID)
	if err != nil {
		http.Error(w, "pet not found", http.StatusNotFound)
		return Pet{}, false
	}
	if p.OwnerUserID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Pet{}, false
	}
	return p, true
}

// writeJSON is deliberately duplicated across module handlers to avoid a
// shared helper package this early.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
