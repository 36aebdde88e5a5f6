package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/r8r-one/platform/internal/api/middleware"
	"github.com/r8r-one/platform/internal/legacy"
	"github.com/r8r-one/platform/internal/service"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(svc *service.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// createRatingRequest is the legacy submission payload the front end
// still sends: flat fields and per-ingredient booleans.
type createRatingRequest struct {
	RestaurantName   string  `json:"restaurantName"`
	BurritoTitle     string  `json:"burritoTitle"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Zipcode          string  `json:"zipcode"`
	Rating           float64 `json:"rating"`
	Taste            float64 `json:"taste"`
	Value            float64 `json:"value"`
	Price            float64 `json:"price"`
	HasPotatoes      bool    `json:"hasPotatoes"`
	HasCheese        bool    `json:"hasCheese"`
	HasBacon         bool    `json:"hasBacon"`
	HasChorizo       bool    `json:"hasChorizo"`
	HasAvocado       bool    `json:"hasAvocado"`
	HasVegetables    bool    `json:"hasVegetables"`
	Review           string  `json:"review"`
	ReviewerName     string  `json:"reviewerName"`
	IdentityPassword string  `json:"identityPassword"`
	Image            string  `json:"image"`
	TurnstileToken   string  `json:"turnstileToken"`
}

// scores maps the flat submission fields onto score keys. A zero value
// means the client omitted the field; the key is left out so reads fall
// back to the midpoint default instead of rendering 0.
func (req *createRatingRequest) scores() map[string]float64 {
	out := make(map[string]float64)
	for key, v := range map[string]float64{
		"overall": req.Rating,
		"taste":   req.Taste,
		"value":   req.Value,
	} {
		if v != 0 {
			out[key] = v
		}
	}
	return out
}

func (req *createRatingRequest) ingredients() []string {
	var out []string
	for _, ing := range []struct {
		set  bool
		name string
	}{
		{req.HasPotatoes, "potatoes"},
		{req.HasCheese, "cheese"},
		{req.HasBacon, "bacon"},
		{req.HasChorizo, "chorizo"},
		{req.HasAvocado, "avocado"},
		{req.HasVegetables, "vegetables"},
	} {
		if ing.set {
			out = append(out, ing.name)
		}
	}
	return out
}

func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantIDFromContext(r.Context())

	list, err := h.svc.ListConfirmed(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch ratings")
		return
	}
	if list == nil {
		list = []*legacy.Rating{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantIDFromContext(r.Context())

	var req createRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	remoteIP := r.Header.Get("CF-Connecting-IP")
	if remoteIP == "" {
		remoteIP = r.Header.Get("X-Real-IP")
	}

	rec, err := h.svc.Create(r.Context(), tenantID, service.CreateRatingInput{
		VenueName:        req.RestaurantName,
		ItemName:         req.BurritoTitle,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Zipcode:          req.Zipcode,
		Scores:           req.scores(),
		Price:            req.Price,
		Ingredients:      req.ingredients(),
		Review:           req.Review,
		ReviewerName:     req.ReviewerName,
		IdentityPassword: req.IdentityPassword,
		ImageFilename:    req.Image,
		CaptchaToken:     req.TurnstileToken,
		RemoteIP:         remoteIP,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaRequired),
			errors.Is(err, service.ErrCaptchaFailed),
			errors.Is(err, service.ErrVenueRequired),
			errors.Is(err, service.ErrTitleRequired):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create rating")
		}
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func (h *RatingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantIDFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rating id")
		return
	}

	rec, err := h.svc.GetByLegacyID(r.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			writeError(w, http.StatusNotFound, "Rating not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch rating")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantIDFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rating id")
		return
	}

	if err := h.svc.Delete(r.Context(), tenantID, id); err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			writeError(w, http.StatusNotFound, "Rating not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete rating")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Rating deleted successfully"})
}

func (h *RatingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantIDFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rating id")
		return
	}

	if err := h.svc.Confirm(r.Context(), tenantID, id); err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			writeError(w, http.StatusNotFound, "Rating not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to confirm rating")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Rating confirmed successfully"})
}

type confirmBulkRequest struct {
	IDs []int `json:"ids"`
}

func (h *RatingHandler) ConfirmBulk(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantIDFromContext(r.Context())

	var req confirmBulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := h.svc.ConfirmBulk(r.Context(), tenantID, req.IDs)
	if err != nil {
		if errors.Is(err, service.ErrNoRatingIDs) {
			writeError(w, http.StatusBadRequest, "Invalid or empty ID list")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to confirm ratings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Ratings confirmed successfully",
		"confirmed": n,
	})
}
