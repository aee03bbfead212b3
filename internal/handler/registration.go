package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buddylink/buddylink-api/internal/payload"
	"github.com/buddylink/buddylink-api/internal/usecase"
	"github.com/buddylink/buddylink-api/internal/validate"
)

const maxMultipartMemory = 10 << 20

// RegistrationHandler serves the senior and volunteer registration endpoints.
type RegistrationHandler struct {
	registration usecase.RegistrationUsecase
	logger       *zerolog.Logger
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(registration usecase.RegistrationUsecase, logger *zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registration: registration,
		logger:       logger,
	}
}

// RegisterSenior handles POST /register/senior.
func (h *RegistrationHandler) RegisterSenior(w http.ResponseWriter, r *http.Request) {
	var req payload.SeniorRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, payload.Fail("Invalid request payload"))
		return
	}

	seniorID, err := h.registration.RegisterSenior(r.Context(), usecase.RegisterSeniorParams{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Age:         req.Age,
		Phone:       req.Phone,
		Email:       req.Email,
		City:        req.City,
		Address:     req.Address,
		ContactPref: req.ContactPref,
		Language:    req.Language,
		Notes:       req.Notes,
		Password:    req.Password,
		RePassword:  req.RePassword,
	})
	if err != nil {
		h.writeRegistrationError(w, err, "Failed to create senior")
		return
	}

	writeJSON(w, http.StatusOK, payload.OK(payload.SeniorRegisterData{
		Type:     "senior",
		SeniorID: seniorID,
	}))
}

// RegisterVolunteer handles POST /register/volunteer. The body is either
// JSON or a multipart form; form submissions carry availability as repeated
// fields, JSON as a list. Both normalize to the same slice before validation.
func (h *RegistrationHandler) RegisterVolunteer(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeVolunteerRequest(w, r)
	if !ok {
		return
	}

	id, err := h.registration.RegisterVolunteer(r.Context(), usecase.RegisterVolunteerParams{
		Firstname:       req.Firstname,
		Lastname:        req.Lastname,
		Phone:           req.Phone,
		Email:           req.Email,
		City:            req.City,
		BackgroundCheck: req.Status(),
		Password:        req.Password,
		Availability:    req.Availability,
	})
	if err != nil {
		h.writeRegistrationError(w, err, "Failed to create volunteer")
		return
	}

	writeJSON(w, http.StatusOK, payload.VolunteerRegisterResponse{
		Success: true,
		Message: "Volunteer registered successfully!",
		ID:      id,
	})
}

func (h *RegistrationHandler) decodeVolunteerRequest(
	w http.ResponseWriter,
	r *http.Request,
) (*payload.VolunteerRegisterRequest, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeJSON(w, http.StatusBadRequest, payload.Fail("Invalid request payload"))
			return nil, false
		}

		return &payload.VolunteerRegisterRequest{
			Firstname:             r.FormValue("firstname"),
			Lastname:              r.FormValue("lastname"),
			Phone:                 r.FormValue("phone"),
			Email:                 r.FormValue("email"),
			City:                  r.FormValue("city"),
			BackgroundCheck:       r.FormValue("background_check"),
			BackgroundCheckStatus: r.FormValue("background_check_status"),
			Password:              r.FormValue("password"),
			Availability:          r.Form["availability"],
		}, true
	}

	var req payload.VolunteerRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "availability" {
			writeJSON(w, http.StatusBadRequest, payload.Fail("Availability must be a list of time slots."))
			return nil, false
		}

		writeJSON(w, http.StatusBadRequest, payload.Fail("Invalid request payload"))
		return nil, false
	}

	return &req, true
}

func (h *RegistrationHandler) writeRegistrationError(w http.ResponseWriter, err error, storageMessage string) {
	var validationErr *validate.Error
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, payload.Fail(validationErr.Message))
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		writeJSON(w, http.StatusConflict, payload.Fail("Email already registered"))
	default:
		h.logger.Error().Err(err).Msg("registration failed")
		writeJSON(w, http.StatusInternalServerError, payload.Fail(storageMessage))
	}
}
