package birds

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/birds", func(br chi.Router) {
		br.Get("/", listBirdsHandler(svc))
		br.Post("/", createBirdHandler(svc))

		br.Get("/{birdID}", getBirdHandler(svc))

		// PATCH y PUT comparten el mismo handler de update parcial.
		br.Patch("/{birdID}", updateBirdHandler(svc))
		br.Put("/{birdID}", updateBirdHandler(svc))

		br.Patch("/{birdID}/like", likeBirdHandler(svc))
	})
}

// createBirdRequest es la whitelist de campos aceptados al crear.
// Cualquier otra key del JSON (incluido "id") se descarta en el decode.
type createBirdRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Likes   *int   `json:"likes"`
}

type updateBirdRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name    *string `json:"name"`
	Species *string `json:"species"`
	Likes   *int    `json:"likes"`
}

type birdResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Likes   int    `json:"likes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listBirdsHandler godoc
// @Summary Lista todas las aves
// @Tags birds
// @Produce json
// @Success 200 {array} birdResponse
// @Router /birds [get]
func listBirdsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]birdResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBirdResponse(b))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// createBirdHandler godoc
// @Summary Registra un ave nueva
// @Tags birds
// @Accept json
// @Produce json
// @Param bird body createBirdRequest true "Campos del ave (whitelist)"
// @Success 201 {object} birdResponse
// @Failure 400 {object} errorResponse
// @Router /birds [post]
func createBirdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBirdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Species: req.Species,
			Likes:   req.Likes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBirdResponse(b))
	}
}

// getBirdHandler godoc
// @Summary Muestra un ave por id
// @Tags birds
// @Produce json
// @Param birdID path string true "ID del ave"
// @Success 200 {object} birdResponse
// @Failure 404 {object} errorResponse
// @Router /birds/{birdID} [get]
func getBirdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "birdID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toBirdResponse(b))
	}
}

// updateBirdHandler godoc
// @Summary Actualiza campos de un ave (update parcial)
// @Tags birds
// @Accept json
// @Produce json
// @Param birdID path string true "ID del ave"
// @Param bird body updateBirdRequest true "Campos a sobreescribir"
// @Success 200 {object} birdResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /birds/{birdID} [patch]
func updateBirdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateBirdRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "birdID"), UpdateInput{
			Name:    req.Name,
			Species: req.Species,
			Likes:   req.Likes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toBirdResponse(updated))
	}
}

// likeBirdHandler godoc
// @Summary Suma un like a un ave
// @Tags birds
// @Produce json
// @Param birdID path string true "ID del ave"
// @Success 200 {object} birdResponse
// @Failure 404 {object} errorResponse
// @Router /birds/{birdID}/like [patch]
func likeBirdHandler(svc *Service) http.HandlerFunc {
	// El body (si viene) se ignora por completo: el nuevo valor
	// lo calcula el servidor, nunca el cliente.
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Like(r.Context(), chi.URLParam(r, "birdID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toBirdResponse(b))
	}
}

func toBirdResponse(b Bird) birdResponse {
	return birdResponse{
		ID:      b.ID,
		Name:    b.Name,
		Species: b.Species,
		Likes:   b.Likes,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid input")
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Bird not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
