package ocr

import (
	"bytes"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hctsai/lunchgo/pkg/response"
)

// maxUploadBytes caps multipart uploads at 10MB.
const maxUploadBytes = 10 << 20

// Handler handles HTTP requests for menu image upload and parsing
type Handler struct {
	uploader Uploader
	parser   *MenuParser
}

// NewHandler creates a new ocr handler. Either dependency may be nil when
// unconfigured; the matching endpoints answer 503.
func NewHandler(uploader Uploader, parser *MenuParser) *Handler {
	return &Handler{uploader: uploader, parser: parser}
}

// Routes returns the router for ocr endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/upload", h.Upload)
	r.Post("/menu", h.ParseMenu)

	return r
}

// Upload handles POST /ocr/upload
// @Summary      Upload a menu image
// @Tags         ocr
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Menu image"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /ocr/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		response.ServiceUnavailable(w, "Image hosting not configured")
		return
	}

	image, _, ok := readImage(w, r)
	if !ok {
		return
	}

	url, err := h.uploader.Upload(r.Context(), bytes.NewReader(image))
	if err != nil {
		response.InternalError(w, "Failed to upload image")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}

// ParseMenu handles POST /ocr/menu
// @Summary      Upload a menu image and extract its items
// @Tags         ocr
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Menu image"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      503 {object} response.APIResponse
// @Router       /ocr/menu [post]
func (h *Handler) ParseMenu(w http.ResponseWriter, r *http.Request) {
	if h.parser == nil {
		response.ServiceUnavailable(w, "API Key not configured. Please set GEMINI_API_KEY environment variable")
		return
	}
	if h.uploader == nil {
		response.ServiceUnavailable(w, "Image hosting not configured")
		return
	}

	image, mimeType, ok := readImage(w, r)
	if !ok {
		return
	}

	url, err := h.uploader.Upload(r.Context(), bytes.NewReader(image))
	if err != nil {
		response.InternalError(w, "Failed to upload image")
		return
	}

	items, err := h.parser.Parse(r.Context(), image, mimeType)
	if err != nil {
		response.InternalError(w, "Failed to process image")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"items":    items,
		"imageUrl": url,
	})
}

// readImage pulls the uploaded file out of the multipart form, enforcing
// the size cap. It writes the error response itself when something is off.
func readImage(w http.ResponseWriter, r *http.Request) (image []byte, mimeType string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.BadRequest(w, "Invalid or oversized multipart body")
		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(w, "Failed to read upload")
		return nil, "", false
	}

	return data, header.Header.Get("Content-Type"), true
}
