package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"libcatalog/internal/httpx"
	"libcatalog/internal/item"
	"libcatalog/internal/store"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ItemRequest is the wire form of an item for add and remove calls.
type ItemRequest struct {
	Type   string `json:"type" validate:"required,oneof=Book Journal"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Year   int    `json:"year"`
	Volume string `json:"volume" validate:"required_if=Type Journal"`
}

func (req ItemRequest) toItem() item.Item {
	base := item.Book{Title: req.Title, Author: req.Author, Year: req.Year}
	if req.Type == "Journal" {
		return item.Journal{Book: base, Volume: req.Volume}
	}
	return base
}

// ItemResponse is the wire form of an item in list responses.
type ItemResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        int    `json:"year"`
	Volume      string `json:"volume,omitempty"`
	Description string `json:"description"`
}

func toResponse(it item.Item) ItemResponse {
	switch v := it.(type) {
	case item.Book:
		return ItemResponse{Type: "Book", Title: v.Title, Author: v.Author, Year: v.Year, Description: v.Describe()}
	case item.Journal:
		return ItemResponse{Type: "Journal", Title: v.Title, Author: v.Author, Year: v.Year, Volume: v.Volume, Description: v.Describe()}
	}
	return ItemResponse{}
}

func toResponses(items []item.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toResponse(it))
	}
	return out
}

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

func decodeItemRequest(w http.ResponseWriter, r *http.Request) (ItemRequest, bool) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", nil)
		return ItemRequest{}, false
	}
	if details := validateItemRequest(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Request validation failed", details)
		return ItemRequest{}, false
	}
	return req, true
}

func validateItemRequest(req ItemRequest) []httpx.ErrorDetail {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var details []httpx.ErrorDetail
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fieldErr.Field())
		var message string
		switch fieldErr.Tag() {
		case "required", "required_if":
			message = fmt.Sprintf("%s is required", field)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fieldErr.Param(), " ", ", "))
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		details = append(details, httpx.ErrorDetail{Field: field, Message: message})
	}
	return details
}

// List handles GET /items, with an optional author filter.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	var items []item.Item
	if author := r.URL.Query().Get("author"); author != "" {
		items = h.svc.ByAuthor(author)
	} else {
		items = h.svc.List()
	}

	httpx.JSONSuccess(w, r, toResponses(items), map[string]any{
		"count": len(items),
	})
}

// Add handles POST /items.
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeItemRequest(w, r)
	if !ok {
		return
	}

	it := req.toItem()
	h.svc.Add(it)
	httpx.JSONSuccessCreated(w, r, toResponse(it))
}

// Remove handles DELETE /items. The body identifies the item to remove by
// structural equality.
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeItemRequest(w, r)
	if !ok {
		return
	}

	if err := h.svc.Remove(req.toItem()); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// Save handles POST /catalog/save.
func (h *HTTPHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Save(); err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "IO_ERROR", "Could not write catalog file", nil)
		return
	}
	httpx.JSONSuccess(w, r, nil, map[string]any{
		"saved": len(h.svc.List()),
	})
}

// Load handles POST /catalog/load. Loaded items are merged into the
// catalog.
func (h *HTTPHandler) Load(w http.ResponseWriter, r *http.Request) {
	loaded, err := h.svc.Load()
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			httpx.JSONError(w, r, http.StatusNotFound, "FILE_NOT_FOUND", "Catalog file does not exist", nil)
		case errors.Is(err, store.ErrParse):
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "PARSE_ERROR", err.Error(), nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "IO_ERROR", "Could not read catalog file", nil)
		}
		return
	}
	httpx.JSONSuccess(w, r, nil, map[string]any{
		"loaded": loaded,
		"total":  len(h.svc.List()),
	})
}
