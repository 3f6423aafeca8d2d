package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulsehr/pulse-backend-go/internal/handler/http/response"
	"github.com/pulsehr/pulse-backend-go/internal/service/file"
)

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DocumentHandlerImpl struct {
	fileService file.FileService
}

// Upload implements DocumentHandler. Multipart form with a "file" part
// and a "title" field.
func (d *DocumentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	title := r.FormValue("title")
	if title == "" {
		response.BadRequest(w, "Title is required", nil)
		return
	}

	uploaded, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Document file is required", nil)
		return
	}
	defer uploaded.Close()

	result, err := d.fileService.UploadPolicyDocument(r.Context(), title, uploaded, header.Filename, header.Size)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Policy document uploaded successfully", result)
}

// List implements DocumentHandler.
func (d *DocumentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := d.fileService.ListPolicyDocuments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements DocumentHandler.
func (d *DocumentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Document ID is required", nil)
		return
	}

	if err := d.fileService.DeletePolicyDocument(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Policy document deleted successfully", nil)
}

func NewDocumentHandler(fileService file.FileService) DocumentHandler {
	return &DocumentHandlerImpl{
		fileService: fileService,
	}
}
