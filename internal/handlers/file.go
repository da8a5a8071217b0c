package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"studyaid/internal/logger"
	"studyaid/internal/models"
	"studyaid/internal/services"
	"studyaid/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type FileHandler struct {
	files    *services.FileService
	maxBytes int64
}

func NewFileHandler(files *services.FileService, maxBytes int64) *FileHandler {
	return &FileHandler{files: files, maxBytes: maxBytes}
}

// Upload godoc
// @Summary Загрузить файл
// @Tags files
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл"
// @Success 201 {object} models.UploadResponse
// @Failure 400 {object} helpers.Envelope "No file uploaded"
// @Failure 500 {object} helpers.Envelope
// @Router /api/file/upload [post]
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+1<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn("Слишком большой файл", zap.Int64("limit", h.maxBytes))
			helpers.Error(w, http.StatusBadRequest, fmt.Sprintf("File exceeds the %d MB limit", h.maxBytes>>20), "")
			return
		}
		log.Warn("Ошибка разбора формы при загрузке файла", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "No file uploaded", "")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("Файл не найден при загрузке", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "No file uploaded", "")
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		helpers.Error(w, http.StatusBadRequest, fmt.Sprintf("File exceeds the %d MB limit", h.maxBytes>>20), "")
		return
	}

	f, err := h.files.Upload(r.Context(), userID, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}

	helpers.Success(w, http.StatusCreated, "File uploaded successfully", helpers.Envelope{
		"data": models.UploadResponse{
			ID:   f.ID,
			Name: f.FileName,
			Type: f.FileType,
			Size: f.FileSize,
			URL:  "/api/file/" + f.ID,
		},
	})
}

// Get godoc
// @Summary Скачать файл
// @Tags files
// @Security ApiKeyAuth
// @Produce octet-stream
// @Param id path string true "ID файла"
// @Success 200 {file} file
// @Failure 403 {object} helpers.Envelope
// @Failure 404 {object} helpers.Envelope "File not found in database / on server"
// @Router /api/file/{id} [get]
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	id := mux.Vars(r)["id"]

	f, rc, err := h.files.Open(r.Context(), userID, id)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", f.FileType)
	w.Header().Set("Content-Length", strconv.FormatInt(f.FileSize, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": f.FileName}))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка отдачи файла", zap.String("file_id", id), zap.Error(err))
	}
}

// List godoc
// @Summary Файлы текущего пользователя
// @Tags files
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.UploadedFile
// @Router /api/file [get]
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	files, err := h.files.List(r.Context(), userID)
	if err != nil {
		helpers.WriteError(w, err)
		return
	}
	helpers.Success(w, http.StatusOK, "Files fetched", helpers.Envelope{"count": len(files), "files": files})
}
