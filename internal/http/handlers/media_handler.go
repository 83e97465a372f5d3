package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/pixelhunt/design-backend/internal/domain/entity"
	"github.com/pixelhunt/design-backend/internal/dto"
	"github.com/pixelhunt/design-backend/internal/http/handlers/common"
	"github.com/pixelhunt/design-backend/internal/infrastructure/persistence"
	"github.com/pixelhunt/design-backend/internal/storage"
)

// Разрешённые типы вложений: изображения, PDF и архивы с исходниками.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
	"application/zip": true,
}

// MediaHandler управляет загрузкой и удалением вложений.
type MediaHandler struct {
	repo    *persistence.MediaRepositoryAdapter
	storage *storage.AttachmentStorage
}

// NewMediaHandler создаёт хэндлер.
func NewMediaHandler(repo *persistence.MediaRepositoryAdapter, storage *storage.AttachmentStorage) *MediaHandler {
	return &MediaHandler{repo: repo, storage: storage}
}

// Upload обрабатывает POST /media.
func (h *MediaHandler) Upload(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		common.RespondBadRequest(c, "поле file обязательно")
		return
	}
	if file.Size == 0 {
		common.RespondBadRequest(c, "файл не может быть пустым")
		return
	}
	if file.Size > h.storage.MaxUploadBytes() {
		common.RespondBadRequest(c, "файл превышает допустимый размер")
		return
	}

	src, err := file.Open()
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}
	defer src.Close()

	// Тип определяется по магическим байтам, а не по расширению
	header := make([]byte, 512)
	n, err := src.Read(header)
	if err != nil && err != io.EOF {
		common.RespondBadRequest(c, "не удалось прочитать файл")
		return
	}

	kind, err := filetype.Match(header[:n])
	if err != nil || kind == filetype.Unknown {
		common.RespondBadRequest(c, "не удалось определить тип файла")
		return
	}

	contentType := kind.MIME.Value
	if !allowedMimeTypes[contentType] {
		common.RespondBadRequest(c, "неподдерживаемый тип файла: "+contentType)
		return
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		common.RespondInternalError(c, "")
		return
	}

	relativePath, size, err := h.storage.Save(c.Request.Context(), userID, file.Filename, src)
	if err != nil {
		common.RespondInternalError(c, err.Error())
		return
	}

	media := &entity.MediaFile{
		ID:          uuid.New(),
		OwnerID:     userID,
		FileName:    file.Filename,
		FilePath:    filepath.ToSlash(relativePath),
		SizeBytes:   size,
		ContentType: contentType,
		CreatedAt:   time.Now(),
	}

	if err := h.repo.Create(c.Request.Context(), media); err != nil {
		c.Error(err)
		return
	}

	common.RespondJSON(c, http.StatusCreated, dto.FromMediaFile(media))
}

// Delete обрабатывает DELETE /media/:id. Удалять можно только свои файлы.
func (h *MediaHandler) Delete(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, "")
		return
	}

	mediaID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	media, err := h.repo.GetByID(c.Request.Context(), mediaID)
	if err != nil {
		c.Error(err)
		return
	}

	if media.OwnerID != userID {
		common.RespondForbidden(c, "файл принадлежит другому пользователю")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), mediaID); err != nil {
		c.Error(err)
		return
	}
	if err := h.storage.Delete(c.Request.Context(), media.FilePath); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
