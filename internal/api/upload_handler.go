package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"

	"github.com/junaifcp/swift-resume/internal/config"
	"github.com/junaifcp/swift-resume/internal/database"
)

// imageStore is the slice of the storage client the upload path needs.
type imageStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*minio.UploadInfo, error)
	GeneratePresignedURL(ctx context.Context, objectKey string, duration time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// UploadHandler serves profile image uploads. Files are scanned by clamd
// before they touch the bucket.
type UploadHandler struct {
	DB        *gorm.DB
	Storage   imageStore
	Logger    *slog.Logger
	ClamdAddr string
	MaxBytes  int64
}

var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// NewUploadHandler builds the handler from the upload config.
func NewUploadHandler(db *gorm.DB, storageClient imageStore, logger *slog.Logger, cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{
		DB:        db,
		Storage:   storageClient,
		Logger:    logger,
		ClamdAddr: cfg.ClamdAddr,
		MaxBytes:  cfg.MaxBytes,
	}
}

// UploadProfileImage accepts one multipart image, scans it and stores it
// under the user's prefix. The "resume_id" form field ties the image to a
// resume record so the export worker can presign it at print time; the
// superseded object, if any, is deleted. The response carries the object
// key and a short-lived presigned URL for immediate display.
func (h *UploadHandler) UploadProfileImage(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	var record *database.ResumeRecord
	if rawID := c.PostForm("resume_id"); rawID != "" {
		resumeID, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil {
			BadRequest(c, "invalid resume id")
			return
		}
		var r database.ResumeRecord
		if err := h.DB.WithContext(c.Request.Context()).
			Where("id = ? AND user_id = ?", resumeID, userID).
			First(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				NotFound(c, "resume not found")
				return
			}
			Internal(c, "failed to load resume")
			return
		}
		record = &r
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}

	if h.MaxBytes > 0 && file.Size > h.MaxBytes {
		BadRequest(c, "file too large")
		return
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		BadRequest(c, "unsupported image type")
		return
	}

	if h.ClamdAddr != "" {
		clean, err := h.scanFile(file)
		if err != nil {
			h.Logger.Error("scan file", slog.String("error", err.Error()))
			Internal(c, "failed to scan file")
			return
		}
		if !clean {
			BadRequest(c, "malicious file detected")
			return
		}
	}

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer fileReader.Close()

	objectKey := fmt.Sprintf("profile-images/%d/%s%s", userID, uuid.NewString(), ext)
	if _, err := h.Storage.UploadFile(c.Request.Context(), objectKey, fileReader, file.Size, contentType); err != nil {
		h.Logger.Error("upload file", slog.String("error", err.Error()))
		Internal(c, "failed to upload file")
		return
	}

	if record != nil {
		previousKey := record.ProfileKey
		if err := h.DB.WithContext(c.Request.Context()).Model(record).
			Update("profile_key", objectKey).Error; err != nil {
			h.Logger.Error("persist profile key", slog.String("error", err.Error()))
			Internal(c, "failed to attach image to resume")
			return
		}
		if previousKey != "" && previousKey != objectKey {
			if err := h.Storage.DeleteObject(c.Request.Context(), previousKey); err != nil {
				h.Logger.Warn("delete previous profile image", slog.String("error", err.Error()))
			}
		}
	}

	url, err := h.Storage.GeneratePresignedURL(c.Request.Context(), objectKey, 15*time.Minute)
	if err != nil {
		h.Logger.Error("generate upload url", slog.String("error", err.Error()))
		Internal(c, "failed to generate url")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"objectKey": objectKey, "url": url})
}

// scanFile streams the upload through clamd. It reports true when the
// scanner found nothing.
func (h *UploadHandler) scanFile(file *multipart.FileHeader) (bool, error) {
	fileReader, err := file.Open()
	if err != nil {
		return false, fmt.Errorf("open upload: %w", err)
	}
	defer fileReader.Close()

	clamdClient := clamd.NewClamd(h.ClamdAddr)
	abortChan := make(chan bool)
	defer close(abortChan)

	scanChan, err := clamdClient.ScanStream(fileReader, abortChan)
	if err != nil {
		return false, fmt.Errorf("scan stream: %w", err)
	}

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return false, nil
		}
	}
	return true, nil
}
