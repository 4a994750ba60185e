package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/junaifcp/swift-resume/internal/database"
	"github.com/junaifcp/swift-resume/internal/errcode"
	"github.com/junaifcp/swift-resume/internal/pdf"
	"github.com/junaifcp/swift-resume/internal/storage"
	"github.com/junaifcp/swift-resume/internal/tasks"
	"github.com/junaifcp/swift-resume/pkg/render"
	"github.com/junaifcp/swift-resume/pkg/resume"
)

// ExportTaskHandler consumes resume export tasks: it renders the stored
// document with its selected template, prints it to PDF and uploads the
// result. The owner is notified over redis pub/sub either way.
type ExportTaskHandler struct {
	db          *gorm.DB
	storage     *storage.Client
	redisClient *redis.Client
	logger      *slog.Logger
}

// NewExportTaskHandler builds the task handler.
func NewExportTaskHandler(db *gorm.DB, storageClient *storage.Client, redisClient *redis.Client, logger *slog.Logger) *ExportTaskHandler {
	return &ExportTaskHandler{
		db:          db,
		storage:     storageClient,
		redisClient: redisClient,
		logger:      logger,
	}
}

// ProcessTask implements asynq.Handler.
func (h *ExportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.ResumeExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.Int("resume_id", int(payload.ResumeID)),
	)
	log.Info("starting resume export task")

	var record database.ResumeRecord
	if err := h.db.WithContext(ctx).First(&record, payload.ResumeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("resume not found, skipping task")
			return nil
		}
		log.Error("query resume failed", slog.Any("error", err))
		return err
	}

	log = log.With(slog.Uint64("user_id", uint64(record.UserID)))

	defer func() {
		if retErr == nil {
			return
		}
		if !isFinalAsynqAttempt(ctx) {
			return
		}

		_ = h.db.WithContext(ctx).Model(&record).
			Update("pdf_status", database.PdfStatusFailed).Error

		notify := ExportNotifyMessage{
			Status:        "error",
			ResumeID:      record.ID,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     errcode.SystemError,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publishExportNotify(ctx, record.UserID, notify); err != nil {
			log.Error("publish export error notification failed", slog.Any("error", err))
		}
	}()

	var doc resume.Resume
	if err := json.Unmarshal(record.Content, &doc); err != nil {
		log.Error("decode resume document failed", slog.Any("error", err))
		return err
	}

	if err := h.inlineProfileImage(ctx, &doc, record.ProfileKey); err != nil {
		// a stale profile image never blocks the export
		log.Warn("inline profile image failed", slog.Any("error", err))
	}

	html, err := render.HTML(doc)
	if err != nil {
		log.Error("render resume html failed", slog.Any("error", err))
		return err
	}

	pdfBytes, err := pdf.Generate(html)
	if err != nil {
		log.Error("generate pdf failed", slog.Any("error", err))
		return err
	}

	objectName := fmt.Sprintf("exports/%d/%s.pdf", record.UserID, uuid.NewString())
	pdfReader := bytes.NewReader(pdfBytes)
	if _, err := h.storage.UploadFile(ctx, objectName, pdfReader, int64(len(pdfBytes)), "application/pdf"); err != nil {
		log.Error("upload pdf to minio failed", slog.Any("error", err))
		return err
	}

	previousPdf := record.PdfURL
	update := map[string]any{
		"pdf_url":    objectName,
		"pdf_status": database.PdfStatusCompleted,
	}
	if err := h.db.WithContext(ctx).Model(&record).Updates(update).Error; err != nil {
		log.Error("update resume record failed", slog.Any("error", err))
		return err
	}

	if previousPdf != "" && previousPdf != objectName {
		if err := h.storage.DeleteObject(ctx, previousPdf); err != nil {
			log.Warn("delete previous pdf failed", slog.Any("error", err))
		}
	}

	notify := ExportNotifyMessage{
		Status:        "completed",
		ResumeID:      record.ID,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if err := h.publishExportNotify(ctx, record.UserID, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		return err
	}

	log.Info("resume export task completed")
	return nil
}

// inlineProfileImage swaps a stored object key for a presigned URL so the
// headless browser can fetch it while printing. Documents that embed the
// image as a data URI pass through untouched.
func (h *ExportTaskHandler) inlineProfileImage(ctx context.Context, doc *resume.Resume, profileKey string) error {
	if profileKey == "" || strings.HasPrefix(doc.ProfileImage, "data:") {
		return nil
	}

	url, err := h.storage.GeneratePresignedURL(ctx, profileKey, 10*time.Minute)
	if err != nil {
		return fmt.Errorf("presign profile image %q: %w", profileKey, err)
	}
	doc.ProfileImage = url
	return nil
}

func (h *ExportTaskHandler) publishExportNotify(ctx context.Context, userID uint, notify ExportNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("user_notify:%d", userID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
