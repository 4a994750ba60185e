package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/junaifcp/swift-resume/internal/api/middleware"
	"github.com/junaifcp/swift-resume/internal/database"
	"github.com/junaifcp/swift-resume/internal/tasks"
	"github.com/junaifcp/swift-resume/pkg/resume"
)

// ResumeHandler serves the resume document CRUD and the export flow. The
// request and response bodies are full resume documents; the handler keeps
// the stored Content as the single source of truth and stamps the record id
// into the remoteId field on the way out.
type ResumeHandler struct {
	db          *gorm.DB
	asynqClient *asynq.Client
	storage     presigner
	maxResumes  int
}

// presigner is the slice of the storage client the handler needs.
type presigner interface {
	GeneratePresignedURLWithParams(ctx context.Context, objectKey string, duration time.Duration, params map[string]string) (string, error)
}

// NewResumeHandler builds the handler. maxResumes <= 0 disables the cap.
func NewResumeHandler(db *gorm.DB, asynqClient *asynq.Client, storage presigner, maxResumes int) *ResumeHandler {
	return &ResumeHandler{
		db:          db,
		asynqClient: asynqClient,
		storage:     storage,
		maxResumes:  maxResumes,
	}
}

var errInvalidResumeID = errors.New("invalid resume id")

// bindDocument decodes and normalizes the resume document in the request
// body. Missing client ids get one minted so older clients keep working.
func bindDocument(c *gin.Context) (resume.Resume, bool) {
	var doc resume.Resume
	if err := c.ShouldBindJSON(&doc); err != nil {
		BadRequest(c, err.Error())
		return resume.Resume{}, false
	}
	if strings.TrimSpace(doc.ID) == "" {
		doc.ID = resume.NewID()
	}
	return resume.Normalize(doc), true
}

func documentFromRecord(record database.ResumeRecord) (resume.Resume, error) {
	var doc resume.Resume
	if err := json.Unmarshal(record.Content, &doc); err != nil {
		return resume.Resume{}, fmt.Errorf("decode resume %d: %w", record.ID, err)
	}
	doc.RemoteID = record.ID
	return resume.Normalize(doc), nil
}

func recordContent(doc resume.Resume) (datatypes.JSON, error) {
	// remoteId is derived from the row, never stored inside it
	doc.RemoteID = 0
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode resume document: %w", err)
	}
	return datatypes.JSON(data), nil
}

// ListResumes returns every document of the authenticated user, most
// recently updated first.
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	var records []database.ResumeRecord
	if err := h.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&records).Error; err != nil {
		Internal(c, "failed to list resumes")
		return
	}

	docs := make([]resume.Resume, 0, len(records))
	for _, record := range records {
		doc, err := documentFromRecord(record)
		if err != nil {
			Internal(c, "failed to decode resume")
			return
		}
		docs = append(docs, doc)
	}

	c.JSON(http.StatusOK, docs)
}

// CreateResume stores a new document, enforcing the per-user cap.
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	doc, ok := bindDocument(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&database.ResumeRecord{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		Internal(c, "failed to count resumes")
		return
	}
	if h.maxResumes > 0 && count >= int64(h.maxResumes) {
		Forbidden(c, "resume limit reached")
		return
	}

	content, err := recordContent(doc)
	if err != nil {
		Internal(c, "failed to encode resume")
		return
	}

	record := database.ResumeRecord{
		ClientID: doc.ID,
		Title:    doc.Name,
		Content:  content,
		UserID:   userID,
	}
	if err := h.db.WithContext(ctx).Create(&record).Error; err != nil {
		Internal(c, "failed to create resume")
		return
	}

	doc.RemoteID = record.ID
	c.JSON(http.StatusCreated, doc)
}

// GetResume returns one document by record id.
func (h *ResumeHandler) GetResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getRecordForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyLookupError(c, err)
		return
	}

	doc, err := documentFromRecord(*record)
	if err != nil {
		Internal(c, "failed to decode resume")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// UpdateResume overwrites the stored document with the request body.
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getRecordForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyLookupError(c, err)
		return
	}

	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	// the stored client id is authoritative for this record
	doc.ID = record.ClientID

	content, err := recordContent(doc)
	if err != nil {
		Internal(c, "failed to encode resume")
		return
	}

	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).Model(record).Updates(map[string]any{
		"title":   doc.Name,
		"content": content,
	}).Error; err != nil {
		Internal(c, "failed to update resume")
		return
	}

	doc.RemoteID = record.ID
	c.JSON(http.StatusOK, doc)
}

// DeleteResume removes the record and, best effort, its generated PDF.
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getRecordForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyLookupError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.db.WithContext(ctx).Delete(&database.ResumeRecord{}, record.ID).Error; err != nil {
		Internal(c, "failed to delete resume")
		return
	}

	c.Status(http.StatusNoContent)
}

// DuplicateResume clones a document server-side under a fresh client id.
func (h *ResumeHandler) DuplicateResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	record, err := h.getRecordForUser(ctx, c.Param("id"), userID)
	if err != nil {
		h.replyLookupError(c, err)
		return
	}

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&database.ResumeRecord{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		Internal(c, "failed to count resumes")
		return
	}
	if h.maxResumes > 0 && count >= int64(h.maxResumes) {
		Forbidden(c, "resume limit reached")
		return
	}

	doc, err := documentFromRecord(*record)
	if err != nil {
		Internal(c, "failed to decode resume")
		return
	}

	clone := doc.Clone()
	clone.ID = resume.NewID()
	clone.RemoteID = 0
	clone.Name = doc.Name + " (Copy)"
	clone.LastUpdated = time.Now().UTC()

	content, err := recordContent(clone)
	if err != nil {
		Internal(c, "failed to encode resume")
		return
	}

	cloneRecord := database.ResumeRecord{
		ClientID: clone.ID,
		Title:    clone.Name,
		Content:  content,
		UserID:   userID,
	}
	if err := h.db.WithContext(ctx).Create(&cloneRecord).Error; err != nil {
		Internal(c, "failed to duplicate resume")
		return
	}

	clone.RemoteID = cloneRecord.ID
	c.JSON(http.StatusCreated, clone)
}

// RequestExport enqueues PDF generation and returns 202 with the task id.
// Export is refused while any required completeness check fails.
func (h *ResumeHandler) RequestExport(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	record, err := h.getRecordForUser(ctx, c.Param("id"), userID)
	if err != nil {
		h.replyLookupError(c, err)
		return
	}

	doc, err := documentFromRecord(*record)
	if err != nil {
		Internal(c, "failed to decode resume")
		return
	}

	if failed := resume.FailedRequired(doc); len(failed) > 0 {
		Unprocessable(c, "resume incomplete: "+strings.Join(failed, ", "))
		return
	}

	if err := h.db.WithContext(ctx).Model(record).
		Update("pdf_status", database.PdfStatusPending).Error; err != nil {
		Internal(c, "failed to mark resume for export")
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	task, err := tasks.NewResumeExportTask(record.ID, correlationID)
	if err != nil {
		Internal(c, "failed to create task")
		return
	}

	info, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(5))
	if err != nil {
		Internal(c, "failed to enqueue pdf generation")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "PDF generation request accepted",
		"task_id": info.ID,
	})
}

// GetExportLink returns a presigned download URL for a finished export.
func (h *ResumeHandler) GetExportLink(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.getRecordForUser(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.replyLookupError(c, err)
		return
	}

	if record.PdfURL == "" || record.PdfStatus != database.PdfStatusCompleted {
		Conflict(c, "pdf not ready")
		return
	}

	fileName := record.Title
	if fileName == "" {
		fileName = "resume"
	}
	params := map[string]string{
		"response-content-disposition": fmt.Sprintf("attachment; filename=%q", fileName+".pdf"),
	}
	signedURL, err := h.storage.GeneratePresignedURLWithParams(c.Request.Context(), record.PdfURL, 5*time.Minute, params)
	if err != nil {
		Internal(c, "failed to generate download link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

func (h *ResumeHandler) replyLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidResumeID):
		BadRequest(c, "invalid resume id")
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "resume not found")
	default:
		Internal(c, "failed to query resume")
	}
}

func (h *ResumeHandler) getRecordForUser(ctx context.Context, idParam string, userID uint) (*database.ResumeRecord, error) {
	recordID, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return nil, errInvalidResumeID
	}

	var record database.ResumeRecord
	if err := h.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", uint(recordID), userID).
		First(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func userIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case uint64:
		return uint(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	default:
		return 0, false
	}
}
