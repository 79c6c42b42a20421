package service

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hseinsb/estimate-analyzer/apperrors"
	"github.com/hseinsb/estimate-analyzer/client"
	"github.com/hseinsb/estimate-analyzer/dto"
	"github.com/hseinsb/estimate-analyzer/logger"
	"github.com/hseinsb/estimate-analyzer/store"
	"github.com/hseinsb/estimate-analyzer/utils"
)

// ProcessResult bundles the persisted record with the quality signals from
// the extraction pass.
type ProcessResult struct {
	Estimate         *dto.Estimate
	Warnings         []string
	ExtractionIssues []string
}

// EstimateService orchestrates the pipeline: extract page text, parse
// fields, score, persist, and mirror to the spreadsheet.
type EstimateService struct {
	store        store.EstimateStore
	sheets       *client.SheetsClient
	pdfProcessor PDFProcessor
	log          *zap.SugaredLogger
}

func NewEstimateService(st store.EstimateStore, sheets *client.SheetsClient, pdfProcessor PDFProcessor) *EstimateService {
	return &EstimateService{
		store:        st,
		sheets:       sheets,
		pdfProcessor: pdfProcessor,
		log:          logger.GetLogger(),
	}
}

// ProcessPDF runs the full pipeline on one uploaded document. Extraction
// failures still persist an error-status record so the document shows up in
// the review queue instead of disappearing.
func (s *EstimateService) ProcessPDF(ctx context.Context, fileName string, pdfData []byte) (*ProcessResult, error) {
	id := estimateID(fileName)
	log := s.log.With("estimate_id", id, "file_name", fileName)

	if _, err := s.pdfProcessor.PageCount(pdfData); err != nil {
		log.Warnw("pdf structure check failed", "error", err)
		s.persistErrorRecord(ctx, id, fileName, err)
		return nil, apperrors.ExtractionFailed(err)
	}

	pages, err := s.pdfProcessor.ExtractPageTexts(pdfData)
	if err != nil {
		log.Warnw("text extraction failed", "error", err)
		s.persistErrorRecord(ctx, id, fileName, err)
		return nil, apperrors.ExtractionFailed(err)
	}

	seg, err := utils.SegmentPages(pages)
	if err != nil {
		log.Warnw("document has no extractable text")
		s.persistErrorRecord(ctx, id, fileName, err)
		return nil, apperrors.ExtractionFailed(err)
	}

	data := utils.ParseEstimate(seg)
	utils.RecomputeDerived(&data.Totals, false)

	validation := utils.ValidateEstimateData(data)
	confidence := utils.CalculateConfidence(data)
	status := utils.DetermineStatus(data, validation)

	issues := utils.DetectExtractionIssues(seg.IdentityText + "\n" + seg.FinancialText)
	if len(issues) > 0 {
		log.Infow("extraction quality issues detected", "issues", issues)
	}

	now := time.Now()
	est := &dto.Estimate{
		ID:               id,
		JobNumber:        data.JobNumber,
		CustomerName:     data.CustomerName,
		ClaimNumber:      data.ClaimNumber,
		InsuranceCompany: data.InsuranceCompany,
		Vehicle:          data.Vehicle,
		Totals:           data.Totals,
		Profits: dto.Profits{
			EstimateProfit: utils.EstimateProfit(data.Totals),
		},
		FileName:           fileName,
		PageCount:          data.PageCount,
		ParseConfidence:    confidence,
		Status:             status,
		ValidationWarnings: validation.Warnings,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.createWithRetry(ctx, est); err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError, "failed to save estimate")
	}

	s.syncToSheets(ctx, est)

	log.Infow("processed estimate",
		"status", est.Status, "confidence", est.ParseConfidence,
		"grand_total", est.Totals.GrandTotal, "fallback_page", seg.UsedFallback)

	return &ProcessResult{
		Estimate:         est,
		Warnings:         validation.Warnings,
		ExtractionIssues: issues,
	}, nil
}

// CreateManual persists a hand-entered estimate. Manual entries skip the
// extractor, so they carry full confidence and start out parsed.
func (s *EstimateService) CreateManual(ctx context.Context, req *dto.ManualEstimateRequest) (*dto.Estimate, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.ValidationFailed("invalid estimate payload", err.Error())
	}

	totals := req.Totals
	utils.RecomputeDerived(&totals, true)

	now := time.Now()
	est := &dto.Estimate{
		ID:               uuid.NewString(),
		JobNumber:        utils.SanitizeText(req.JobNumber),
		CustomerName:     utils.SanitizeText(req.CustomerName),
		ClaimNumber:      utils.SanitizeText(req.ClaimNumber),
		InsuranceCompany: utils.SanitizeText(req.InsuranceCompany),
		Vehicle:          req.Vehicle,
		Totals:           totals,
		Profits: dto.Profits{
			EstimateProfit: utils.EstimateProfit(totals),
		},
		Notes:           req.Notes,
		ParseConfidence: 1.0,
		Status:          dto.StatusParsed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.createWithRetry(ctx, est); err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError, "failed to save estimate")
	}

	s.syncToSheets(ctx, est)
	return est, nil
}

func (s *EstimateService) Get(ctx context.Context, id string) (*dto.Estimate, error) {
	est, err := s.store.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NotFound("estimate", id)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError, "failed to load estimate")
	}
	return est, nil
}

// List applies the store-level filters, then the free-text search in memory
// over the identity fields of the (bounded) result set.
func (s *EstimateService) List(ctx context.Context, q *dto.ListEstimatesQuery) ([]*dto.Estimate, error) {
	filter := store.ListFilter{
		Status:           dto.Status(q.Status),
		InsuranceCompany: q.InsuranceCompany,
		Limit:            q.Limit,
	}
	ests, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.DatabaseError, "failed to list estimates")
	}

	if q.Search == "" {
		return ests, nil
	}
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	matched := make([]*dto.Estimate, 0, len(ests))
	for _, e := range ests {
		haystack := strings.ToLower(strings.Join([]string{
			e.CustomerName, e.ClaimNumber, e.JobNumber, e.InsuranceCompany,
		}, " "))
		if strings.Contains(haystack, needle) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// Update applies the editable fields, recomputes the derived totals and the
// profit figures, and saves. Actual profit only exists once the real parts
// cost has been entered.
func (s *EstimateService) Update(ctx context.Context, id string, req *dto.UpdateEstimateRequest) (*dto.Estimate, error) {
	est, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		est.CustomerName = utils.SanitizeText(*req.CustomerName)
	}
	if req.JobNumber != nil {
		est.JobNumber = utils.SanitizeText(*req.JobNumber)
	}
	if req.ClaimNumber != nil {
		est.ClaimNumber = utils.SanitizeText(*req.ClaimNumber)
	}
	if req.InsuranceCompany != nil {
		est.InsuranceCompany = utils.SanitizeText(*req.InsuranceCompany)
	}
	if req.Vehicle != nil {
		est.Vehicle = *req.Vehicle
	}
	if req.Notes != nil {
		est.Notes = *req.Notes
	}
	if req.FileName != nil {
		est.FileName = *req.FileName
	}
	if req.Totals != nil {
		est.Totals = *req.Totals
	}
	utils.RecomputeDerived(&est.Totals, req.Totals != nil)

	est.Profits.EstimateProfit = utils.EstimateProfit(est.Totals)
	if req.ActualPartsCost != nil {
		if *req.ActualPartsCost < 0 {
			return nil, apperrors.ValidationFailed("invalid estimate payload", "actualPartsCost must not be negative")
		}
		cost := utils.NormalizeCurrency(*req.ActualPartsCost)
		actual := utils.NormalizeCurrency(est.Profits.EstimateProfit + est.Totals.Parts - cost)
		est.Profits.ActualPartsCost = &cost
		est.Profits.ActualProfit = &actual
	} else if est.Profits.ActualPartsCost != nil {
		actual := utils.NormalizeCurrency(est.Profits.EstimateProfit + est.Totals.Parts - *est.Profits.ActualPartsCost)
		est.Profits.ActualProfit = &actual
	}

	est.UpdatedAt = time.Now()
	if err := s.store.Update(ctx, est); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("estimate", id)
		}
		return nil, apperrors.Wrap(err, apperrors.DatabaseError, "failed to update estimate")
	}
	return est, nil
}

func (s *EstimateService) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.NotFound("estimate", id)
	}
	if err != nil {
		return apperrors.Wrap(err, apperrors.DatabaseError, "failed to delete estimate")
	}
	return nil
}

// HealthCounts reports processing volume over the trailing window, used by
// the health endpoint.
func (s *EstimateService) HealthCounts(ctx context.Context, window time.Duration) (total, failed int, err error) {
	return s.store.RecentCounts(ctx, time.Now().Add(-window))
}

func (s *EstimateService) createWithRetry(ctx context.Context, est *dto.Estimate) error {
	return retry.Do(
		func() error { return s.store.Create(ctx, est) },
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			s.log.Warnw("retrying estimate save", "estimate_id", est.ID, "attempt", n+1, "error", err)
		}),
	)
}

// syncToSheets mirrors the record to the spreadsheet. A sheets failure never
// fails the request; the record is downgraded to needs_review so someone
// re-enters the row by hand.
func (s *EstimateService) syncToSheets(ctx context.Context, est *dto.Estimate) {
	if s.sheets == nil {
		return
	}
	err := retry.Do(
		func() error { return s.sheets.AppendEstimate(est) },
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.Context(ctx),
	)
	if err == nil {
		return
	}

	s.log.Errorw("spreadsheet sync failed", "estimate_id", est.ID, "error", err)
	est.Status = dto.StatusNeedsReview
	est.SheetsError = err.Error()
	est.UpdatedAt = time.Now()
	if uerr := s.store.Update(ctx, est); uerr != nil {
		s.log.Errorw("failed to record sheets failure", "estimate_id", est.ID, "error", uerr)
	}
}

func (s *EstimateService) persistErrorRecord(ctx context.Context, id, fileName string, cause error) {
	now := time.Now()
	est := &dto.Estimate{
		ID:          id,
		FileName:    fileName,
		Status:      dto.StatusError,
		StatusError: cause.Error(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.createWithRetry(ctx, est); err != nil {
		s.log.Errorw("failed to persist error record", "estimate_id", id, "error", err)
	}
}

// estimateID derives a stable id from the uploaded file name so reprocessing
// the same document overwrites its record instead of duplicating it.
func estimateID(fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	base = strings.TrimSpace(base)
	if base == "" || base == "." {
		return uuid.NewString()
	}
	return base
}
