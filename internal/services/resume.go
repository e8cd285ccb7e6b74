package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resumentor/internal/analyzer"
	"resumentor/internal/models"
	"resumentor/internal/repositories"
)

// ErrForbidden is returned when a caller touches a record owned by someone
// else.
var ErrForbidden = errors.New("access denied")

type ResumeService interface {
	AnalyzeUpload(userID uuid.UUID, file *multipart.FileHeader, jobRole, jobDescription string) (*models.ResumeAnalysisResponse, error)
	GetResume(userID, resumeID uuid.UUID) (*models.Resume, error)
	GetAnalysis(userID, resumeID uuid.UUID) (*models.ResumeAnalysisResponse, error)
	ListByUser(userID uuid.UUID) ([]models.Resume, error)
	Delete(userID, resumeID uuid.UUID) error
}

type resumeService struct {
	resumeRepo repositories.ResumeRepository
	storage    StorageService
	extractor  TextExtractor
	engine     *analyzer.Analyzer
	worker     AchievementWorker
	logger     *zap.Logger
}

func NewResumeService(
	resumeRepo repositories.ResumeRepository,
	storage StorageService,
	extractor TextExtractor,
	engine *analyzer.Analyzer,
	worker AchievementWorker,
	logger *zap.Logger,
) ResumeService {
	return &resumeService{
		resumeRepo: resumeRepo,
		storage:    storage,
		extractor:  extractor,
		engine:     engine,
		worker:     worker,
		logger:     logger,
	}
}

func (s *resumeService) AnalyzeUpload(userID uuid.UUID, file *multipart.FileHeader, jobRole, jobDescription string) (*models.ResumeAnalysisResponse, error) {
	jobRole = strings.TrimSpace(jobRole)
	if jobRole == "" {
		return nil, fmt.Errorf("job role is required")
	}

	fileName, filePath, err := s.storage.SaveFile(file, "resume")
	if err != nil {
		return nil, err
	}

	resumeText, err := s.extractor.Extract(filePath)
	if err != nil {
		// Keep the upload dir clean when extraction fails
		_ = s.storage.DeleteFile(fileName)
		return nil, err
	}

	analysis := s.engine.AnalyzeResume(resumeText, jobRole, jobDescription)

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	resume := &models.Resume{
		UserID:         userID,
		FileName:       fileName,
		FilePath:       filePath,
		JobRole:        jobRole,
		JobDescription: jobDescription,
		ATSScore:       analysis.ATSScore,
		ResumeText:     resumeText,
		AnalysisResult: string(analysisJSON),
	}
	if err := s.resumeRepo.Create(resume); err != nil {
		return nil, err
	}

	s.logger.Info("resume analyzed",
		zap.String("resume_id", resume.ID.String()),
		zap.String("job_role", jobRole),
		zap.Int("ats_score", analysis.ATSScore))

	s.worker.Enqueue(userID)

	return &models.ResumeAnalysisResponse{
		ResumeID:       resume.ID,
		ResumeAnalysis: analysis,
	}, nil
}

func (s *resumeService) GetResume(userID, resumeID uuid.UUID) (*models.Resume, error) {
	resume, err := s.resumeRepo.FindByID(resumeID)
	if err != nil {
		return nil, err
	}
	if resume.UserID != userID {
		return nil, ErrForbidden
	}
	return resume, nil
}

func (s *resumeService) GetAnalysis(userID, resumeID uuid.UUID) (*models.ResumeAnalysisResponse, error) {
	resume, err := s.GetResume(userID, resumeID)
	if err != nil {
		return nil, err
	}

	var analysis analyzer.ResumeAnalysis
	if err := json.Unmarshal([]byte(resume.AnalysisResult), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode stored analysis: %w", err)
	}

	return &models.ResumeAnalysisResponse{
		ResumeID:       resume.ID,
		ResumeAnalysis: analysis,
	}, nil
}

func (s *resumeService) ListByUser(userID uuid.UUID) ([]models.Resume, error) {
	return s.resumeRepo.FindByUser(userID)
}

func (s *resumeService) Delete(userID, resumeID uuid.UUID) error {
	resume, err := s.GetResume(userID, resumeID)
	if err != nil {
		return err
	}

	if resume.FileName != "" {
		if err := s.storage.DeleteFile(resume.FileName); err != nil {
			s.logger.Warn("failed to remove resume file",
				zap.String("file", resume.FileName), zap.Error(err))
		}
	}

	return s.resumeRepo.Delete(resume)
}
