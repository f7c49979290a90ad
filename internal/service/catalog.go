package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/parser"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/repo"
)

var (
	ErrRecognizerUnavailable = errors.New("menu recognition is not configured")
	ErrRecognitionFailed     = errors.New("could not recognize a menu in the image")
	ErrSheetsUnavailable     = errors.New("google sheets import is not configured")
)

// CatalogService populates and serves the menu. Every import source
// produces a full snapshot; a failed import leaves the current menu
// untouched.
type CatalogService struct {
	menuRepo   repo.MenuRepository
	sheets     *parser.GoogleSheetsImporter
	recognizer parser.MenuRecognizer
	logger     *zap.SugaredLogger
}

func NewCatalogService(
	menuRepo repo.MenuRepository,
	sheets *parser.GoogleSheetsImporter,
	recognizer parser.MenuRecognizer,
	logger *zap.SugaredLogger,
) *CatalogService {
	return &CatalogService{
		menuRepo:   menuRepo,
		sheets:     sheets,
		recognizer: recognizer,
		logger:     logger,
	}
}

func (s *CatalogService) Menu(ctx context.Context) (domain.Menu, error) {
	menu, err := s.menuRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}
	return menu, nil
}

func (s *CatalogService) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	menu, err := parser.ParseCSV(r)
	if err != nil {
		return 0, fmt.Errorf("failed to parse CSV: %w", err)
	}

	if err := s.menuRepo.Replace(ctx, menu); err != nil {
		return 0, fmt.Errorf("failed to replace menu: %w", err)
	}

	s.logger.Infow("menu imported from CSV", "categories", len(menu), "items", menu.ItemCount())
	return menu.ItemCount(), nil
}

func (s *CatalogService) ExportCSV(ctx context.Context, w io.Writer) error {
	menu, err := s.menuRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get menu: %w", err)
	}
	if err := parser.ExportCSV(w, menu); err != nil {
		return fmt.Errorf("failed to export menu: %w", err)
	}
	return nil
}

func (s *CatalogService) ImportFromSheet(ctx context.Context, spreadsheetID string) (int, error) {
	if s.sheets == nil {
		return 0, ErrSheetsUnavailable
	}

	menu, err := s.sheets.ImportMenu(ctx, spreadsheetID)
	if err != nil {
		return 0, fmt.Errorf("failed to import menu from sheet: %w", err)
	}

	if err := s.menuRepo.Replace(ctx, menu); err != nil {
		return 0, fmt.Errorf("failed to replace menu: %w", err)
	}

	s.logger.Infow("menu imported from Google Sheets", "spreadsheet_id", spreadsheetID, "items", menu.ItemCount())
	return menu.ItemCount(), nil
}

// RecognizeImage runs the external menu recognition capability over a
// menu photo and replaces the menu with the result. A recognition
// failure applies no partial menu.
func (s *CatalogService) RecognizeImage(ctx context.Context, image []byte) (int, error) {
	if s.recognizer == nil {
		return 0, ErrRecognizerUnavailable
	}

	raw, err := s.recognizer.RecognizeMenu(ctx, image)
	if err != nil {
		s.logger.Errorw("menu recognition failed", "error", err)
		return 0, fmt.Errorf("%w: %s", ErrRecognitionFailed, err)
	}
	if raw == nil || len(raw.Categories) == 0 {
		return 0, ErrRecognitionFailed
	}

	menu := parser.MenuFromRaw(raw)
	if menu.ItemCount() == 0 {
		return 0, ErrRecognitionFailed
	}

	if err := s.menuRepo.Replace(ctx, menu); err != nil {
		return 0, fmt.Errorf("failed to replace menu: %w", err)
	}

	s.logger.Infow("menu generated from image", "categories", len(menu), "items", menu.ItemCount())
	return menu.ItemCount(), nil
}
