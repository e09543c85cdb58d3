package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/streak/internal/logger"
	"github.com/julianstephens/streak/internal/models"
)

// TextStore keeps one habit per line in the five-field slash format
type TextStore struct {
	path string
}

func NewTextStore(path string) *TextStore {
	return &TextStore{
		path: path,
	}
}

func (s *TextStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(nil)
}

func (s *TextStore) Load() ([]models.Habit, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	var habits []models.Habit
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		h, err := ParseLine(line)
		if errors.Is(err, ErrFieldCount) {
			if line != "" {
				logger.Warn("Skipping malformed habit line", "path", s.path, "line", lineNo, "error", err)
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s line %d: %w", s.path, lineNo, err)
		}
		habits = append(habits, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	return habits, nil
}

// Save rewrites the whole file
func (s *TextStore) Save(habits []models.Habit) error {
	var buf bytes.Buffer
	for _, h := range habits {
		buf.WriteString(FormatLine(h))
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *TextStore) Close() error {
	return nil
}

func (s *TextStore) GetConfigPath() string {
	return s.path
}
