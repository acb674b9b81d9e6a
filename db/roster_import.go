package db

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"

	"github.com/faresmergui/docker-student-stack/models"
)

// ImportRosterFromExcel reads an Excel roster and returns the parsed document.
// Expected layout: first sheet, header row, Column A = name, Column B = age.
// Rows with a missing name/age or a non-integer age are skipped with a log
// line; at least one valid row is required.
func ImportRosterFromExcel(file io.Reader) (*models.RosterDocument, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing excel file: %v", err)
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("excel file does not contain any sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}

	doc := &models.RosterDocument{StudentAge: make(map[string]string)}

	for i, row := range rows {
		if i == 0 {
			continue // Skip header row
		}

		var name, age string
		if len(row) > 0 {
			name = row[0]
		}
		if len(row) > 1 {
			age = row[1]
		}

		if name == "" || age == "" {
			log.Printf("Skipping row %d due to missing name or age (name: %q, age: %q)", i+1, name, age)
			continue
		}
		if n, err := strconv.Atoi(age); err != nil || n < 0 {
			log.Printf("Skipping row %d: age %q is not a non-negative integer", i+1, age)
			continue
		}
		if _, dup := doc.StudentAge[name]; dup {
			log.Printf("Skipping row %d: duplicate student name %q", i+1, name)
			continue
		}

		doc.StudentAge[name] = age
	}

	if len(doc.StudentAge) == 0 {
		return nil, errors.New("excel file contains no valid student rows")
	}
	return doc, nil
}

// WriteRosterFile writes the document as the service's JSON data file.
func WriteRosterFile(doc *models.RosterDocument, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode roster document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file %s: %w", path, err)
	}
	return nil
}
