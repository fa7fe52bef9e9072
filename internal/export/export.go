package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"joblabel-engine/internal/domain"
)

// FlatRecord is the serialized shape of one labeled posting. Field
// order here is the CSV column order.
type FlatRecord struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Company              string  `json:"company"`
	Description          string  `json:"description"`
	ExperienceLevel      string  `json:"experience_level"`
	ExperienceConfidence float64 `json:"experience_confidence"`
	JobCategory          string  `json:"job_category"`
	CategoryConfidence   float64 `json:"category_confidence"`
	EducationRequirement string  `json:"education_requirement"`
	EducationConfidence  float64 `json:"education_confidence"`
	RemoteStatus         string  `json:"remote_status"`
	RemoteConfidence     float64 `json:"remote_confidence"`
}

func Flatten(rec domain.AnnotatedRecord) FlatRecord {
	return FlatRecord{
		ID:                   rec.ID,
		Title:                rec.Title,
		Company:              rec.Company,
		Description:          rec.Description,
		ExperienceLevel:      rec.Experience.Label,
		ExperienceConfidence: rec.Experience.Confidence,
		JobCategory:          rec.Category.Label,
		CategoryConfidence:   rec.Category.Confidence,
		EducationRequirement: rec.Education.Label,
		EducationConfidence:  rec.Education.Confidence,
		RemoteStatus:         rec.Remote.Label,
		RemoteConfidence:     rec.Remote.Confidence,
	}
}

var csvHeader = []string{
	"id", "title", "company", "description",
	"experience_level", "experience_confidence",
	"job_category", "category_confidence",
	"education_requirement", "education_confidence",
	"remote_status", "remote_confidence",
}

// WriteJSON emits the batch as an indented JSON array, input order.
func WriteJSON(w io.Writer, recs []domain.AnnotatedRecord) error {
	flat := make([]FlatRecord, 0, len(recs))
	for _, r := range recs {
		flat = append(flat, Flatten(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(flat)
}

// WriteCSV emits the batch as a header + one row per record.
func WriteCSV(w io.Writer, recs []domain.AnnotatedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range recs {
		f := Flatten(r)
		row := []string{
			f.ID, f.Title, f.Company, f.Description,
			f.ExperienceLevel, conf(f.ExperienceConfidence),
			f.JobCategory, conf(f.CategoryConfidence),
			f.EducationRequirement, conf(f.EducationConfidence),
			f.RemoteStatus, conf(f.RemoteConfidence),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func conf(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func WriteJSONFile(path string, recs []domain.AnnotatedRecord) error {
	return writeFile(path, recs, WriteJSON)
}

func WriteCSVFile(path string, recs []domain.AnnotatedRecord) error {
	return writeFile(path, recs, WriteCSV)
}

func writeFile(path string, recs []domain.AnnotatedRecord, write func(io.Writer, []domain.AnnotatedRecord) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, recs); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
