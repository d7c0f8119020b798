package verify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"image-verifier/feature/verify/checks"

	"github.com/google/uuid"
)

// Summary aggregates the outcome of one verification run.
// Checks that did not run are left nil.
type Summary struct {
	RunID         string                  `json:"run_id"`
	StartedAt     time.Time               `json:"started_at"`
	ExecutionTime string                  `json:"execution_time"`
	Local         *checks.LocalReport     `json:"local,omitempty"`
	Server        *checks.ServerReport    `json:"server,omitempty"`
	Endpoints     []checks.EndpointResult `json:"endpoints,omitempty"`

	duration time.Duration
}

func newSummary() *Summary {
	return &Summary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
}

func (s *Summary) finish() {
	s.duration = time.Since(s.StartedAt)
	s.ExecutionTime = s.duration.String()
}

// Duration returns how long the run took.
func (s *Summary) Duration() time.Duration {
	return s.duration
}

// EndpointsPassed counts the endpoints that answered with 200.
func (s *Summary) EndpointsPassed() int {
	n := 0
	for _, r := range s.Endpoints {
		if r.Passed {
			n++
		}
	}
	return n
}

// Passed reports whether every image check that ran succeeded.
// Endpoint results only decide the outcome when no image check ran.
func (s *Summary) Passed() bool {
	if s.Local == nil && s.Server == nil {
		return s.Endpoints != nil && s.EndpointsPassed() == len(s.Endpoints)
	}
	if s.Local != nil && !s.Local.Passed {
		return false
	}
	if s.Server != nil && !s.Server.Passed {
		return false
	}
	return true
}

// reportName is unique per run: runs started in the same second differ by run ID.
func (s *Summary) reportName() string {
	id, _, _ := strings.Cut(s.RunID, "-")
	return fmt.Sprintf("verify_report_%d_%s.json", s.StartedAt.Unix(), id)
}

// WriteJSON saves the summary as indented JSON in dir and returns the file path.
func (s *Summary) WriteJSON(dir string) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	filename := filepath.Join(dir, s.reportName())
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save JSON file: %w", err)
	}
	return filename, nil
}
