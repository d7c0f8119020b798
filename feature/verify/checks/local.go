package checks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LocalReport strictly types the result of a local image check.
type LocalReport struct {
	Path     string     `json:"path"`
	Exists   bool       `json:"exists"`
	FileSize int64      `json:"file_size"`
	Image    *ImageInfo `json:"image,omitempty"`
	Passed   bool       `json:"passed"`
	Error    string     `json:"error,omitempty"`
}

// CheckLocalImage verifies that path holds a decodable 1x1 image.
// Every failure is recorded on the report; nothing is returned as an error.
func CheckLocalImage(path string) *LocalReport {
	report := &LocalReport{Path: path}

	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.Error = fmt.Sprintf("image file does not exist: %s", path)
		} else {
			report.Error = fmt.Sprintf("failed to stat %s: %v", path, err)
		}
		return report
	}
	if stat.IsDir() {
		report.Error = fmt.Sprintf("image path is a directory: %s", path)
		return report
	}
	report.Exists = true
	report.FileSize = stat.Size()

	info, err := decodeFile(path)
	if err != nil {
		report.Error = fmt.Sprintf("failed to open image: %v", err)
		return report
	}
	report.Image = info

	if !info.IsSinglePixel() {
		report.Error = fmt.Sprintf("unexpected image size, expected (%d, %d), got %s", ExpectedWidth, ExpectedHeight, info.Size())
		return report
	}

	report.Passed = true
	return report
}

func decodeFile(path string) (*ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeImage(f)
}
