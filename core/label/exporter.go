// Package label - Label materialization
package label

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"shipops/internal/logging"
)

// ArtifactKind identifies what Materialize produced
type ArtifactKind string

const (
	// ArtifactSavedFile means the label document was written to disk
	ArtifactSavedFile ArtifactKind = "saved-file"

	// ArtifactPrintURL means the label is remote and the caller should
	// open the URL in a viewer and print it
	ArtifactPrintURL ArtifactKind = "print-url"

	// ArtifactUnavailable means no label could be materialized. The
	// caller should disable the action, not retry.
	ArtifactUnavailable ArtifactKind = "unavailable"
)

// Artifact is the outcome of materializing a normalized label
type Artifact struct {
	// Kind is the artifact kind
	Kind ArtifactKind `json:"kind"`

	// Path is the saved file path for ArtifactSavedFile
	Path string `json:"path,omitempty"`

	// Bytes is the saved document size for ArtifactSavedFile
	Bytes int `json:"bytes,omitempty"`

	// URL is the remote document URL for ArtifactPrintURL
	URL string `json:"url,omitempty"`

	// Reason explains an unavailable artifact
	Reason string `json:"reason,omitempty"`
}

// Available reports whether the artifact is usable
func (a Artifact) Available() bool {
	return a.Kind != ArtifactUnavailable
}

// Exporter materializes normalized labels into local artifacts
type Exporter struct {
	dir string
}

// NewExporter creates an exporter writing saved files under dir
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Materialize turns a normalized label into a local artifact. Inline
// documents are decoded and saved under the given filename; remote
// documents become a print-URL action. Failures never escape as
// errors: a malformed payload yields an unavailable artifact so one
// bad label cannot break a list of shipments being exported together.
func (e *Exporter) Materialize(l NormalizedLabel, filename string) Artifact {
	switch {
	case !l.Available():
		return Artifact{Kind: ArtifactUnavailable, Reason: "no label document available"}

	case l.Kind == KindRemoteURL:
		return Artifact{Kind: ArtifactPrintURL, URL: l.Payload}

	case l.Kind == KindInlineBinary:
		raw, err := DecodeInline(l.Payload)
		if err != nil {
			logging.Warn("label payload could not be decoded",
				zap.String("tracking", l.TrackingNumber), zap.Error(err))
			return Artifact{Kind: ArtifactUnavailable, Reason: "label document is malformed"}
		}
		path := filepath.Join(e.dir, filename)
		if err := os.MkdirAll(e.dir, 0755); err != nil {
			logging.Warn("label directory could not be created",
				zap.String("dir", e.dir), zap.Error(err))
			return Artifact{Kind: ArtifactUnavailable, Reason: "label could not be saved"}
		}
		if err := os.WriteFile(path, raw, 0644); err != nil {
			logging.Warn("label file could not be written",
				zap.String("path", path), zap.Error(err))
			return Artifact{Kind: ArtifactUnavailable, Reason: "label could not be saved"}
		}
		return Artifact{Kind: ArtifactSavedFile, Path: path, Bytes: len(raw)}

	default:
		return Artifact{Kind: ArtifactUnavailable, Reason: "unrecognized label kind"}
	}
}

// DecodeInline decodes a base64 label document. Data-URI prefixes
// (data:application/pdf;base64,...) and embedded whitespace are
// stripped before decoding.
func DecodeInline(payload string) ([]byte, error) {
	s := strings.TrimSpace(payload)
	if strings.HasPrefix(s, "data:") {
		if i := strings.IndexByte(s, ','); i >= 0 {
			s = s[i+1:]
		}
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
	return base64.StdEncoding.DecodeString(s)
}
