package domain

import (
	"fmt"
	"regexp"
	"time"
)

// ArtifactTimeLayout is the timestamp embedded in every artifact name.
const ArtifactTimeLayout = "2006-01-02_150405"

var artifactTimePattern = regexp.MustCompile(`_(\d{4}-\d{2}-\d{2}_\d{6})\.`)

// Artifact is one compressed point-in-time dump on local disk.
type Artifact struct {
	Name      string
	Path      string
	CreatedAt time.Time
}

// ArtifactName builds <prefix>_<YYYY-MM-DD_HHMMSS><ext> from t in local time.
func ArtifactName(prefix string, t time.Time, ext string) string {
	return fmt.Sprintf("%s_%s%s", prefix, t.Local().Format(ArtifactTimeLayout), ext)
}

// ParseArtifactTime recovers the creation time embedded in an artifact name.
func ParseArtifactTime(name string) (time.Time, error) {
	matches := artifactTimePattern.FindStringSubmatch(name)
	if len(matches) < 2 {
		return time.Time{}, fmt.Errorf("invalid artifact name %q: no timestamp found", name)
	}
	return time.ParseInLocation(ArtifactTimeLayout, matches[1], time.Local)
}
