// Package metadata embeds and verifies provenance blocks in generated batch
// reports. The block records which run produced a report and a hash of the
// report body so later edits are detectable.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// TagStart opens the provenance block.
	TagStart = "<!-- ASTROSAN_META_START"
	// TagEnd closes the provenance block.
	TagEnd = "ASTROSAN_META_END -->"
)

// Verification errors.
var (
	ErrNoProvenanceBlock = errors.New("no provenance block found")
	ErrNoHashFound       = errors.New("no hash found in provenance block")
	ErrHashMismatch      = errors.New("report hash mismatch")
)

// Provenance records how a report was generated.
type Provenance struct {
	RunID       string
	Tool        string
	GeneratedAt time.Time
	Hash        string
}

// blockRegex matches the entire provenance block including tags.
var blockRegex = regexp.MustCompile(`(?s)<!--\s*ASTROSAN_META_START\s*\n(.*?)\n\s*ASTROSAN_META_END\s*-->`)

// Extract removes the provenance block from content and returns both the
// parsed provenance and the cleaned content. The cleaned content is what the
// hash covers.
func Extract(content string) (*Provenance, string) {
	match := blockRegex.FindStringSubmatch(content)
	clean := strings.TrimRight(blockRegex.ReplaceAllString(content, ""), "\n")

	if len(match) < 2 {
		return nil, clean
	}

	prov := &Provenance{}

	for _, line := range strings.Split(match[1], "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "RUN_ID":
			prov.RunID = val
		case "TOOL":
			prov.Tool = val
		case "GENERATED_AT":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				prov.GeneratedAt = t
			}
		case "HASH":
			prov.Hash = val
		}
	}

	return prov, clean
}

// CalculateHash computes the SHA-256 hash of the content with any provenance
// block stripped.
func CalculateHash(content string) string {
	_, clean := Extract(content)
	sum := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(sum[:])
}

// Sign appends a provenance block with a fresh hash and timestamp, replacing
// any existing block.
func Sign(content, runID, tool string) string {
	_, clean := Extract(content)

	block := fmt.Sprintf("%s\nRUN_ID: %s\nTOOL: %s\nGENERATED_AT: %s\nHASH: %s\n%s",
		TagStart,
		runID,
		tool,
		time.Now().UTC().Format(time.RFC3339),
		CalculateHash(clean),
		TagEnd,
	)

	return clean + "\n\n" + block + "\n"
}

// Verify checks that the content still matches the hash recorded in its
// provenance block.
func Verify(content string) error {
	prov, clean := Extract(content)
	if prov == nil {
		return ErrNoProvenanceBlock
	}

	if prov.Hash == "" {
		return ErrNoHashFound
	}

	sum := sha256.Sum256([]byte(clean))
	if hex.EncodeToString(sum[:]) != prov.Hash {
		return fmt.Errorf("%w: recorded %s", ErrHashMismatch, prov.Hash)
	}

	return nil
}
