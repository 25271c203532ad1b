package parser

import (
	"regexp"
	"strings"
)

// ISO 6346 equipment numbers: three-letter owner code, equipment category
// U/J/Z, six or seven digits, optional check-digit letter. The category letter
// keeps trip references like SFIM1234567 from anchoring a block.
var containerNumberRe = regexp.MustCompile(`\b([A-Z]{3}[UJZ])\s?(\d{6,7})([A-Z])?\b`)

// Block is one contiguous slice of document text owned by a single container.
type Block struct {
	ContainerNumber string
	Text            string
}

// SplitContainers partitions raw text into per-container blocks, each anchored
// at a container-number match and running to the next anchor. Text before the
// first anchor is not a container and is dropped. Returns nil when the
// document carries no container numbers at all.
func SplitContainers(text string) []Block {
	matches := containerNumberRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(matches))
	for i, m := range matches {
		start := m[0]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		number := text[m[2]:m[3]] + text[m[4]:m[5]]
		if m[6] >= 0 {
			number += text[m[6]:m[7]]
		}

		blocks = append(blocks, Block{
			ContainerNumber: number,
			Text:            strings.TrimSpace(text[start:end]),
		})
	}
	return blocks
}

// ContainerNumber returns the first container number in the text, normalized
// (embedded space removed), or "" when none is present.
func ContainerNumber(text string) string {
	m := containerNumberRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1] + m[2] + m[3]
}
