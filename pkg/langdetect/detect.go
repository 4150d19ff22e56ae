// Package langdetect decides whether a file holds Robot Framework test
// data. Files with a Robot Framework extension are accepted outright; for
// generic extensions such as .txt the content must contain a known section
// header. go-enry supplies binary detection and language names.
package langdetect

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/robotxt/pkg/recognize"
	"github.com/yaklabco/robotxt/pkg/rfmodel"
)

// LanguageRobot is the go-enry name of Robot Framework.
const LanguageRobot = "RobotFramework"

// maxScanLines bounds how far content is searched for a section header.
const maxScanLines = 200

// Reason explains a detection result.
type Reason string

const (
	ReasonExtension Reason = "extension"
	ReasonHeader    Reason = "section header"
	ReasonBinary    Reason = "binary content"
	ReasonNoHeader  Reason = "no section header"
)

// Result is the outcome of Detect.
type Result struct {
	// Robot is set when the file should be processed.
	Robot bool

	// Language is the go-enry language name, "" when unknown.
	Language string

	Reason Reason
}

// Detect classifies the file at path with the given content.
func Detect(path string, content []byte) Result {
	if enry.IsBinary(content) {
		return Result{Reason: ReasonBinary}
	}

	if hasRobotExtension(path) {
		return Result{Robot: true, Language: LanguageRobot, Reason: ReasonExtension}
	}

	if kind, ok := firstHeader(content); ok && kind != rfmodel.KindHeaderUnknown {
		return Result{Robot: true, Language: LanguageRobot, Reason: ReasonHeader}
	}

	return Result{Language: enry.GetLanguage(filepath.Base(path), content), Reason: ReasonNoHeader}
}

// IsRobot reports whether the file should be treated as Robot Framework
// data.
func IsRobot(path string, content []byte) bool {
	return Detect(path, content).Robot
}

func hasRobotExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".robot" || ext == ".resource" {
		return true
	}
	lang, _ := enry.GetLanguageByExtension(path)
	return lang == LanguageRobot
}

// firstHeader returns the kind of the first section header line.
func firstHeader(content []byte) (rfmodel.TokenKind, bool) {
	reg := recognize.Default()
	scanner := bufio.NewScanner(bytes.NewReader(content))

	for n := 0; n < maxScanLines && scanner.Scan(); n++ {
		cell, ok := headerCell(scanner.Text())
		if !ok {
			continue
		}
		if kind, ok := reg.Lookup(recognize.ContextHeader, cell); ok {
			return kind, true
		}
	}
	return 0, false
}

// headerCell returns the first cell of a line that starts with an
// asterisk, in either the space or the pipe dialect.
func headerCell(line string) (string, bool) {
	line = strings.TrimSuffix(line, "\r")
	if strings.HasPrefix(line, "| ") || strings.HasPrefix(line, "|\t") {
		line = strings.TrimLeft(line[1:], " \t")
	}
	if !strings.HasPrefix(line, "*") {
		return "", false
	}

	end := len(line)
	for _, sep := range []string{"  ", "\t", " |"} {
		if idx := strings.Index(line, sep); idx >= 0 && idx < end {
			end = idx
		}
	}
	return strings.TrimRight(line[:end], " "), true
}
